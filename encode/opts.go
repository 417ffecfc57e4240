package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level in pretty mode.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Wire selects compact single-line output. Wire and pretty output
// parse to equal trees.
func Wire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// Depth sets the starting nesting level in pretty mode.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

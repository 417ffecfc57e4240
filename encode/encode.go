package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexvarney/BasicObjectNotation2/ir"
	"github.com/alexvarney/BasicObjectNotation2/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	col, depth, indent int
	wire               bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as BON text: pretty-printed with one object node
// per line by default, single-line when the Wire option is set.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ListType:
		return encodeList(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.IntegerType:
		return encodeInteger(node, w, es)
	case ir.FloatType:
		return encodeFloat(node, w, es)
	default:
		panic("type")
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// Object encoding: '{' then one "key: value;" node per line, '}' back
// at the enclosing depth. Empty objects stay inline.

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	open := applyColor(es, ir.ObjectType, SepColor, "{")
	if err := writeString(w, open); err != nil {
		return err
	}
	es.col++
	if len(node.Fields) == 0 {
		es.col++
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
	}
	es.depth++
	for i, key := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, key, es); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		es.col++
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		semi := applyColor(es, ir.ObjectType, SepColor, ";")
		if err := writeString(w, semi); err != nil {
			return err
		}
		es.col++
		if es.wire && i < len(node.Fields)-1 {
			if err := writeString(w, " "); err != nil {
				return err
			}
			es.col++
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	es.col++
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func writeField(w io.Writer, f string, es *EncState) error {
	if !token.IsIdent(f) {
		return fmt.Errorf("%w: key %q is not an identifier", ErrEncoding, f)
	}
	sep := ":"
	fColor := f
	if es.Color != nil {
		fColor = applyColor(es, ir.ObjectType, FieldColor, f)
		sep = applyColor(es, ir.ObjectType, SepColor, sep)
	}
	if err := writeString(w, fColor+sep); err != nil {
		return err
	}
	es.col += len(f) + 1
	return nil
}

// List encoding: always inline, comma separated, no trailing comma.

func encodeList(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ListType, SepColor, "[")); err != nil {
		return err
	}
	es.col++
	for i, v := range node.Values {
		if i > 0 {
			sep := applyColor(es, ir.ListType, SepColor, ",")
			if err := writeString(w, sep+" "); err != nil {
				return err
			}
			es.col += 2
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.col++
	return writeString(w, applyColor(es, ir.ListType, SepColor, "]"))
}

// Leaf encoding

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := token.Quote(node.String)
	es.col += len(v)
	v = applyColor(es, ir.StringType, ValueColor, v)
	return writeString(w, v)
}

func encodeInteger(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatInt(node.Int64, 10)
	es.col += len(v)
	v = applyColor(es, ir.IntegerType, ValueColor, v)
	return writeString(w, v)
}

func encodeFloat(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := floatString(node.Float64)
	if err != nil {
		return err
	}
	es.col += len(v)
	v = applyColor(es, ir.FloatType, ValueColor, v)
	return writeString(w, v)
}

// floatString returns the shortest decimal form that round-trips the
// IEEE-754 value, always carrying a decimal point or exponent so the
// literal re-parses as a Float rather than an Integer.
func floatString(f float64) (string, error) {
	switch {
	case math.IsNaN(f):
		return "", fmt.Errorf("%w: NaN has no literal form", ErrEncoding)
	case math.IsInf(f, 1):
		// overflows back to +Inf on re-parse
		return "1e999", nil
	case math.IsInf(f, -1):
		return "-1e999", nil
	}
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v, nil
}

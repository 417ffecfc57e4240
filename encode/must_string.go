package encode

import (
	"bytes"
	"strings"

	"github.com/alexvarney/BasicObjectNotation2/ir"
)

// MustString renders node to a string with the trailing newline
// trimmed, panicking on encoding errors. For fixtures and tests.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

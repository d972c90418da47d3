package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented tree of the subtree, one line per node and token.
// Trivia is shown as counts only.
func Dump(w io.Writer, root *Node) error {
	var sb strings.Builder
	dumpNode(&sb, root, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func dumpNode(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s%s %d..%d\n", indent, n.Kind, n.Span.Start, n.Span.End)
	for _, c := range n.Children {
		if c.Node != nil {
			dumpNode(sb, c.Node, depth+1)
			continue
		}
		t := c.Token
		fmt.Fprintf(sb, "%s  %s %q", indent, t.Kind, t.Text)
		if len(t.Leading) > 0 || len(t.Trailing) > 0 {
			fmt.Fprintf(sb, " trivia=%d/%d", len(t.Leading), len(t.Trailing))
		}
		sb.WriteByte('\n')
	}
}

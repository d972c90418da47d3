package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"quill/internal/source"
	"quill/internal/syntax"
)

// TreeJSON is one CST element: a node with children or a token with text.
type TreeJSON struct {
	Node     string     `json:"node,omitempty"`
	Token    string     `json:"token,omitempty"`
	Text     string     `json:"text,omitempty"`
	Start    uint32     `json:"start"`
	End      uint32     `json:"end"`
	Children []TreeJSON `json:"children,omitempty"`
}

// FormatTreePretty prints the CST one element per line, indented by depth:
// nodes with their line:col range, tokens with their text.
func FormatTreePretty(w io.Writer, root *syntax.Node, fs *source.FileSet) error {
	if root == nil {
		return nil
	}
	type frame struct {
		el    syntax.Element
		depth int
	}
	stack := []frame{{el: syntax.Element{Node: root}}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		indent := strings.Repeat("  ", fr.depth)
		if t := fr.el.Token; t != nil {
			if _, err := fmt.Fprintf(w, "%s%s %q\n", indent, t.Kind, t.Text); err != nil {
				return err
			}
			continue
		}
		n := fr.el.Node
		start, end := fs.Resolve(n.Span)
		if _, err := fmt.Fprintf(w, "%s%s %d:%d-%d:%d\n", indent, n.Kind, start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
		// дети в обратном порядке, чтобы со стека они снимались по порядку
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{el: n.Children[i], depth: fr.depth + 1})
		}
	}
	return nil
}

// BuildTreeJSON converts the CST into its JSON shape.
func BuildTreeJSON(n *syntax.Node) TreeJSON {
	out := TreeJSON{Node: n.Kind.String(), Start: n.Span.Start, End: n.Span.End}
	for _, ch := range n.Children {
		if t := ch.Token; t != nil {
			out.Children = append(out.Children, TreeJSON{
				Token: t.Kind.String(),
				Text:  t.Text,
				Start: t.Span.Start,
				End:   t.Span.End,
			})
			continue
		}
		out.Children = append(out.Children, BuildTreeJSON(ch.Node))
	}
	return out
}

// FormatTreeJSON writes the CST as indented JSON.
func FormatTreeJSON(w io.Writer, root *syntax.Node) error {
	if root == nil {
		_, err := io.WriteString(w, "null\n")
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTreeJSON(root))
}

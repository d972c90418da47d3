package doc

import (
	"fmt"
	"strings"
)

// Dump renders d as an indented tree for debugging.
func Dump(d Doc) string {
	var sb strings.Builder
	dump(&sb, d, 0)
	return sb.String()
}

func dump(sb *strings.Builder, d Doc, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := d.(type) {
	case nil, empty:
		fmt.Fprintf(sb, "%sempty\n", pad)
	case Text:
		if v.Mapped {
			fmt.Fprintf(sb, "%stext %q @%d..%d\n", pad, v.Value, v.Source.Start, v.Source.End)
		} else {
			fmt.Fprintf(sb, "%stext %q\n", pad, v.Value)
		}
	case Space:
		fmt.Fprintf(sb, "%sspace\n", pad)
	case Break:
		fmt.Fprintf(sb, "%s%s\n", pad, v.Mode)
	case ForceBreak:
		fmt.Fprintf(sb, "%sbreak-parent\n", pad)
	case *Grouped:
		if v.ID != 0 {
			fmt.Fprintf(sb, "%sgroup #%08x\n", pad, uint32(v.ID))
		} else {
			fmt.Fprintf(sb, "%sgroup\n", pad)
		}
		dump(sb, v.Contents, depth+1)
	case Indented:
		fmt.Fprintf(sb, "%sindent\n", pad)
		dump(sb, v.Contents, depth+1)
	case Conditional:
		if v.Group != 0 {
			fmt.Fprintf(sb, "%sif-break #%08x\n", pad, uint32(v.Group))
		} else {
			fmt.Fprintf(sb, "%sif-break\n", pad)
		}
		if !IsEmpty(v.Break) {
			fmt.Fprintf(sb, "%s  break:\n", pad)
			dump(sb, v.Break, depth+2)
		}
		if !IsEmpty(v.Flat) {
			fmt.Fprintf(sb, "%s  flat:\n", pad)
			dump(sb, v.Flat, depth+2)
		}
	case Fill:
		fmt.Fprintf(sb, "%sfill (%d items)\n", pad, len(v.Items))
		fmt.Fprintf(sb, "%s  separator:\n", pad)
		dump(sb, v.Separator, depth+2)
		for _, it := range v.Items {
			dump(sb, it, depth+1)
		}
	case LineSuffix:
		fmt.Fprintf(sb, "%sline-suffix\n", pad)
		dump(sb, v.Contents, depth+1)
	case Sequence:
		fmt.Fprintf(sb, "%sconcat\n", pad)
		for _, p := range v.Parts {
			dump(sb, p, depth+1)
		}
	case Verbatim:
		fmt.Fprintf(sb, "%sverbatim %q @%d..%d\n", pad, v.Text, v.Span.Start, v.Span.End)
	default:
		fmt.Fprintf(sb, "%s%T\n", pad, d)
	}
}

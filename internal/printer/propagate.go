package printer

import "quill/internal/doc"

// propagateBreaks находит группы, которые не могут быть flat: в их
// поддереве есть HardLine или EmptyLine. Флаг поднимается и через вложенные
// группы: внешняя группа с жёстким переносом внутри тоже не может быть flat.
// ForceBreak действует так же, но ничего не печатает.
// Обход на явном стеке.
func propagateBreaks(root doc.Doc) map[*doc.Grouped]bool {
	forced := make(map[*doc.Grouped]bool)
	type frame struct {
		d    doc.Doc
		exit bool
	}
	var groups []*doc.Grouped // путь открытых групп
	stack := []frame{{d: root}}
	// hard[i]: нашёлся ли жёсткий перенос внутри groups[i]
	var hard []bool

	mark := func() {
		if len(hard) > 0 {
			hard[len(hard)-1] = true
		}
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.exit {
			g := groups[len(groups)-1]
			h := hard[len(hard)-1]
			groups = groups[:len(groups)-1]
			hard = hard[:len(hard)-1]
			if h {
				forced[g] = true
				mark()
			}
			continue
		}

		switch v := f.d.(type) {
		case doc.Break:
			if v.Mode.IsHard() {
				mark()
			}
		case doc.ForceBreak:
			mark()
		case *doc.Grouped:
			if forced[v] {
				// уже посчитана (одна и та же группа встречается дважды)
				mark()
				continue
			}
			groups = append(groups, v)
			hard = append(hard, false)
			stack = append(stack, frame{d: v, exit: true})
			stack = append(stack, frame{d: v.Contents})
		case doc.Indented:
			stack = append(stack, frame{d: v.Contents})
		case doc.Conditional:
			stack = append(stack, frame{d: v.Flat}, frame{d: v.Break})
		case doc.Fill:
			for i := len(v.Items) - 1; i >= 0; i-- {
				stack = append(stack, frame{d: v.Items[i]})
			}
			stack = append(stack, frame{d: v.Separator})
		case doc.LineSuffix:
			stack = append(stack, frame{d: v.Contents})
		case doc.Sequence:
			for i := len(v.Parts) - 1; i >= 0; i-- {
				stack = append(stack, frame{d: v.Parts[i]})
			}
		}
	}
	return forced
}

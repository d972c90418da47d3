//go:build quilldebug

package printer

import "fmt"

// assertf паникует при нарушении инварианта принтера (только в отладочной сборке).
func (p *printer) assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("printer invariant violated: "+format, args...))
	}
}

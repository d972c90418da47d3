package printer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// textWidth: ширина атомарного текста: CRLF считается одним символом,
// перевод строки: одной колонкой, остальное по display width.
func textWidth(s string) int {
	if !strings.ContainsAny(s, "\r\n") {
		return runewidth.StringWidth(s)
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return runewidth.StringWidth(s) + strings.Count(s, "\n")
}

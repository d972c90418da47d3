package source

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Normalize prepares raw file bytes for lexing: a UTF-8 or UTF-16 BOM is
// decoded away and CRLF pairs are folded to LF. The returned flags record
// what was changed.
func Normalize(raw []byte) ([]byte, FileFlags, error) {
	var flags FileFlags
	content, hadBOM, utf16, err := decodeBOM(raw)
	if err != nil {
		return nil, 0, err
	}
	if hadBOM {
		flags |= FileHadBOM
	}
	if utf16 {
		flags |= FileDecodedUTF16
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return content, flags, nil
}

// decodeBOM strips a UTF-8 BOM or transcodes BOM-marked UTF-16 to UTF-8.
// Input without a BOM is returned unchanged.
func decodeBOM(content []byte) (out []byte, hadBOM, utf16 bool, err error) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return content[len(bomUTF8):], true, false, nil
	case bytes.HasPrefix(content, bomUTF16LE), bytes.HasPrefix(content, bomUTF16BE):
		// BOMOverride выбирает порядок байт по BOM и сам его отрезает
		dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
		decoded, _, terr := transform.Bytes(dec, content)
		if terr != nil {
			return nil, false, false, errors.Join(errors.New("invalid UTF-16 input"), terr)
		}
		return decoded, true, true, nil
	}
	return content, false, false, nil
}

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены (true, если хотя бы одна).
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Если LineIdx пустой, то весь файл - одна строка
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: находим наибольший lineIdx[i] < off
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi + 1 // количество переводов строки до off
	if line == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	startOff := lineIdx[line-1] + 1
	return LineCol{Line: uint32(line + 1), Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

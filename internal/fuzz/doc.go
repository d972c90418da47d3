// Package fuzztests houses Go fuzz harnesses over the lexer, the parser and
// the formatter. They look for panics, hangs, lost bytes and output that
// does not survive a second formatting pass.
//
// Назначение: гонять произвольные байты через source -> lexer -> parser ->
// format, проверяя инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests

// Package printer renders a doc.Doc tree into text under a width limit.
//
// Назначение: решить для каждой группы flat/expanded и выдать текст с отступами.
// Работает на явном стеке команд, без рекурсии по дереву документа.
// Зависимости: internal/doc, internal/source, go-runewidth.
package printer

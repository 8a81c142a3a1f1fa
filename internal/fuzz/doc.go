// Package fuzztests houses Go fuzz harnesses for the attribute parser
// (source -> lexer -> parser -> builder). They guard against panics and
// hangs on arbitrary input and check tree invariants whenever a parse
// succeeds.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер,
// парсер и сборку атрибутов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests

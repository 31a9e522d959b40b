// Package fuzztests houses Go fuzz harnesses for the Fern front end
// (source -> lexer -> parser). They guard against panics, hangs and broken
// position bookkeeping on arbitrary inputs.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер/парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests

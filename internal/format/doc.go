// Package format prints Fern syntax trees back as canonical source.
//
// Назначение: `fern fmt` и человекочитаемый вывод узлов (diagfmt).
// Скобки ставятся минимально: напечатанный текст разбирается в то же дерево.
// Не делает: сохранение исходных пробелов и IO.
// Зависимости: internal/ast, internal/lexer, internal/parser.
package format

package parser

import "fern/internal/token"

// annot разбирает необязательную аннотацию `: X`. Без двоеточия возвращает
// нулевое значение (nil-интерфейс) и ничего не съедает.
func annot[T any](p *Parser, parse func() (T, error)) (T, error) {
	var zero T
	if !p.at(token.Colon) {
		return zero, nil
	}
	p.advance()
	return parse()
}

// application implements curried application: one mandatory head, then as
// many atoms as parse. A failed attempt restores the cursor and ends the
// argument list; its error is discarded.
func application[T any](p *Parser, head func() (T, error), atom func() (T, error)) (T, []T, error) {
	h, err := head()
	if err != nil {
		return h, nil, err
	}
	var args []T
	for {
		s := p.snapshot()
		arg, err := atom()
		if err != nil {
			p.restore(s)
			break
		}
		args = append(args, arg)
	}
	return h, args, nil
}

package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"fern/internal/token"
)

type TokenOutput struct {
	Kind string   `json:"kind"`
	Text string   `json:"text,omitempty"`
	Span SpanJSON `json:"span"`
}

// SpanJSON — позиции в виде line/col, как их видит пользователь
type SpanJSON struct {
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		sp := tok.Span()
		if _, err := fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %s\n", formatSpan(sp))

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		sp := tok.Span()
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: SpanJSON{StartLine: sp.L.Line, StartCol: sp.L.Col, EndLine: sp.R.Line, EndCol: sp.R.Col},
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Package token defines lexical token kinds for the Fern front end.
// Invariants:
//   - Token.Pos is the coordinate of the first character of the token.
//   - Token.Text holds the exact lexeme for words (identifiers and reserved
//     words) and punctuation; it is empty for EOF.
//   - Single-character punctuation (λ \ ( ) . :) is classified before words.
//     Multi-character operators (-> => = | *) are words that match the
//     reserved table, so they must not contain single-character punctuation.
//   - KwLet and KwIn are reserved kinds that the lexer never produces.
package token

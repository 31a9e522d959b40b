// Package ast defines the raw, unchecked syntax tree produced by the parser.
//
// The tree is owned top-down: every node exclusively owns its children and
// nothing is shared. Every node embeds a source.Span, so it satisfies
// source.Bounded. Spans follow these rules:
//
//   - a lambda/forall starts at its introducing token and ends at its body;
//   - an application runs from its head's left bound to its last argument's
//     right bound;
//   - an arrow runs from its domain to its codomain;
//   - a parenthesised node keeps the span of what is inside the parentheses.
//
// Names are plain strings here; resolving them to binding sites is left to a
// later elaboration phase.
package ast

// Package expr evaluates the arithmetic share expressions typed into the split
// form.
//
// # Grammar
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary }
//	unary  = ("+" | "-") unary | factor
//	factor = number | "(" expr ")"
//	number = digits ["." [digits]] | "." digits
//
// Spaces may appear between tokens. Text that is empty or only spaces
// evaluates to zero.
//
// # Screening
//
// Before parsing, the text is screened twice:
//  1. Only the bytes 0-9 + - * / . ( ) and space are accepted.
//  2. The same operator may not appear twice in a row ("++", "--", "**",
//     "//"). Different operators ("+-") or operators split by a space
//     ("- -") pass the screen and are handled by the grammar.
//
// # Errors
//
// Every failure is returned as an *Error carrying the byte offset and one of
// ErrDisallowedCharacter, ErrRepeatedOperator, ErrSyntax or ErrNonFinite, so
// callers can match with errors.Is. Results that are not finite (division by
// zero, overflow) are errors: a share is either a finite number or invalid.
//
// The evaluator never executes user text; it only walks tokens.
package expr

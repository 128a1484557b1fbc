// Package split computes proportional splits of an amount across share
// expressions and renders them into a page.
//
// # Flow
//
// One pass has two phases:
//  1. Evaluate every share expression in document order and sum the valid
//     ones into the total.
//  2. For every entry compute amount*share/total, format it with two fraction
//     digits and write it to the entry's "-calc" element.
//
// Invalid shares add nothing to the total and render as the indeterminate
// marker; so does every entry when the total is zero. Nothing is retained
// between passes, so Apply may be called again on every input change.
package split

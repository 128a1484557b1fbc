// Package page provides the documents a split is read from and written to.
//
// Static is an in-memory page used by the CLI and the JSON API. Document
// wraps a parsed HTML tree: the amount is the value of input#amount, the
// share entries are the input.share-text elements in document order, and
// each result replaces the content of the element whose id is the share id
// followed by "-calc".
package page

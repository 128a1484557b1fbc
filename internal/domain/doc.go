// Package domain defines the split calculator's data model and contracts.
// It contains plain types (types/) and interfaces (interfaces/) only; the
// aliases in this package let callers import a single path.
package domain

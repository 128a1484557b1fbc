package interfaces

import domaintypes "bluechips/internal/domain/types"

// Page is the document the calculator reads its inputs from and writes its
// results into.
type Page interface {
	// AmountText returns the raw text of the total amount field.
	AmountText() string
	// ShareEntries returns the share fields in document order.
	ShareEntries() []domaintypes.ShareEntry
	// SetOutput replaces the content of the element with the given id.
	SetOutput(id, text string) error
}

package types

// ShareID identifies a participant's share field on the page.
type ShareID string

// String returns the string form of the share identifier.
func (id ShareID) String() string { return string(id) }

// OutputID is the id of the element that receives the participant's amount.
func (id ShareID) OutputID() string { return string(id) + OutputSuffix }

// OutputSuffix is appended to a share id to find its output element.
const OutputSuffix = "-calc"

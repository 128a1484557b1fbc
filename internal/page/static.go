package page

import (
	"errors"
	"fmt"
	"strings"

	"bluechips/internal/domain"
)

// ErrNoElement is returned when an output element does not exist.
var ErrNoElement = errors.New("no such element")

// Static is an in-memory page. Outputs are keyed by element id, so entries
// sharing an id share one output; read per-entry text from the Result.
type Static struct {
	Amount  string
	Entries []domain.ShareEntry
	Outputs map[string]string
}

// NewStatic returns a page holding amount and entries with empty outputs.
func NewStatic(amount string, entries []domain.ShareEntry) *Static {
	return &Static{Amount: amount, Entries: entries, Outputs: make(map[string]string, len(entries))}
}

func (p *Static) AmountText() string { return p.Amount }

func (p *Static) ShareEntries() []domain.ShareEntry { return p.Entries }

// SetOutput stores text for id. Only ids belonging to an entry exist.
func (p *Static) SetOutput(id, text string) error {
	for _, e := range p.Entries {
		if e.OutputID() == id {
			if p.Outputs == nil {
				p.Outputs = make(map[string]string)
			}
			p.Outputs[id] = text
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNoElement, id)
}

// Output returns the text written to id, if any.
func (p *Static) Output(id string) (string, bool) {
	s, ok := p.Outputs[id]
	return s, ok
}

// ParseEntry parses "id=expression". The expression may be empty or contain
// further '=' characters, which the evaluator will reject.
func ParseEntry(s string) (domain.ShareEntry, error) {
	id, expression, ok := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return domain.ShareEntry{}, fmt.Errorf("share %q: want id=expression", s)
	}
	return domain.ShareEntry{ID: domain.ShareID(id), Expression: expression}, nil
}

// Compile-time assertion that Static implements domain.Page.
var _ domain.Page = (*Static)(nil)

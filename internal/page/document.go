package page

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"bluechips/internal/domain"
)

const (
	amountID   = "amount"
	shareClass = "share-text"
)

// Document is a page backed by a parsed HTML tree.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Document{root: root}, nil
}

// AmountText returns the value of the element with id "amount".
func (d *Document) AmountText() string {
	n := d.byID(amountID)
	if n == nil {
		return ""
	}
	return fieldValue(n)
}

// ShareEntries returns every share-text field in document order.
func (d *Document) ShareEntries() []domain.ShareEntry {
	var out []domain.ShareEntry
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasClass(n, shareClass) {
			out = append(out, domain.ShareEntry{
				ID:         domain.ShareID(getAttr(n, "id")),
				Expression: fieldValue(n),
			})
		}
		return true
	})
	return out
}

// SetOutput replaces the children of the element with the given id by a
// single text node.
func (d *Document) SetOutput(id, text string) error {
	n := d.byID(id)
	if n == nil {
		return fmt.Errorf("%w: %q", ErrNoElement, id)
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) byID(id string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && getAttr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// walk visits n and its descendants in document order until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// fieldValue is the value attribute of an input, or the text of a textarea.
func fieldValue(n *html.Node) string {
	if n.DataAtom == atom.Textarea {
		var b strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
		return b.String()
	}
	return getAttr(n, "value")
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(getAttr(n, "class")), class)
}

// Compile-time assertion that Document implements domain.Page.
var _ domain.Page = (*Document)(nil)

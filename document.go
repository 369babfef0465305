package notheme

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PageKind identifies which of the six page kinds a Document was rendered
// for.
type PageKind string

const (
	// KindIndex is the root of the site, rendered by RenderIndex.
	KindIndex PageKind = "index"

	// KindSection is a Section's listing, rendered by RenderSection.
	KindSection PageKind = "section"

	// KindItem is a single Item, rendered by RenderItem.
	KindItem PageKind = "item"

	// KindPage is a standalone Page, rendered by RenderPage.
	KindPage PageKind = "page"

	// KindTagList is the page listing every tag, rendered by
	// RenderTagList.
	KindTagList PageKind = "tag_list"

	// KindTagDetails is a single tag's page, rendered by
	// RenderTagDetails.
	KindTagDetails PageKind = "tag_details"
)

// PageKinds returns every PageKind, in the order the host usually renders
// them.
func PageKinds() []PageKind {
	return []PageKind{KindIndex, KindSection, KindItem, KindPage, KindTagList, KindTagDetails}
}

// Document is a rendered page, held as an HTML node tree. Serializing and
// writing it is up to the host.
type Document struct {
	Kind PageKind
	root *html.Node
}

func parseDocument(kind PageKind, r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s document: %w", kind, err)
	}
	return &Document{Kind: kind, root: root}, nil
}

// Root returns the document node at the top of the tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// HTML returns the <html> element.
func (d *Document) HTML() *html.Node {
	return findElement(d.root, atom.Html)
}

// Lang returns the lang attribute of the <html> element.
func (d *Document) Lang() string {
	return Attr(d.HTML(), "lang")
}

// Head returns the <head> element.
func (d *Document) Head() *html.Node {
	return findElement(d.root, atom.Head)
}

// Body returns the <body> element.
func (d *Document) Body() *html.Node {
	return findElement(d.root, atom.Body)
}

// Render writes the document as HTML to w.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the document as HTML.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Equal reports whether two documents have the same kind and structurally
// identical trees: the same nodes, in the same order, with the same
// attributes in the same order.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Kind == other.Kind && EqualNodes(d.root, other.root)
}

// Fragment is a rendered piece of a page, like a head or a list, held as
// the sequence of top-level nodes it's made of.
type Fragment []*html.Node

// Render writes the fragment as HTML to w.
func (f Fragment) Render(w io.Writer) error {
	for _, node := range f {
		if err := html.Render(w, node); err != nil {
			return err
		}
	}
	return nil
}

// String returns the fragment as HTML.
func (f Fragment) String() string {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Equal reports whether two fragments are structurally identical.
func (f Fragment) Equal(other Fragment) bool {
	return slices.EqualFunc(f, other, EqualNodes)
}

// EqualNodes reports whether the trees rooted at a and b are structurally
// identical.
func EqualNodes(a, b *html.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.DataAtom != b.DataAtom || a.Data != b.Data || a.Namespace != b.Namespace {
		return false
	}
	if !slices.Equal(a.Attr, b.Attr) {
		return false
	}
	ac, bc := a.FirstChild, b.FirstChild
	for ac != nil && bc != nil {
		if !EqualNodes(ac, bc) {
			return false
		}
		ac, bc = ac.NextSibling, bc.NextSibling
	}
	return ac == nil && bc == nil
}

// Attr returns the value of the attribute key on n, or an empty string if
// n is nil or has no such attribute.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// ChildElements returns the element children of n, skipping text, comment
// and other non-element nodes.
func ChildElements(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var results []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			results = append(results, c)
		}
	}
	return results
}

// findElement does a depth-first search for the first element of type a in
// the tree rooted at n.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

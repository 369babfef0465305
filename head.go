package notheme

import (
	"context"

	"golang.org/x/net/html/atom"
)

var _ fragment = Head{}

// Head is the metadata shared by the <head> of every page: character
// encoding, viewport, title, description, and canonical URL.
type Head struct {
	Title        string
	Description  string
	CanonicalURL string
}

// BuildHead returns the Head for a page of site. Its arguments are used
// verbatim; nothing is validated.
func BuildHead(_ Site, title, description, canonicalURL string) Head {
	return Head{
		Title:        title,
		Description:  description,
		CanonicalURL: canonicalURL,
	}
}

// Templates returns the template the head is rendered with.
func (Head) Templates(_ context.Context) []string {
	return []string{"fragments/head.html.tmpl"}
}

// Key returns the cache key for the head's templates.
func (Head) Key(_ context.Context) string {
	return "fragments/head"
}

// ExecutedTemplate returns the name of the head template.
func (Head) ExecutedTemplate(_ context.Context) string {
	return "head"
}

func (Head) parent() atom.Atom {
	return atom.Head
}

// Nodes renders the head's elements, in the order they appear in a page's
// <head>.
func (h Head) Nodes(ctx context.Context) (Fragment, error) {
	return renderFragment(ctx, h)
}

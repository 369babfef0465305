package notheme

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const tracerName = "impractical.co/notheme"

//go:embed templates
var embedded embed.FS

// templateDir returns the theme's templates, rooted so that Component
// template paths don't include the templates/ prefix.
func templateDir() fs.FS {
	dir, err := fs.Sub(embedded, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "templates" is
		// always valid
		panic(err)
	}
	return dir
}

// RenderData is the data that is passed to a page's templates when rendering
// it.
type RenderData[PageType Renderable] struct {
	// Site is the Site being built, available to every page as .Site.
	Site Site

	// Page is the page being rendered, available as .Page.
	Page PageType
}

// fragment is a Renderable that renders to a standalone Fragment rather
// than a whole Document.
type fragment interface {
	Renderable

	// parent is the element the fragment's nodes are parsed as children
	// of.
	parent() atom.Atom
}

func startSpan(ctx context.Context, name string, kind PageKind, path string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(
		attribute.String("notheme.page.kind", string(kind)),
		attribute.String("notheme.page.path", path),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// renderDocument executes page's templates and parses the result into a
// Document.
func renderDocument[PageType Renderable](ctx context.Context, site Site, kind PageKind, path string, page PageType) (doc *Document, err error) {
	ctx, span := startSpan(ctx, "notheme.Render"+kindSpanSuffix(kind), kind, path)
	defer func() { endSpan(span, err) }()

	tmpl, err := getTemplate(ctx, site, page)
	if err != nil {
		logger(ctx).ErrorContext(ctx, "error loading templates", "kind", kind, "path", path, "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(&buf, executed, RenderData[PageType]{
		Site: site,
		Page: page,
	})
	if err != nil {
		err = fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
		logger(ctx).ErrorContext(ctx, "error rendering page", "kind", kind, "path", path, "error", err)
		return nil, err
	}

	doc, err = parseDocument(kind, &buf)
	if err != nil {
		logger(ctx).ErrorContext(ctx, "error parsing rendered page", "kind", kind, "path", path, "error", err)
		return nil, err
	}
	logger(ctx).DebugContext(ctx, "rendered page", "kind", kind, "path", path)
	return doc, nil
}

// renderFragment executes frag's templates on their own, with frag as the
// template data, and parses the result into a Fragment.
func renderFragment(ctx context.Context, frag fragment) (Fragment, error) {
	tmpl, err := getTemplate(ctx, nil, frag)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	executed := frag.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(&buf, executed, frag)
	if err != nil {
		return nil, fmt.Errorf("error executing template %q for %T: %w", executed, frag, err)
	}

	parent := frag.parent()
	nodes, err := html.ParseFragment(&buf, &html.Node{
		Type:     html.ElementNode,
		Data:     parent.String(),
		DataAtom: parent,
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing rendered %T: %w", frag, err)
	}
	return Fragment(nodes), nil
}

// getTemplate returns the parsed templates for r, consulting the site's
// cache first if the site has one. A nil site means no cache.
func getTemplate(ctx context.Context, site Site, r Renderable) (*template.Template, error) {
	key := r.Key(ctx)
	cache, _ := site.(TemplateCacher)
	if cache != nil {
		cached := cache.GetCachedTemplate(ctx, key)
		if cached != nil {
			return cached, nil
		}
	}
	tmplPaths := getComponentTemplatePaths(ctx, r)
	if len(tmplPaths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", r, ErrNoTemplatePath)
	}
	parsed, err := parseTemplates(templateDir(), tmplPaths...)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for %T: %w", tmplPaths, r, err)
	}
	if cache != nil {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

func kindSpanSuffix(kind PageKind) string {
	switch kind {
	case KindIndex:
		return "Index"
	case KindSection:
		return "Section"
	case KindItem:
		return "Item"
	case KindPage:
		return "Page"
	case KindTagList:
		return "TagList"
	case KindTagDetails:
		return "TagDetails"
	}
	return string(kind)
}

// Package notheme is a theme for static site generators that renders plain,
// unstyled HTML pages from a site's content.
//
// The host generator owns the content: it parses it, describes the site
// through the Site interface, and calls one render function per page. There
// are six kinds of pages, each with its own render function: RenderIndex,
// RenderSection, RenderItem, RenderPage, RenderTagList, and
// RenderTagDetails. NoTheme bundles all six in a Theme value a host can
// select at build time.
//
// Every page shares the same <head>, built by BuildHead, and the list pages
// share the item and tag lists built by BuildItemList, BuildTagList, and
// BuildAllTagsList. The builders are plain functions of their arguments; the
// markup for what they build lives in html/template files embedded in the
// package, and each render function parses its output into a Document, a
// golang.org/x/net/html node tree the host serializes with Document.Render.
//
// Render functions don't keep any state between calls, so a host can render
// independent pages in parallel. A host that wants to skip re-parsing the
// embedded templates for every page can have its Site implement
// TemplateCacher, for example by embedding a *TemplateCache.
//
// Render functions log to the *slog.Logger attached to their context with
// LoggingContext, and record an OpenTelemetry span through the global tracer
// provider.
package notheme

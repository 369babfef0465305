package notheme

import (
	"context"
	"html/template"
)

// layout is the document skeleton every page fills in: the <html> element
// with the site's language, the shared head, and a body block.
type layout struct{}

func (layout) Templates(_ context.Context) []string {
	return []string{"layout/base.html.tmpl"}
}

func (layout) UseComponents(_ context.Context) []Component {
	return []Component{Head{}}
}

// document is embedded in every page. The layout renders its Head.
type document struct {
	Head Head
}

func (document) UseComponents(_ context.Context) []Component {
	return []Component{layout{}}
}

func (document) ExecutedTemplate(_ context.Context) string {
	return "base"
}

type indexPage struct {
	document
	Name        string
	Description string
}

func (indexPage) Templates(_ context.Context) []string {
	return []string{"pages/index.html.tmpl"}
}

func (indexPage) Key(_ context.Context) string {
	return "pages/index"
}

type sectionPage struct {
	document
	Title string
	Items ItemList
}

func (sectionPage) Templates(_ context.Context) []string {
	return []string{"pages/section.html.tmpl"}
}

func (sectionPage) UseComponents(_ context.Context) []Component {
	return []Component{layout{}, ItemList{}}
}

func (sectionPage) Key(_ context.Context) string {
	return "pages/section"
}

type itemPage struct {
	document
	Body template.HTML
	Tags TagList
}

func (itemPage) Templates(_ context.Context) []string {
	return []string{"pages/item.html.tmpl"}
}

func (itemPage) UseComponents(_ context.Context) []Component {
	return []Component{layout{}, TagList{}}
}

func (itemPage) Key(_ context.Context) string {
	return "pages/item"
}

type contentPage struct {
	document
	Body template.HTML
}

func (contentPage) Templates(_ context.Context) []string {
	return []string{"pages/page.html.tmpl"}
}

func (contentPage) Key(_ context.Context) string {
	return "pages/page"
}

type tagListPage struct {
	document
	Tags TagList
}

func (tagListPage) Templates(_ context.Context) []string {
	return []string{"pages/tag_list.html.tmpl"}
}

func (tagListPage) UseComponents(_ context.Context) []Component {
	return []Component{layout{}, TagList{}}
}

func (tagListPage) Key(_ context.Context) string {
	return "pages/tag_list"
}

type tagDetailsPage struct {
	document
	Tag         string
	TagListPath string
	Items       ItemList
}

func (tagDetailsPage) Templates(_ context.Context) []string {
	return []string{"pages/tag_details.html.tmpl"}
}

func (tagDetailsPage) UseComponents(_ context.Context) []Component {
	return []Component{layout{}, ItemList{}}
}

func (tagDetailsPage) Key(_ context.Context) string {
	return "pages/tag_details"
}

// RenderIndex renders the root of the site: its name as a heading, followed
// by its description.
func RenderIndex(ctx context.Context, site Site, index Index) (*Document, error) {
	return renderDocument(ctx, site, KindIndex, index.Path, indexPage{
		document: document{
			Head: BuildHead(site, site.Name(), site.Description(), site.URL().String()),
		},
		Name:        site.Name(),
		Description: site.Description(),
	})
}

// RenderSection renders a section: its title as a heading, followed by the
// list of its items in the order the section holds them.
func RenderSection(ctx context.Context, site Site, section Section) (*Document, error) {
	return renderDocument(ctx, site, KindSection, section.Path, sectionPage{
		document: document{
			Head: BuildHead(site, section.Title, section.Description, canonicalURL(site, section.Path)),
		},
		Title: section.Title,
		Items: BuildItemList(section.Items, site),
	})
}

// RenderItem renders a single item: its body in an <article>, followed by
// the item's tags.
func RenderItem(ctx context.Context, site Site, item Item) (*Document, error) {
	return renderDocument(ctx, site, KindItem, item.Path, itemPage{
		document: document{
			Head: BuildHead(site, item.Title, item.Description, canonicalURL(site, item.Path)),
		},
		Body: item.Body,
		Tags: BuildTagList(item, site),
	})
}

// RenderPage renders a standalone page, with its body as the only content.
func RenderPage(ctx context.Context, site Site, page Page) (*Document, error) {
	return renderDocument(ctx, site, KindPage, page.Path, contentPage{
		document: document{
			Head: BuildHead(site, page.Title, page.Description, canonicalURL(site, page.Path)),
		},
		Body: page.Body,
	})
}

// RenderTagList renders the page listing every tag, sorted.
//
// A nil Document with a nil error means the page should be left out of the
// output. This theme always renders it.
func RenderTagList(ctx context.Context, site Site, page TagListPage) (*Document, error) {
	return renderDocument(ctx, site, KindTagList, page.Path, tagListPage{
		document: document{
			Head: BuildHead(site, page.Title, page.Description, canonicalURL(site, page.Path)),
		},
		Tags: BuildAllTagsList(page.Tags, site),
	})
}

// RenderTagDetails renders the page for a single tag: a link back to the tag
// list, and every item on the site carrying the tag, newest first.
//
// A nil Document with a nil error means the page should be left out of the
// output. This theme always renders it.
func RenderTagDetails(ctx context.Context, site Site, page TagDetailsPage) (*Document, error) {
	return renderDocument(ctx, site, KindTagDetails, page.Path, tagDetailsPage{
		document: document{
			Head: BuildHead(site, page.Title, page.Description, canonicalURL(site, page.Path)),
		},
		Tag:         page.Tag.String(),
		TagListPath: site.TagListPath(),
		Items:       BuildItemList(itemsTaggedWith(site.Items(), page.Tag), site),
	})
}

package notheme

import (
	"cmp"
	"html/template"
	"net/url"
	"strings"
	"time"
)

// Tag is a label attached to Items. Tags are ordered by their string form,
// which keeps listings of them reproducible across builds.
type Tag string

// String returns the tag as it should be displayed.
func (t Tag) String() string {
	return string(t)
}

// Compare returns -1, 0, or 1 depending on whether t sorts before, equal
// to, or after other.
func (t Tag) Compare(other Tag) int {
	return cmp.Compare(string(t), string(other))
}

// Item is a single content entry, like a blog post.
type Item struct {
	Title       string
	Description string
	Date        time.Time

	// Path is the site-relative path of the item, e.g. /posts/hello.
	Path string

	// Body is the already-rendered content of the item. It is included
	// in the output without any escaping.
	Body template.HTML

	// Tags are kept in the order the host supplies them. Duplicates are
	// not removed.
	Tags []Tag
}

// HasTag reports whether tag is one of the item's tags.
func (i Item) HasTag(tag Tag) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Section is a named grouping of Items.
type Section struct {
	ID          string
	Title       string
	Description string
	Path        string
	Items       []Item
}

// Page is a standalone document without tags.
type Page struct {
	Title       string
	Description string
	Path        string
	Body        template.HTML
}

// Index is the root of the site. Everything rendered for it comes from the
// Site itself.
type Index struct {
	Path string
}

// TagListPage is the page listing every tag known to the site.
type TagListPage struct {
	Title       string
	Description string
	Path        string
	Tags        []Tag
}

// TagDetailsPage is the page listing every Item carrying Tag.
type TagDetailsPage struct {
	Title       string
	Description string
	Path        string
	Tag         Tag
}

// Site is the identity of the site being built. The host implements it;
// the theme only ever reads from it.
type Site interface {
	// Name is the name of the site, used as the title of the index.
	Name() string

	// Description is a short description of the site.
	Description() string

	// URL is the absolute base URL the site is published under.
	URL() *url.URL

	// Language is the content language, as a BCP 47 tag like "en".
	Language() string

	// PathForTag returns the site-relative path of the page for tag.
	PathForTag(tag Tag) string

	// TagListPath returns the site-relative path of the page listing
	// all tags.
	TagListPath() string

	// Items returns every Item on the site in the order the host
	// publishes them.
	Items() []Item
}

var _ Site = BasicSite{}

// BasicSite is a plain implementation of Site. Hosts can use it as is or
// embed it in their own Site type.
type BasicSite struct {
	SiteName        string
	SiteDescription string
	BaseURL         *url.URL
	ContentLanguage string

	// TagsPath is the path of the tag list page. It defaults to /tags.
	TagsPath string

	// TagPath overrides how tag paths are built. If nil, tag paths are
	// TagsPath followed by the path-escaped tag.
	TagPath func(Tag) string

	Content []Item
}

// Name returns the SiteName.
func (s BasicSite) Name() string { return s.SiteName }

// Description returns the SiteDescription.
func (s BasicSite) Description() string { return s.SiteDescription }

// URL returns a copy of the BaseURL, or an empty URL if none is set.
func (s BasicSite) URL() *url.URL {
	if s.BaseURL == nil {
		return &url.URL{}
	}
	u := *s.BaseURL
	return &u
}

// Language returns the ContentLanguage.
func (s BasicSite) Language() string { return s.ContentLanguage }

// PathForTag returns the path of the tag details page for tag.
func (s BasicSite) PathForTag(tag Tag) string {
	if s.TagPath != nil {
		return s.TagPath(tag)
	}
	return strings.TrimSuffix(s.TagListPath(), "/") + "/" + url.PathEscape(tag.String())
}

// TagListPath returns TagsPath, or /tags if it's not set.
func (s BasicSite) TagListPath() string {
	if s.TagsPath == "" {
		return "/tags"
	}
	return s.TagsPath
}

// Items returns the Content of the site.
func (s BasicSite) Items() []Item { return s.Content }

// canonicalURL resolves path against the site's base URL.
func canonicalURL(site Site, path string) string {
	return site.URL().JoinPath(path).String()
}

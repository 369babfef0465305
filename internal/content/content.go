// Package content loads a directory of Markdown files into the content model
// the notheme render functions expect.
//
// Markdown files at the root of the directory become Pages. Each
// subdirectory becomes a Section, and the Markdown files in it become the
// Section's Items. A subdirectory's _index.md, if present, supplies the
// Section's title and description.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"impractical.co/notheme"
)

// sectionIndexFile holds a section's own metadata rather than an item.
const sectionIndexFile = "_index.md"

// ErrInvalidDate is returned when a front matter date can't be parsed.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are the layouts front matter dates are tried in, in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04", time.DateOnly}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Site is the notheme.Site the build tool renders with. It caches the
// theme's parsed templates for the duration of a build.
type Site struct {
	notheme.BasicSite
	*notheme.TemplateCache
}

// Content is everything a build renders, ready to be passed to a theme.
type Content struct {
	Site       Site
	Index      notheme.Index
	Sections   []notheme.Section
	Pages      []notheme.Page
	TagList    notheme.TagListPage
	TagDetails []notheme.TagDetailsPage
}

// Options describe the site the content belongs to.
type Options struct {
	Name        string
	Description string
	BaseURL     *url.URL
	Language    string
	TagsPath    string
}

type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Tags        []string `yaml:"tags"`
}

type document struct {
	meta frontMatter
	date time.Time
	body template.HTML
}

// Load reads every Markdown file in fsys and assembles the site's content.
func Load(fsys fs.FS, opts Options) (*Content, error) {
	tagsPath := opts.TagsPath
	if tagsPath == "" {
		tagsPath = "/tags"
	}
	if !strings.HasPrefix(tagsPath, "/") {
		tagsPath = "/" + tagsPath
	}
	tagPath := func(tag notheme.Tag) string {
		name := slug.Make(tag.String())
		if name == "" {
			name = url.PathEscape(tag.String())
		}
		return path.Join(tagsPath, name)
	}
	lang, err := language.Parse(opts.Language)
	if err != nil {
		lang = language.Und
	}
	titler := cases.Title(lang)

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("error reading content directory: %w", err)
	}

	result := &Content{
		Index: notheme.Index{Path: "/"},
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			section, err := loadSection(fsys, name, titler)
			if err != nil {
				return nil, err
			}
			result.Sections = append(result.Sections, section)
			continue
		}
		if !isMarkdown(name) {
			continue
		}
		doc, err := loadDocument(fsys, name)
		if err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, notheme.Page{
			Title:       titleOr(doc.meta.Title, name),
			Description: doc.meta.Description,
			Path:        "/" + slug.Make(removeExt(name)),
			Body:        doc.body,
		})
	}

	tags := mergeTags(result.Sections, tagPath)
	var items []notheme.Item
	for _, section := range result.Sections {
		items = append(items, section.Items...)
	}

	result.Site = Site{
		BasicSite: notheme.BasicSite{
			SiteName:        opts.Name,
			SiteDescription: opts.Description,
			BaseURL:         opts.BaseURL,
			ContentLanguage: opts.Language,
			TagsPath:        tagsPath,
			TagPath:         tagPath,
			Content:         items,
		},
		TemplateCache: notheme.NewTemplateCache(),
	}

	result.TagList = notheme.TagListPage{
		Title:       "Tags",
		Description: "Every tag on " + opts.Name,
		Path:        tagsPath,
		Tags:        tags,
	}
	for _, tag := range tags {
		result.TagDetails = append(result.TagDetails, notheme.TagDetailsPage{
			Title:       tag.String(),
			Description: "Everything tagged with " + tag.String(),
			Path:        result.Site.PathForTag(tag),
			Tag:         tag,
		})
	}
	return result, nil
}

func loadSection(fsys fs.FS, dir string, titler cases.Caser) (notheme.Section, error) {
	section := notheme.Section{
		ID:    dir,
		Title: titler.String(strings.ReplaceAll(dir, "-", " ")),
		Path:  "/" + slug.Make(dir),
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return section, fmt.Errorf("error reading section %q: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isMarkdown(name) {
			continue
		}
		doc, err := loadDocument(fsys, path.Join(dir, name))
		if err != nil {
			return section, err
		}
		if name == sectionIndexFile {
			section.Title = titleOr(doc.meta.Title, section.Title)
			section.Description = doc.meta.Description
			continue
		}
		tags := make([]notheme.Tag, 0, len(doc.meta.Tags))
		for _, tag := range doc.meta.Tags {
			tags = append(tags, notheme.Tag(tag))
		}
		section.Items = append(section.Items, notheme.Item{
			Title:       titleOr(doc.meta.Title, name),
			Description: doc.meta.Description,
			Date:        doc.date,
			Path:        path.Join(section.Path, slug.Make(removeExt(name))),
			Body:        doc.body,
			Tags:        tags,
		})
	}
	// newest first, like most blogs; ties keep directory order
	slices.SortStableFunc(section.Items, func(a, b notheme.Item) int {
		return b.Date.Compare(a.Date)
	})
	return section, nil
}

func loadDocument(fsys fs.FS, name string) (document, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return document{}, fmt.Errorf("error opening %q: %w", name, err)
	}
	defer file.Close()

	var doc document
	rest, err := frontmatter.Parse(file, &doc.meta)
	if err != nil {
		return document{}, fmt.Errorf("error parsing front matter of %q: %w", name, err)
	}

	doc.date, err = parseDate(doc.meta.Date)
	if err != nil {
		return document{}, fmt.Errorf("error parsing %q: %w", name, err)
	}
	if doc.date.IsZero() {
		if info, err := file.Stat(); err == nil {
			doc.date = info.ModTime()
		}
	}

	var buf bytes.Buffer
	if err := markdown.Convert(rest, &buf); err != nil {
		return document{}, fmt.Errorf("error rendering markdown of %q: %w", name, err)
	}
	doc.body = template.HTML(buf.String()) // #nosec G203
	return doc, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// mergeTags rewrites every item's tags so that tags sharing a page, like
// "Go" and "go", become the spelling seen first, and drops the duplicates
// that leaves on an item. It returns the distinct tags in the order they're
// first seen.
func mergeTags(sections []notheme.Section, pathFor func(notheme.Tag) string) []notheme.Tag {
	var tags []notheme.Tag
	seen := map[string]notheme.Tag{}
	for s := range sections {
		for i := range sections[s].Items {
			item := &sections[s].Items[i]
			merged := make([]notheme.Tag, 0, len(item.Tags))
			for _, tag := range item.Tags {
				if strings.TrimSpace(tag.String()) == "" {
					continue
				}
				tagPath := pathFor(tag)
				first, ok := seen[tagPath]
				if !ok {
					first = tag
					seen[tagPath] = tag
					tags = append(tags, tag)
				}
				if !slices.Contains(merged, first) {
					merged = append(merged, first)
				}
			}
			item.Tags = merged
		}
	}
	return tags
}

func isMarkdown(name string) bool {
	return strings.EqualFold(path.Ext(name), ".md")
}

// removeExt removes any extensions from the path provided.
func removeExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

func titleOr(title, name string) string {
	if title != "" {
		return title
	}
	return removeExt(path.Base(name))
}

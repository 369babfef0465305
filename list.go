package notheme

import (
	"context"
	"slices"

	"golang.org/x/net/html/atom"
)

var (
	_ fragment      = ItemList{}
	_ fragment      = TagList{}
	_ ComponentUser = ItemList{}
)

// ItemList is a list of Items, each shown with its title linking to it, its
// tags, and its description.
type ItemList struct {
	Entries []ItemEntry
}

// ItemEntry is a single Item in an ItemList.
type ItemEntry struct {
	Title       string
	Path        string
	Description string
	Tags        TagList
}

// TagList is a list of links to tag pages.
type TagList struct {
	Entries []TagEntry
}

// TagEntry is a single link in a TagList.
type TagEntry struct {
	Href string
	Text string
}

// BuildItemList returns an ItemList with one entry per item, in the order
// the items are passed. Callers that want the items sorted need to sort them
// first. An empty items yields an ItemList without entries.
func BuildItemList(items []Item, site Site) ItemList {
	list := ItemList{Entries: make([]ItemEntry, 0, len(items))}
	for _, item := range items {
		list.Entries = append(list.Entries, ItemEntry{
			Title:       item.Title,
			Path:        item.Path,
			Description: item.Description,
			Tags:        BuildTagList(item, site),
		})
	}
	return list
}

// BuildTagList returns a TagList linking to each of item's tags, in the
// order the item stores them.
func BuildTagList(item Item, site Site) TagList {
	return buildTagList(item.Tags, site)
}

// BuildAllTagsList returns a TagList linking to each of tags, sorted by
// Tag.Compare. tags is not modified.
func BuildAllTagsList(tags []Tag, site Site) TagList {
	sorted := slices.Clone(tags)
	slices.SortStableFunc(sorted, Tag.Compare)
	return buildTagList(sorted, site)
}

func buildTagList(tags []Tag, site Site) TagList {
	list := TagList{Entries: make([]TagEntry, 0, len(tags))}
	for _, tag := range tags {
		list.Entries = append(list.Entries, TagEntry{
			Href: site.PathForTag(tag),
			Text: tag.String(),
		})
	}
	return list
}

// itemsTaggedWith returns the items carrying tag, newest first. Items with
// the same date keep the order they were passed in.
func itemsTaggedWith(items []Item, tag Tag) []Item {
	var results []Item
	for _, item := range items {
		if item.HasTag(tag) {
			results = append(results, item)
		}
	}
	slices.SortStableFunc(results, func(a, b Item) int {
		return b.Date.Compare(a.Date)
	})
	return results
}

// Templates returns the template the item list is rendered with.
func (ItemList) Templates(_ context.Context) []string {
	return []string{"fragments/item_list.html.tmpl"}
}

// UseComponents returns the tag list each entry renders.
func (ItemList) UseComponents(_ context.Context) []Component {
	return []Component{TagList{}}
}

// Key returns the cache key for the item list's templates.
func (ItemList) Key(_ context.Context) string {
	return "fragments/item_list"
}

// ExecutedTemplate returns the name of the item list template.
func (ItemList) ExecutedTemplate(_ context.Context) string {
	return "item_list"
}

func (ItemList) parent() atom.Atom {
	return atom.Body
}

// Nodes renders the item list as a <ul> element.
func (l ItemList) Nodes(ctx context.Context) (Fragment, error) {
	return renderFragment(ctx, l)
}

// Templates returns the template the tag list is rendered with.
func (TagList) Templates(_ context.Context) []string {
	return []string{"fragments/tag_list.html.tmpl"}
}

// Key returns the cache key for the tag list's templates.
func (TagList) Key(_ context.Context) string {
	return "fragments/tag_list"
}

// ExecutedTemplate returns the name of the tag list template.
func (TagList) ExecutedTemplate(_ context.Context) string {
	return "tag_list"
}

func (TagList) parent() atom.Atom {
	return atom.Body
}

// Nodes renders the tag list as a <ul> element.
func (l TagList) Nodes(ctx context.Context) (Fragment, error) {
	return renderFragment(ctx, l)
}

package notheme_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"impractical.co/notheme"
)

func exampleSite() notheme.BasicSite {
	base, err := url.Parse("https://ex.com")
	if err != nil {
		panic(err)
	}
	return notheme.BasicSite{
		SiteName:        "Blog",
		SiteDescription: "A blog",
		BaseURL:         base,
		ContentLanguage: "en",
	}
}

func ExampleRenderIndex() {
	// usually the host builds the context, here we're just adding a logger
	ctx := notheme.LoggingContext(context.Background(), slog.Default())

	doc, err := notheme.RenderIndex(ctx, exampleSite(), notheme.Index{Path: "/"})
	if err != nil {
		panic(err)
	}
	if err := doc.Render(os.Stdout); err != nil {
		panic(err)
	}

	//Output:
	// <!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"/><meta name="viewport" content="width=device-width, initial-scale=1.0"/><title>Blog</title><meta name="description" content="A blog"/><link rel="canonical" href="https://ex.com"/></head><body><h1>Blog</h1><p>A blog</p></body></html>
}

func ExampleRenderItem() {
	ctx := context.Background()

	item := notheme.Item{
		Title:       "Post",
		Description: "A post",
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Path:        "/posts/post",
		Body:        "<p>Hello</p>",
		Tags:        []notheme.Tag{"go", "rust"},
	}
	doc, err := notheme.RenderItem(ctx, exampleSite(), item)
	if err != nil {
		panic(err)
	}
	if err := doc.Render(os.Stdout); err != nil {
		panic(err)
	}

	//Output:
	// <!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"/><meta name="viewport" content="width=device-width, initial-scale=1.0"/><title>Post</title><meta name="description" content="A post"/><link rel="canonical" href="https://ex.com/posts/post"/></head><body><article><div><p>Hello</p></div><span>Tagged with: </span><ul><li><a href="/tags/go">go</a></li><li><a href="/tags/rust">rust</a></li></ul></article></body></html>
}

func ExampleRenderTagDetails() {
	ctx := context.Background()

	site := exampleSite()
	site.Content = []notheme.Item{
		{Title: "Old", Path: "/posts/old", Description: "Older", Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Tags: []notheme.Tag{"go"}},
		{Title: "Other", Path: "/posts/other", Description: "Untagged", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "New", Path: "/posts/new", Description: "Newer", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Tags: []notheme.Tag{"go"}},
	}
	doc, err := notheme.RenderTagDetails(ctx, site, notheme.TagDetailsPage{
		Title:       "go",
		Description: "Posts tagged go",
		Path:        "/tags/go",
		Tag:         "go",
	})
	if err != nil {
		panic(err)
	}
	body := notheme.Fragment{doc.Body()}
	fmt.Println(body.String())

	//Output:
	// <body><h1>Tagged with <span>go</span></h1><a href="/tags">Browse all tags</a><ul><li><article><h1><a href="/posts/new">New</a></h1><ul><li><a href="/tags/go">go</a></li></ul><p>Newer</p></article></li><li><article><h1><a href="/posts/old">Old</a></h1><ul><li><a href="/tags/go">go</a></li></ul><p>Older</p></article></li></ul></body>
}

func ExampleBuildAllTagsList() {
	ctx := context.Background()

	list := notheme.BuildAllTagsList([]notheme.Tag{"swift", "go", "rust"}, exampleSite())
	nodes, err := list.Nodes(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Println(nodes.String())

	//Output:
	// <ul><li><a href="/tags/go">go</a></li><li><a href="/tags/rust">rust</a></li><li><a href="/tags/swift">swift</a></li></ul>
}

// Package publish renders a site's content with a theme and writes the
// results to disk.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
	"golang.org/x/sync/errgroup"

	"impractical.co/notheme"
	"impractical.co/notheme/internal/content"
)

var (
	// ErrNoOutputDir is returned when a Publisher has no directory to
	// write to.
	ErrNoOutputDir = errors.New("no output directory set")

	// ErrDuplicatePath is returned when two pages would be written to the
	// same file.
	ErrDuplicatePath = errors.New("pages share an output path")
)

// Publisher renders every page of a site and writes each one to
// <OutputDir>/<path>/index.html.
type Publisher struct {
	Theme     notheme.Theme
	OutputDir string

	// Concurrency limits how many pages are rendered at once. Zero means
	// runtime.GOMAXPROCS(0).
	Concurrency int

	// Resources holds the files named by the theme's ResourcePaths. It
	// can be nil if the theme has none.
	Resources fs.FS

	Logger *slog.Logger
}

// Stats summarizes a Publish call.
type Stats struct {
	// Written is the number of pages written.
	Written int

	// Skipped is the number of pages the theme chose not to render.
	Skipped int

	// Resources is the number of static resources copied.
	Resources int
}

type job struct {
	kind   notheme.PageKind
	path   string
	render func(context.Context) (*notheme.Document, error)
}

// Publish renders every page in c. The first error stops the build and is
// returned; pages already written are left in place.
func (p Publisher) Publish(ctx context.Context, c *content.Content) (Stats, error) {
	var stats Stats
	if p.OutputDir == "" {
		return stats, ErrNoOutputDir
	}
	log := p.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx = notheme.LoggingContext(ctx, log)

	jobs := p.jobs(c)
	if err := p.checkPaths(jobs); err != nil {
		return stats, err
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency())
	for _, j := range jobs {
		eg.Go(func() error {
			doc, err := j.render(ctx)
			if err != nil {
				return fmt.Errorf("error rendering %s %q: %w", j.kind, j.path, err)
			}
			if doc == nil {
				log.DebugContext(ctx, "theme skipped page", "kind", j.kind, "path", j.path)
				mu.Lock()
				stats.Skipped++
				mu.Unlock()
				return nil
			}
			if err := p.write(j.path, doc); err != nil {
				return err
			}
			log.DebugContext(ctx, "wrote page", "kind", j.kind, "path", j.path)
			mu.Lock()
			stats.Written++
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return stats, err
	}

	copied, err := p.copyResources()
	stats.Resources = copied
	if err != nil {
		return stats, err
	}
	return stats, nil
}

func (p Publisher) concurrency() int {
	if p.Concurrency > 0 {
		return p.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (p Publisher) jobs(c *content.Content) []job {
	site := c.Site
	jobs := []job{
		{kind: notheme.KindIndex, path: c.Index.Path, render: func(ctx context.Context) (*notheme.Document, error) {
			return p.Theme.Index(ctx, site, c.Index)
		}},
		{kind: notheme.KindTagList, path: c.TagList.Path, render: func(ctx context.Context) (*notheme.Document, error) {
			return p.Theme.TagList(ctx, site, c.TagList)
		}},
	}
	for _, section := range c.Sections {
		jobs = append(jobs, job{kind: notheme.KindSection, path: section.Path, render: func(ctx context.Context) (*notheme.Document, error) {
			return p.Theme.Section(ctx, site, section)
		}})
		for _, item := range section.Items {
			jobs = append(jobs, job{kind: notheme.KindItem, path: item.Path, render: func(ctx context.Context) (*notheme.Document, error) {
				return p.Theme.Item(ctx, site, item)
			}})
		}
	}
	for _, page := range c.Pages {
		jobs = append(jobs, job{kind: notheme.KindPage, path: page.Path, render: func(ctx context.Context) (*notheme.Document, error) {
			return p.Theme.Page(ctx, site, page)
		}})
	}
	for _, details := range c.TagDetails {
		jobs = append(jobs, job{kind: notheme.KindTagDetails, path: details.Path, render: func(ctx context.Context) (*notheme.Document, error) {
			return p.Theme.TagDetails(ctx, site, details)
		}})
	}
	return jobs
}

// checkPaths makes sure no two jobs write the same file, which would leave
// whichever finished last in place.
func (p Publisher) checkPaths(jobs []job) error {
	seen := make(map[string]job, len(jobs))
	for _, j := range jobs {
		out := p.OutputPath(j.path)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%w: %s %q and %s %q both write %s", ErrDuplicatePath, prev.kind, prev.path, j.kind, j.path, out)
		}
		seen[out] = j
	}
	return nil
}

// OutputPath returns the file a page at urlPath is written to.
func (p Publisher) OutputPath(urlPath string) string {
	rel := filepath.FromSlash(strings.Trim(urlPath, "/"))
	return filepath.Join(p.OutputDir, rel, "index.html")
}

func (p Publisher) write(urlPath string, doc *notheme.Document) error {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("error serializing %q: %w", urlPath, err)
	}
	return writeFile(p.OutputPath(urlPath), &buf)
}

func (p Publisher) copyResources() (int, error) {
	var copied int
	for _, name := range p.Theme.ResourcePaths {
		if p.Resources == nil {
			return copied, fmt.Errorf("theme needs resource %q but no resources were provided: %w", name, fs.ErrNotExist)
		}
		data, err := fs.ReadFile(p.Resources, strings.TrimPrefix(name, "/"))
		if err != nil {
			return copied, fmt.Errorf("error reading resource %q: %w", name, err)
		}
		dest := filepath.Join(p.OutputDir, filepath.FromSlash(strings.TrimPrefix(name, "/")))
		if err := writeFile(dest, bytes.NewReader(data)); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

func writeFile(dest string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("error creating directory for %q: %w", dest, err)
	}
	if err := atomic.WriteFile(dest, r); err != nil {
		return fmt.Errorf("error writing %q: %w", dest, err)
	}
	return nil
}

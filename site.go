package notheme

import (
	"context"
	"html/template"
	"sync"
)

// TemplateCacher is an optional interface for Sites. Those fulfilling it can
// cache the theme's parsed templates using the Key of each Renderable, to
// save on the overhead of parsing them for every page of a build. Only the
// parsed templates are cached; every render still executes them against
// its own data, so the output is the same with or without a cache.
type TemplateCacher interface {
	// GetCachedTemplate returns the *template.Template specified by the
	// passed key. It should return nil if the template hasn't been cached
	// yet.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate stores the passed *template.Template under the
	// passed key, for later retrieval with GetCachedTemplate.
	//
	// Any errors encountered should be logged, but as this is a
	// best-effort operation, will not be surfaced outside the function.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

var _ TemplateCacher = &TemplateCache{}

// TemplateCache is an in-memory implementation of TemplateCacher that can be
// embedded in a host's Site implementation. A TemplateCache must be
// instantiated through NewTemplateCache, its empty value is not usable.
type TemplateCache struct {
	templates map[string]*template.Template
	mu        sync.RWMutex
}

// NewTemplateCache returns a TemplateCache that is ready to be used.
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		templates: map[string]*template.Template{},
	}
}

// GetCachedTemplate returns the cached template associated with the passed
// key, if one exists. If no template is cached for that key, it returns nil.
//
// It can safely be used by multiple goroutines.
func (c *TemplateCache) GetCachedTemplate(_ context.Context, key string) *template.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.templates[key]
}

// SetCachedTemplate caches a template for the given key.
//
// It can safely be used by multiple goroutines.
func (c *TemplateCache) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates[key] = tmpl
}

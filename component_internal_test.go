package notheme

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testComponent struct {
	templates []string
	uses      []Component
	resources []string
}

func (c testComponent) Templates(_ context.Context) []string {
	return c.templates
}

func (c testComponent) UseComponents(_ context.Context) []Component {
	return c.uses
}

func (c testComponent) LinkResources(_ context.Context) []string {
	return c.resources
}

type testRenderable struct {
	testComponent
}

func (testRenderable) Key(_ context.Context) string {
	return "test"
}

func (testRenderable) ExecutedTemplate(_ context.Context) string {
	return "base"
}

func TestGetComponentTemplatePathsDeduplicates(t *testing.T) {
	t.Parallel()

	shared := testComponent{templates: []string{"shared.tmpl"}}
	root := testComponent{
		templates: []string{"root.tmpl"},
		uses: []Component{
			testComponent{templates: []string{"a.tmpl"}, uses: []Component{shared}},
			testComponent{templates: []string{"b.tmpl", "shared.tmpl"}, uses: []Component{shared}},
		},
	}
	assert.Equal(t, []string{"root.tmpl", "a.tmpl", "shared.tmpl", "b.tmpl"},
		getComponentTemplatePaths(context.Background(), root))
}

func TestGetComponentResourcesDeduplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := testComponent{resources: []string{"/site.css"}}
	first := testComponent{resources: []string{"/first.js"}, uses: []Component{shared}}
	second := testComponent{resources: []string{"/site.css", "/second.js"}, uses: []Component{shared}}

	assert.Equal(t, []string{"/first.js", "/site.css", "/second.js"}, getComponentResources(ctx, first, second))
	assert.Equal(t, []string{}, getComponentResources(ctx, testComponent{}))
}

func TestParseTemplates(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"base.tmpl":      {Data: []byte(`{{ define "base" }}<p>{{ block "body" . }}{{ end }}</p>{{ end }}`)},
		"pages/one.tmpl": {Data: []byte(`{{ define "body" }}one{{ end }}`)},
		"broken.tmpl":    {Data: []byte(`{{ define "base" }}`)},
		"pages/two.tmpl": {Data: []byte(`{{ define "other" }}two{{ end }}`)},
	}

	tmpl, err := parseTemplates(fsys, "base.tmpl", "pages/one.tmpl")
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("body"))

	tmpl, err = parseTemplates(fsys, "pages/*.tmpl")
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("other"))

	_, err = parseTemplates(fsys, "missing/*.tmpl")
	require.ErrorIs(t, err, ErrTemplatePatternMatchesNoFiles)

	_, err = parseTemplates(fsys)
	require.ErrorIs(t, err, ErrNoTemplatePath)

	_, err = parseTemplates(fsys, "broken.tmpl")
	require.Error(t, err)
}

func TestGetTemplateErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := getTemplate(ctx, nil, testRenderable{})
	require.ErrorIs(t, err, ErrNoTemplatePath)

	_, err = getTemplate(ctx, nil, testRenderable{testComponent{templates: []string{"pages/missing.html.tmpl"}}})
	require.ErrorIs(t, err, ErrTemplatePatternMatchesNoFiles)
}

func TestGetTemplateUsesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	site := struct {
		BasicSite
		*TemplateCache
	}{TemplateCache: NewTemplateCache()}

	first, err := getTemplate(ctx, site, contentPage{})
	require.NoError(t, err)
	second, err := getTemplate(ctx, site, contentPage{})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, first, site.GetCachedTemplate(ctx, "pages/page"))

	uncached, err := getTemplate(ctx, BasicSite{}, contentPage{})
	require.NoError(t, err)
	assert.NotSame(t, first, uncached)
}

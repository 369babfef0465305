package notheme

import "context"

// ResourceLinker is an interface that Components can fulfill to ship static
// resources (stylesheets, scripts, images) alongside the pages they render.
// The host copies every path a theme declares into its output.
type ResourceLinker interface {
	// LinkResources returns the paths of the static resources the
	// Component relies on.
	//
	// Resources of Components returned by UseComponents are gathered
	// automatically and don't need to be repeated.
	LinkResources(context.Context) []string
}

// getComponentResources gathers the resources of every passed Component and
// the Components they use, dropping duplicates. The result is never nil, so
// a theme without resources declares an empty set rather than an unset one.
func getComponentResources(ctx context.Context, components ...Component) []string {
	results := []string{}
	seen := map[string]struct{}{}
	for _, component := range components {
		for _, comp := range getRecursiveComponents(ctx, component) {
			linker, ok := comp.(ResourceLinker)
			if !ok {
				continue
			}
			for _, path := range linker.LinkResources(ctx) {
				if _, ok := seen[path]; ok {
					continue
				}
				results = append(results, path)
				seen[path] = struct{}{}
			}
		}
	}
	return results
}

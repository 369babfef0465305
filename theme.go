package notheme

import "context"

// ThemeName is the name the theme is registered under.
const ThemeName = "notheme"

// Theme bundles a render function for each page kind with the static
// resources the theme ships. It is a plain value: it holds no state, and can
// be copied and shared between concurrent builds.
type Theme struct {
	Name string

	Index      func(ctx context.Context, site Site, index Index) (*Document, error)
	Section    func(ctx context.Context, site Site, section Section) (*Document, error)
	Item       func(ctx context.Context, site Site, item Item) (*Document, error)
	Page       func(ctx context.Context, site Site, page Page) (*Document, error)
	TagList    func(ctx context.Context, site Site, page TagListPage) (*Document, error)
	TagDetails func(ctx context.Context, site Site, page TagDetailsPage) (*Document, error)

	// ResourcePaths are the paths of the static resources the host needs
	// to copy into the output for the theme to work.
	ResourcePaths []string
}

// NoTheme returns the theme: unstyled pages, without any CSS, JavaScript, or
// images of its own.
func NoTheme() Theme {
	return Theme{
		Name:       ThemeName,
		Index:      RenderIndex,
		Section:    RenderSection,
		Item:       RenderItem,
		Page:       RenderPage,
		TagList:    RenderTagList,
		TagDetails: RenderTagDetails,
		ResourcePaths: getComponentResources(context.Background(),
			indexPage{}, sectionPage{}, itemPage{}, contentPage{}, tagListPage{}, tagDetailsPage{},
		),
	}
}

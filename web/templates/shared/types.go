package shared

import "dokser_echo/internal/routes"

// Breadcrumb represents a navigation trail step; an empty URL marks the current page
type Breadcrumb struct {
	Title string
	URL   string
}

// LayoutProps is the common data every page passes to Layout
type LayoutProps struct {
	Title       string
	ActiveNav   string // "home", "docs", "blog" or "admin"
	Breadcrumbs []Breadcrumb
	UserEmail   string

	// Sidebar is rendered when Sections is non-empty
	Sections   []routes.Section
	ActiveHref string
}

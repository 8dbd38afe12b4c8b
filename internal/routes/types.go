package routes

// RouteNode is one entry of the declared navigation tree.
// Href is a segment relative to the parent node, e.g. "/introduction".
type RouteNode struct {
	Title  string
	Href   string
	NoLink bool // grouping header, no page of its own
	Items  []RouteNode
}

// Page is a navigable route with its absolute path resolved
type Page struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// Section groups the pages flattened from a single root node, for the sidebar
type Section struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Pages []Page `json:"pages"`
}

// Crumb represents one step of a breadcrumb trail
type Crumb struct {
	Title string
	Href  string
	Link  bool
}

package routes

// Routes is the navigation forest shown in the docs sidebar.
// The first navigable page is the "Get Started" destination, so reordering
// these sections changes where the landing page sends readers.
var Routes = []RouteNode{
	{
		Title:  "Getting Started",
		Href:   "/getting-started",
		NoLink: true,
		Items: []RouteNode{
			{Title: "Introduction", Href: "/introduction"},
		},
	},
	{
		Title:  "DSA",
		Href:   "/DSA",
		NoLink: true,
		Items: []RouteNode{
			{Title: "Arrays", Href: "/Arrays"},
			{Title: "Strings", Href: "/Strings"},
			{Title: "Linked-Lists", Href: "/Llist"},
			{Title: "Stacks", Href: "/Stacks"},
			{Title: "Queues", Href: "/Queues"},
			{Title: "Trees", Href: "/Trees"},
			{Title: "Graphs", Href: "/Graphs"},
		},
	},
	{
		Title:  "AI/ML/DL",
		Href:   "/AI",
		NoLink: true,
		Items: []RouteNode{
			{Title: "Artificial-intelligence", Href: "/Artificial-intelligence"},
			{Title: "Machine-Learning", Href: "/Machine-learning"},
			{Title: "Deep-learning", Href: "/Deep-learning"},
		},
	},
}

// PageRoutes is the flattened Routes, computed once at startup
var PageRoutes = MustFlatten(Routes)

// DocSections is Routes grouped per root section for the sidebar
var DocSections = Sections(Routes)

var pageIndex = indexPages(PageRoutes)

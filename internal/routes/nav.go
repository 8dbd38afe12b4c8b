package routes

// DocsPrefix is the URL prefix every documentation page is served under
const DocsPrefix = "/docs"

// Sections returns one sidebar section per root node, in declaration order
func Sections(forest []RouteNode) []Section {
	sections := make([]Section, 0, len(forest))
	for _, root := range forest {
		sections = append(sections, Section{
			Title: root.Title,
			Href:  root.Href,
			Pages: Flatten([]RouteNode{root}),
		})
	}
	return sections
}

func indexPages(pages []Page) map[string]int {
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		// First declaration wins when two nodes resolve to the same path
		if _, exists := index[p.Href]; !exists {
			index[p.Href] = i
		}
	}
	return index
}

// Lookup finds a page in PageRoutes by its absolute path
func Lookup(href string) (Page, bool) {
	i, ok := pageIndex[href]
	if !ok {
		return Page{}, false
	}
	return PageRoutes[i], true
}

// PrevNext returns the pages before and after href in PageRoutes order.
// Either may be nil at the ends of the list or when href is unknown.
func PrevNext(href string) (prev, next *Page) {
	i, ok := pageIndex[href]
	if !ok {
		return nil, nil
	}
	if i > 0 {
		p := PageRoutes[i-1]
		prev = &p
	}
	if i < len(PageRoutes)-1 {
		n := PageRoutes[i+1]
		next = &n
	}
	return prev, next
}

// Trail returns the breadcrumb from the root down to the node resolving to href.
// Grouping nodes are included with Link unset. Returns nil if nothing matches.
func Trail(forest []RouteNode, href string) []Crumb {
	for _, root := range forest {
		if trail := findTrail(root, root.Href, href, nil); trail != nil {
			return trail
		}
	}
	return nil
}

func findTrail(node RouteNode, resolved, target string, parents []Crumb) []Crumb {
	trail := append(parents[:len(parents):len(parents)], Crumb{
		Title: node.Title,
		Href:  resolved,
		Link:  !node.NoLink,
	})
	if resolved == target && !node.NoLink {
		return trail
	}
	for _, child := range node.Items {
		if found := findTrail(child, resolved+child.Href, target, trail); found != nil {
			return found
		}
	}
	return nil
}

// FirstPage returns the default documentation entry point
func FirstPage(pages []Page) (Page, bool) {
	if len(pages) == 0 {
		return Page{}, false
	}
	return pages[0], true
}

// DocsHref turns a page into the URL it is served at
func DocsHref(page Page) string {
	return DocsPrefix + page.Href
}

// GetStartedHref is the URL the landing page sends new readers to
func GetStartedHref() string {
	page, _ := FirstPage(PageRoutes)
	return DocsHref(page)
}

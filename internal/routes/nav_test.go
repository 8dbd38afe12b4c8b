package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRoutes(t *testing.T) {
	require.NotEmpty(t, PageRoutes)
	assert.Equal(t, Page{Title: "Introduction", Href: "/getting-started/introduction"}, PageRoutes[0])
	assert.Equal(t, Page{Title: "Arrays", Href: "/DSA/Arrays"}, PageRoutes[1])
	assert.Equal(t, Page{Title: "Deep-learning", Href: "/AI/Deep-learning"}, PageRoutes[len(PageRoutes)-1])
	assert.Len(t, PageRoutes, 11)
}

func TestGetStartedHref(t *testing.T) {
	assert.Equal(t, "/docs/getting-started/introduction", GetStartedHref())
}

func TestFirstPage(t *testing.T) {
	_, ok := FirstPage(nil)
	assert.False(t, ok)

	page, ok := FirstPage([]Page{{Title: "A", Href: "/a"}, {Title: "B", Href: "/b"}})
	assert.True(t, ok)
	assert.Equal(t, "/a", page.Href)
}

func TestSections(t *testing.T) {
	sections := Sections(Routes)
	require.Len(t, sections, 3)
	assert.Equal(t, "Getting Started", sections[0].Title)
	assert.Equal(t, "/DSA", sections[1].Href)
	assert.Len(t, sections[1].Pages, 7)

	var joined []Page
	for _, s := range sections {
		joined = append(joined, s.Pages...)
	}
	assert.Equal(t, PageRoutes, joined)
}

func TestLookup(t *testing.T) {
	page, ok := Lookup("/DSA/Llist")
	require.True(t, ok)
	assert.Equal(t, "Linked-Lists", page.Title)

	_, ok = Lookup("/DSA")
	assert.False(t, ok, "grouping nodes have no page")

	_, ok = Lookup("/dsa/llist")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestIndexPagesFirstWins(t *testing.T) {
	index := indexPages([]Page{{Title: "One", Href: "/same"}, {Title: "Two", Href: "/same"}})
	assert.Equal(t, 0, index["/same"])
}

func TestPrevNext(t *testing.T) {
	tests := []struct {
		name string
		href string
		prev string
		next string
	}{
		{name: "first page", href: "/getting-started/introduction", prev: "", next: "/DSA/Arrays"},
		{name: "middle page", href: "/DSA/Stacks", prev: "/DSA/Llist", next: "/DSA/Queues"},
		{name: "crosses sections", href: "/DSA/Graphs", prev: "/DSA/Trees", next: "/AI/Artificial-intelligence"},
		{name: "last page", href: "/AI/Deep-learning", prev: "/AI/Machine-learning", next: ""},
		{name: "unknown", href: "/nope", prev: "", next: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := PrevNext(tt.href)
			if tt.prev == "" {
				assert.Nil(t, prev)
			} else {
				require.NotNil(t, prev)
				assert.Equal(t, tt.prev, prev.Href)
			}
			if tt.next == "" {
				assert.Nil(t, next)
			} else {
				require.NotNil(t, next)
				assert.Equal(t, tt.next, next.Href)
			}
		})
	}
}

func TestTrail(t *testing.T) {
	forest := []RouteNode{
		{Title: "Guide", Href: "/guide", NoLink: true, Items: []RouteNode{
			{Title: "Install", Href: "/install", Items: []RouteNode{
				{Title: "Linux", Href: "/linux"},
			}},
		}},
	}

	trail := Trail(forest, "/guide/install/linux")
	assert.Equal(t, []Crumb{
		{Title: "Guide", Href: "/guide", Link: false},
		{Title: "Install", Href: "/guide/install", Link: true},
		{Title: "Linux", Href: "/guide/install/linux", Link: true},
	}, trail)

	assert.Nil(t, Trail(forest, "/guide"), "grouping nodes are not targets")
	assert.Nil(t, Trail(forest, "/missing"))
}

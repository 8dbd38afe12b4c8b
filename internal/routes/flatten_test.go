package routes

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		forest   []RouteNode
		expected []Page
	}{
		{
			name: "grouping root with one child",
			forest: []RouteNode{
				{Title: "Getting Started", Href: "/getting-started", NoLink: true, Items: []RouteNode{
					{Title: "Introduction", Href: "/introduction"},
				}},
			},
			expected: []Page{{Title: "Introduction", Href: "/getting-started/introduction"}},
		},
		{
			name: "linked root emits itself before its child",
			forest: []RouteNode{
				{Title: "Guide", Href: "/guide", Items: []RouteNode{
					{Title: "Setup", Href: "/setup"},
				}},
			},
			expected: []Page{
				{Title: "Guide", Href: "/guide"},
				{Title: "Setup", Href: "/guide/setup"},
			},
		},
		{
			name: "three levels concatenate without normalization",
			forest: []RouteNode{
				{Title: "A", Href: "/a/", NoLink: true, Items: []RouteNode{
					{Title: "B", Href: "/b", Items: []RouteNode{
						{Title: "C", Href: "c"},
						{Title: "D", Href: "//d"},
					}},
				}},
			},
			expected: []Page{
				{Title: "B", Href: "/a//b"},
				{Title: "C", Href: "/a//bc"},
				{Title: "D", Href: "/a//b//d"},
			},
		},
		{
			name: "grouping child still prefixes grandchildren",
			forest: []RouteNode{
				{Title: "Root", Href: "/root", Items: []RouteNode{
					{Title: "Group", Href: "/group", NoLink: true, Items: []RouteNode{
						{Title: "Leaf", Href: "/leaf"},
					}},
				}},
			},
			expected: []Page{
				{Title: "Root", Href: "/root"},
				{Title: "Leaf", Href: "/root/group/leaf"},
			},
		},
		{
			name: "empty href resolves to parent path",
			forest: []RouteNode{
				{Title: "Docs", Href: "/docs", NoLink: true, Items: []RouteNode{
					{Title: "Overview", Href: ""},
				}},
			},
			expected: []Page{{Title: "Overview", Href: "/docs"}},
		},
		{
			name: "duplicates are kept",
			forest: []RouteNode{
				{Title: "One", Href: "/same"},
				{Title: "Two", Href: "/same"},
			},
			expected: []Page{
				{Title: "One", Href: "/same"},
				{Title: "Two", Href: "/same"},
			},
		},
		{
			name:     "single grouping leaf emits nothing",
			forest:   []RouteNode{{Title: "Empty", Href: "/empty", NoLink: true}},
			expected: nil,
		},
		{
			name:     "empty forest",
			forest:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Flatten(tt.forest))
		})
	}
}

func TestFlattenSiblingOrder(t *testing.T) {
	forest := []RouteNode{
		{Title: "First", Href: "/first", Items: []RouteNode{
			{Title: "First child", Href: "/x"},
		}},
		{Title: "Second", Href: "/second"},
	}

	pages := Flatten(forest)
	require.Len(t, pages, 3)
	assert.Equal(t, "First", pages[0].Title)
	assert.Equal(t, "First child", pages[1].Title)
	assert.Equal(t, "Second", pages[2].Title)
}

func TestFlattenIsPure(t *testing.T) {
	forest := []RouteNode{
		{Title: "Group", Href: "/g", NoLink: true, Items: []RouteNode{
			{Title: "Child", Href: "/c", Items: []RouteNode{
				{Title: "Grandchild", Href: "/gc"},
			}},
		}},
	}
	before := deepCopy(forest)

	first := Flatten(forest)
	second := Flatten(forest)

	assert.Equal(t, first, second)
	assert.Equal(t, before, forest)
	assert.Equal(t, "/c", forest[0].Items[0].Href)
}

func deepCopy(forest []RouteNode) []RouteNode {
	if forest == nil {
		return nil
	}
	out := make([]RouteNode, len(forest))
	for i, n := range forest {
		out[i] = n
		out[i].Items = deepCopy(n.Items)
	}
	return out
}

func TestValidate(t *testing.T) {
	t.Run("accepts declared routes", func(t *testing.T) {
		assert.NoError(t, Validate(Routes))
	})

	t.Run("rejects missing title", func(t *testing.T) {
		err := Validate([]RouteNode{
			{Title: "Root", Href: "/root", Items: []RouteNode{{Href: "/untitled"}}},
		})
		var malformed *MalformedRouteError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, []string{"Root", "/untitled"}, malformed.Path)
		assert.Equal(t, "missing title", malformed.Reason)
	})

	t.Run("rejects trees deeper than MaxDepth", func(t *testing.T) {
		node := RouteNode{Title: "leaf", Href: "/leaf"}
		for i := 0; i < MaxDepth; i++ {
			node = RouteNode{Title: "level", Href: "/l", Items: []RouteNode{node}}
		}
		err := Validate([]RouteNode{node})
		var malformed *MalformedRouteError
		require.True(t, errors.As(err, &malformed))
		assert.True(t, strings.Contains(err.Error(), "nesting exceeds"))
	})

	t.Run("accepts trees at MaxDepth", func(t *testing.T) {
		node := RouteNode{Title: "leaf", Href: "/leaf"}
		for i := 1; i < MaxDepth; i++ {
			node = RouteNode{Title: "level", Href: "/l", Items: []RouteNode{node}}
		}
		assert.NoError(t, Validate([]RouteNode{node}))
	})
}

func TestMustFlatten(t *testing.T) {
	assert.Panics(t, func() {
		MustFlatten([]RouteNode{{Href: "/no-title"}})
	})
	assert.PanicsWithValue(t, ErrNoPages, func() {
		MustFlatten([]RouteNode{{Title: "Only group", Href: "/g", NoLink: true}})
	})
	assert.Equal(t, []Page{{Title: "Page", Href: "/p"}}, MustFlatten([]RouteNode{{Title: "Page", Href: "/p"}}))
}

package routes

import (
	"errors"
	"fmt"
	"strings"
)

// MaxDepth bounds how deep a declared tree may nest before Validate rejects it
const MaxDepth = 32

// ErrNoPages is returned when a forest flattens to zero navigable pages
var ErrNoPages = errors.New("route forest has no navigable page")

// MalformedRouteError describes a node that cannot be part of the navigation
type MalformedRouteError struct {
	Path   []string // titles (or hrefs for untitled nodes) from root to the offending node
	Reason string
}

func (e *MalformedRouteError) Error() string {
	return fmt.Sprintf("malformed route %q: %s", strings.Join(e.Path, " > "), e.Reason)
}

// Flatten walks the forest pre-order, left to right, and returns every
// navigable node with its absolute path. Grouping nodes (NoLink) emit
// nothing but still prefix their children's paths.
func Flatten(forest []RouteNode) []Page {
	var pages []Page
	for _, node := range forest {
		pages = appendPages(pages, node, node.Href)
	}
	return pages
}

// appendPages emits node under its already resolved href, then recurses.
func appendPages(pages []Page, node RouteNode, href string) []Page {
	if !node.NoLink {
		pages = append(pages, Page{Title: node.Title, Href: href})
	}
	for _, child := range node.Items {
		pages = appendPages(pages, child, href+child.Href)
	}
	return pages
}

// Validate checks every node has a title and that no tree nests deeper than MaxDepth
func Validate(forest []RouteNode) error {
	for _, node := range forest {
		if err := validateNode(node, nil); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(node RouteNode, parents []string) error {
	label := node.Title
	if label == "" {
		label = node.Href
	}
	path := append(parents[:len(parents):len(parents)], label)

	if strings.TrimSpace(node.Title) == "" {
		return &MalformedRouteError{Path: path, Reason: "missing title"}
	}
	if len(path) > MaxDepth {
		return &MalformedRouteError{Path: path, Reason: fmt.Sprintf("nesting exceeds %d levels", MaxDepth)}
	}
	for _, child := range node.Items {
		if err := validateNode(child, path); err != nil {
			return err
		}
	}
	return nil
}

// MustFlatten validates and flattens the forest, panicking on malformed input.
// It is meant for package-level initialization of declared routes.
func MustFlatten(forest []RouteNode) []Page {
	if err := Validate(forest); err != nil {
		panic(err)
	}
	pages := Flatten(forest)
	if len(pages) == 0 {
		panic(ErrNoPages)
	}
	return pages
}

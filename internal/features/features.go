// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package features renders the feature cards shown on the homepage.
//
// A [FeatureList] is rendered in declaration order and every card is keyed by
// its position in the list. Positional keys are only valid while the list is
// static. A list that can be edited or reordered at runtime must give each
// entry a stable identifier and key cards by it instead.
package features

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrUnknownVariant is returned by [Variant] for names that are not compiled in.
var ErrUnknownVariant = errors.New("unknown feature list variant")

// FeatureEntry describes one feature card.
type FeatureEntry struct {
	// Title is a short plain text title. It is escaped when rendered.
	Title string
	// Icon is rendered above the title as is.
	Icon g.Node
	// Description is rendered below the title as is. It may contain links.
	Description g.Node
}

// FeatureList is an ordered sequence of feature cards.
type FeatureList []FeatureEntry

// IconWidth is the width of the feature icons.
const IconWidth = "60px"

// Icon returns an image node for the icon at src with the default width.
func Icon(src string) g.Node {
	return IconWithWidth(src, IconWidth)
}

// IconWithWidth returns an image node for the icon at src.
func IconWithWidth(src, width string) g.Node {
	return h.Img(h.Src(src), h.Width(width))
}

// Card renders a single feature: the icon centered above a centered title and
// description.
func Card(e FeatureEntry) g.Node {
	return card(e)
}

func card(e FeatureEntry, attrs ...g.Node) g.Node {
	return h.Div(h.Class("col col--4"), g.Group(attrs),
		h.Div(h.Class("text--center"), e.Icon),
		h.Div(h.Class("text--center padding-horiz--md"),
			h.H3(g.Text(e.Title)),
			h.P(e.Description),
		),
	)
}

// Section renders all entries of list as a row of cards.
func Section(list FeatureList) g.Node {
	cards := make([]g.Node, 0, len(list))
	for i, e := range list {
		cards = append(cards, card(e, g.Attr("data-key", strconv.Itoa(i))))
	}
	return h.Section(h.Class("features"),
		h.Div(h.Class("container"),
			h.Div(h.Class("row"), g.Group(cards)),
		),
	)
}

var variants = map[string]FeatureList{
	"ioc":     IoC,
	"quarkus": Quarkus,
}

// Variant returns a copy of the compiled-in feature list with the given name.
func Variant(name string) (FeatureList, error) {
	l, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownVariant, name, Variants())
	}
	return slices.Clone(l), nil
}

// Variants returns the sorted names of the compiled-in feature lists.
func Variants() []string {
	return slices.Sorted(maps.Keys(variants))
}

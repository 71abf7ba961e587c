// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package home renders the homepage of the documentation site.
package home

import (
	"context"

	"github.com/dremio/dc-comics-site/internal/features"
	"github.com/dremio/dc-comics-site/internal/layout"
	"github.com/dremio/dc-comics-site/internal/siteconfig"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Page title and description of the homepage.
const (
	Title       = "DC Comics"
	Description = "Dremio Cloud application framework"
)

// Logo is the static path of the image shown in the hero banner.
const Logo = "img/dc-comics.png"

// Stylesheet is loaded by every page of the site.
const Stylesheet = "/css/custom.css"

// Page renders the homepage: a hero banner followed by the cards of list.
// The site configuration and asset resolver are taken from ctx.
func Page(ctx context.Context, list features.FeatureList) g.Node {
	cfg := siteconfig.FromContext(ctx)
	return layout.Layout(props(ctx, cfg, Title, Description),
		Header(cfg),
		h.Main(features.Section(list)),
	)
}

// Header renders the hero banner.
func Header(cfg *siteconfig.Config) g.Node {
	return h.Header(h.Class("hero hero--primary heroBanner"),
		h.Div(h.Class("container"),
			h.H1(h.Class("hero__title"),
				h.Img(h.Src(Logo), h.Width("20%"), h.Alt(cfg.Title)),
			),
			h.Div(h.Style("color: black"),
				g.Text("DC Comics is the Dremio Cloud service framework."),
				h.Br(),
				g.Text("It provides the common backbone including all needed features to develop cloud applications efficiently."),
			),
		),
	)
}

func props(ctx context.Context, cfg *siteconfig.Config, title, description string) layout.Props {
	return layout.Props{
		Title:       title,
		Description: description,
		SiteTitle:   cfg.Title,
		BaseURL:     cfg.BaseURL,
		Stylesheets: []string{Stylesheet},
		Asset:       layout.Assets(ctx),
	}
}

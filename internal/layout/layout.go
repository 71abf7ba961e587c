// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package layout provides the page frame shared by all pages of the site.
package layout

import (
	"context"
	"path"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Props configures a page rendered with [Layout].
type Props struct {
	// Title is the page title.
	Title string
	// Description goes to the description meta tag. Omitted when empty.
	Description string
	// SiteTitle is appended to the page title and shown in the navigation bar.
	SiteTitle string
	// BaseURL is the path the site is served under. Relative links are
	// resolved against it.
	BaseURL string
	// Stylesheets are static paths of stylesheets to load.
	Stylesheets []string
	// Asset maps a static path to the URL it is served from. If nil, paths
	// are used as is.
	Asset AssetFunc
}

// AssetFunc maps a static file path to its public URL.
type AssetFunc func(path string) string

type assetKey struct{}

// WithAssets returns a copy of ctx that carries f.
func WithAssets(ctx context.Context, f AssetFunc) context.Context {
	return context.WithValue(ctx, assetKey{}, f)
}

// Assets returns the asset resolver carried by ctx, or nil.
func Assets(ctx context.Context) AssetFunc {
	f, _ := ctx.Value(assetKey{}).(AssetFunc)
	return f
}

// Layout wraps children into a complete HTML document.
func Layout(p Props, children ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(p.pageTitle())),
				g.If(p.Description != "", h.Meta(h.Name("description"), h.Content(p.Description))),
				g.Group(g.Map(p.Stylesheets, func(s string) g.Node {
					return h.Link(h.Rel("stylesheet"), h.Href(p.asset(s)))
				})),
			),
			h.Body(
				navbar(p),
				g.Group(children),
			),
		),
	)
}

func (p Props) pageTitle() string {
	if p.SiteTitle == "" || p.SiteTitle == p.Title {
		return p.Title
	}
	if p.Title == "" {
		return p.SiteTitle
	}
	return p.Title + " | " + p.SiteTitle
}

func (p Props) asset(s string) string {
	if p.Asset == nil {
		return s
	}
	return p.Asset(s)
}

func navbar(p Props) g.Node {
	return h.Nav(h.Class("navbar"),
		h.Div(h.Class("navbar__inner"),
			h.Div(h.Class("navbar__items"),
				p.Link("/", h.Class("navbar__brand"), h.B(h.Class("navbar__title"), g.Text(p.SiteTitle))),
			),
		),
	)
}

// Link renders an anchor to the given target. Targets that are not full URLs
// are resolved against the base URL.
func (p Props) Link(to string, children ...g.Node) g.Node {
	return h.A(h.Href(p.URL(to)), g.Group(children))
}

// URL resolves to against the base URL.
func (p Props) URL(to string) string {
	if isFullURL(to) || p.BaseURL == "" {
		return to
	}
	u := path.Join(p.BaseURL, to)
	if strings.HasSuffix(to, "/") && !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

func isFullURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

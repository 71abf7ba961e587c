// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package home

import (
	"context"

	"github.com/dremio/dc-comics-site/internal/layout"
	"github.com/dremio/dc-comics-site/internal/siteconfig"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound renders the page served for missing paths.
func NotFound(ctx context.Context) g.Node {
	cfg := siteconfig.FromContext(ctx)
	p := props(ctx, cfg, "Page Not Found", "")
	return layout.Layout(p,
		h.Main(h.Class("container margin-vert--xl"),
			h.H1(h.Class("hero__title"), g.Text("Page Not Found")),
			h.P(g.Text("We could not find what you were looking for.")),
			h.P(p.Link("/", g.Text("Back to the homepage"))),
		),
	)
}

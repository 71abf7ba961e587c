// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package features

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// IoC is the feature list of the DC Comic site, built around its own IoC
// framework.
var IoC = FeatureList{
	{
		Title:       "Light and fast",
		Icon:        Icon("img/deadline.png"),
		Description: g.Text("DC Comic includes a very light IoC framework, build time oriented."),
	},
	{
		Title:       "Cloud & GraalVM",
		Icon:        Icon("img/cloud.png"),
		Description: g.Text("DC Comic is cloud native, with seamless integration with Kubernetes. It also support GraalVM natively to bootstrap efficienly."),
	},
	{
		Title:       "Turnkey extensions",
		Icon:        Icon("img/deal.png"),
		Description: g.Text("DC Comic brings turnkey extensions you can leverage at no cost in your cloud applications: structured logging, telemetry, gRPC, ..."),
	},
}

// Quarkus is the feature list of the DC Comics site, built on Quarkus.
var Quarkus = FeatureList{
	{
		Title: "Light and fast",
		Icon:  Icon("img/deadline.png"),
		Description: g.Group{
			g.Text("DC Comics is powered by "),
			h.A(h.Href("https://quarkus.io"), g.Text("Quarkus")),
			g.Text(", the supersonic/subatomic Java framework."),
		},
	},
	{
		Title:       "Cloud & GraalVM",
		Icon:        Icon("img/cloud.png"),
		Description: g.Text("DC Comics is cloud native, with seamless integration with Kubernetes. It also support GraalVM natively to bootstrap efficienly."),
	},
	{
		Title:       "Turnkey extension",
		Icon:        Icon("img/deal.png"),
		Description: g.Text("DC Comics brings a single extension that bring all features/extensions needed for Dremio services (structured logging, telemetry, gRPC, ...). The extensions are lazy loaded meaning that they are actually loaded only when the service is concretely using it."),
	},
}

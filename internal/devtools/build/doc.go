// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Build builds the site.

# Usage

	$ go tool build [flags] [dir]

Builds the site described by site.yaml into the specified directory dir. If
dir is not provided, it defaults to build in the current working directory.
With -prod, static files are referenced by absolute URLs derived from the url
field of site.yaml.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }

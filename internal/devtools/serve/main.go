// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"

	"github.com/dremio/dc-comics-site/internal/devtools"
	"github.com/dremio/dc-comics-site/internal/site"

	"go.astrophena.name/base/cli"
)

func main() { cli.Main(new(app)) }

type app struct {
	listen string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.listen, "listen", "localhost:3000", "Listen on `host:port`.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	cfg := &site.Config{
		Src: ".",
		Dst: devtools.OutputDir(cli.GetEnv(ctx).Args),
	}
	return site.Serve(ctx, cfg, a.listen)
}

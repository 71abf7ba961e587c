// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/dremio/dc-comics-site/internal/devtools"
	"github.com/dremio/dc-comics-site/internal/site"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	prod bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.prod, "prod", false, "Build in a production mode.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	dir := devtools.OutputDir(cli.GetEnv(ctx).Args)
	if err := site.Build(ctx, &site.Config{
		Src:  ".",
		Dst:  dir,
		Prod: a.prod,
	}); err != nil {
		return err
	}
	logger.Info(ctx, "built the site", slog.String("dir", dir), slog.Bool("prod", a.prod))
	return nil
}

// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"os"
	"path/filepath"

	"github.com/dremio/dc-comics-site/internal/siteconfig"

	"go.astrophena.name/base/unwrap"
)

// EnsureRoot checks that the current working directory is at the repository
// root and panics if it doesn't.
func EnsureRoot() {
	wd := unwrap.Value(os.Getwd())
	for _, name := range []string{"go.mod", siteconfig.Filename} {
		if _, err := os.Stat(filepath.Join(wd, name)); os.IsNotExist(err) {
			panic("Are you at repo root?")
		} else if err != nil {
			panic(err)
		}
	}
}

// OutputDir returns the build directory passed in args, or the default one.
func OutputDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return filepath.Join(".", "build")
}

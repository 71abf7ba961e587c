// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package devtools

import (
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestOutputDir(t *testing.T) {
	testutil.AssertEqual(t, OutputDir(nil), filepath.Join(".", "build"))
	testutil.AssertEqual(t, OutputDir([]string{"public", "ignored"}), "public")
}

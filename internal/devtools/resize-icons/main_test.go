// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestIconPath(t *testing.T) {
	want := filepath.Join("static", "img", "deadline.png")
	testutil.AssertEqual(t, iconPath("deadline"), want)
	testutil.AssertEqual(t, iconPath("deadline.webp"), want)
}

func TestMagickArgs(t *testing.T) {
	testutil.AssertEqual(t, magickArgs("in.jpg", "out.png", 120), []string{
		"in.jpg",
		"-resize", "120x120",
		"-background", "none",
		"-gravity", "center",
		"-extent", "120x120",
		"-strip",
		"out.png",
	})
}

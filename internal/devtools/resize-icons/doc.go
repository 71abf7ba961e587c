// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Resize-icons prepares feature card icons.

# Usage

	$ go tool resize-icons [-size pixels] <input_image_file> <name>

This tool fits the provided input image into a transparent square (120x120
by default, twice the width the cards display icons at) and saves it as
"static/img/<name>.png", where feature lists reference it.

It requires ImageMagick (the "magick" command) to be installed and
available in the system's PATH.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() {
	cli.SetDocComment(doc)
}

// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Addcopyright adds copyright header to each Go, YAML and CSS file.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dremio/dc-comics-site/internal/devtools"
)

var templates = map[string]string{
	".go": `// © %d The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

`,
	".yaml": `# © %d The DC Comics Authors. All rights reserved.
# Use of this source code is governed by the ISC
# license that can be found in the LICENSE.md file.

`,
	".css": `/*
© %d The DC Comics Authors. All rights reserved.
Use of this source code is governed by the ISC
license that can be found in the LICENSE.md file.
*/

`,
}

var headers = map[string]string{
	".go":   `// ©`,
	".yaml": `# ©`,
	".css":  "/*\n© ",
}

// Directories that are never touched.
var skipDirs = []string{
	".git",
	"_examples",
	"build",
	"testdata",
}

var exclusions = []string{
	"LICENSE.md",
}

func isExcluded(path string) bool {
	for _, ex := range exclusions {
		if strings.HasSuffix(path, ex) {
			return true
		}
	}
	return false
}

// addHeader returns content with a copyright header for a file with the
// given extension prepended. It reports false if the file type is not
// supported or the header is already there.
func addHeader(content []byte, ext string, year int) ([]byte, bool) {
	tmpl, ok := templates[ext]
	if !ok {
		return nil, false
	}
	if bytes.HasPrefix(content, []byte(headers[ext])) {
		return nil, false
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, tmpl, year)
	buf.Write(content)
	return buf.Bytes(), true
}

func main() {
	devtools.EnsureRoot()

	if err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if slices.Contains(skipDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isExcluded(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		updated, ok := addHeader(content, filepath.Ext(path), info.ModTime().Year())
		if !ok {
			return nil
		}
		return os.WriteFile(path, updated, 0o644)
	}); err != nil {
		log.Fatal(err)
	}
}

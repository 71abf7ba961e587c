// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package siteconfig

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dremio/dc-comics-site/internal/features"

	"go.astrophena.name/base/testutil"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		in       string
		env      map[string]string
		want     *Config
		wantErr  error
		wantList int
	}{
		"defaults": {
			in:       "",
			want:     &Config{Title: "DC Comics", BaseURL: "/", Features: "quarkus"},
			wantList: 3,
		},
		"ioc site": {
			in: `title: DC Comic
tagline: Dremio Cloud IoC framework
base_url: /comic/
features: ioc
`,
			want:     &Config{Title: "DC Comic", Tagline: "Dremio Cloud IoC framework", BaseURL: "/comic/", Features: "ioc"},
			wantList: 3,
		},
		"environment expansion": {
			in:       "url: https://${SITE_HOST}\n",
			env:      map[string]string{"SITE_HOST": "docs.example.com"},
			want:     &Config{Title: "DC Comics", URL: "https://docs.example.com", BaseURL: "/", Features: "quarkus"},
			wantList: 3,
		},
		"unknown variant": {
			in:      "features: angular\n",
			wantErr: features.ErrUnknownVariant,
		},
		"invalid YAML": {
			in:      "title: [\n",
			wantErr: ErrInvalid,
		},
		"custom feature without title": {
			in: `custom_features:
  - description: Nothing to see here.
`,
			wantErr: ErrInvalid,
		},
		"custom features override variant": {
			in: `features: angular
custom_features:
  - title: One
  - title: Two
`,
			wantList: 2,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			got, err := Parse([]byte(tc.in))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if tc.want != nil {
				testutil.AssertEqual(t, got, tc.want)
			}

			list, err := got.FeatureList()
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, len(list), tc.wantList)
		})
	}
}

func TestCustomFeatures(t *testing.T) {
	c, err := Parse([]byte(`custom_features:
  - title: Light and fast
    icon: img/deadline.png
    description: Powered by [Quarkus](https://quarkus.io).
  - title: Wide
    icon: img/wide.png
    icon_width: 120px
    description: |
      First paragraph.

      Second paragraph.
  - title: Bare
`))
	if err != nil {
		t.Fatal(err)
	}
	list, err := c.FeatureList()
	if err != nil {
		t.Fatal(err)
	}

	render := func(e features.FeatureEntry) string {
		var sb strings.Builder
		if err := features.Card(e).Render(&sb); err != nil {
			t.Fatal(err)
		}
		return sb.String()
	}

	first := render(list[0])
	for _, want := range []string{
		`<h3>Light and fast</h3>`,
		`<img src="img/deadline.png" width="60px">`,
		`<p>Powered by <a href="https://quarkus.io">Quarkus</a>.</p>`,
	} {
		if !strings.Contains(first, want) {
			t.Errorf("first card %q does not contain %q", first, want)
		}
	}

	second := render(list[1])
	for _, want := range []string{
		`width="120px"`,
		`<p>First paragraph.</p>`,
		`<p>Second paragraph.</p>`,
	} {
		if !strings.Contains(second, want) {
			t.Errorf("second card %q does not contain %q", second, want)
		}
	}

	if third := render(list[2]); strings.Contains(third, "<img") {
		t.Errorf("card without icon rendered an image: %q", third)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, []byte("title: Docs\nfeatures: ioc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, c.Title, "Docs")
	testutil.AssertEqual(t, c.Features, "ioc")

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
}

func TestContext(t *testing.T) {
	testutil.AssertEqual(t, FromContext(context.Background()), Default())

	c := &Config{Title: "Attached"}
	testutil.AssertEqual(t, FromContext(NewContext(context.Background(), c)).Title, "Attached")
}

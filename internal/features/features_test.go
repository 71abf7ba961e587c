// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package features

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestCard(t *testing.T) {
	for name, list := range map[string]FeatureList{"ioc": IoC, "quarkus": Quarkus} {
		for _, e := range list {
			t.Run(name+"/"+e.Title, func(t *testing.T) {
				got := render(t, Card(e))
				desc := render(t, e.Description)

				// Description markup is passed through unmodified.
				if !strings.Contains(got, desc) {
					t.Fatalf("card markup %q does not contain description %q", got, desc)
				}

				doc := parse(t, got)
				testutil.AssertEqual(t, doc.Find("h3").Text(), e.Title)
				testutil.AssertEqual(t, doc.Find("p").Text(), parse(t, desc).Text())
				testutil.AssertEqual(t, doc.Find(".text--center img").Length(), 1)
			})
		}
	}
}

func TestCardPassesMarkupThrough(t *testing.T) {
	e := FeatureEntry{
		Title:       "<b>not bold</b>",
		Icon:        g.Raw(`<svg class="raw"></svg>`),
		Description: g.Raw(`<em>as is</em>`),
	}
	got := render(t, Card(e))
	for _, want := range []string{
		`<svg class="raw"></svg>`,
		`<em>as is</em>`,
		`&lt;b&gt;not bold&lt;/b&gt;`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("card markup %q does not contain %q", got, want)
		}
	}
}

func TestSection(t *testing.T) {
	cases := map[string]struct {
		list       FeatureList
		wantTitles []string
	}{
		"ioc": {
			list:       IoC,
			wantTitles: []string{"Light and fast", "Cloud & GraalVM", "Turnkey extensions"},
		},
		"quarkus": {
			list:       Quarkus,
			wantTitles: []string{"Light and fast", "Cloud & GraalVM", "Turnkey extension"},
		},
		"empty": {
			list: FeatureList{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			doc := parse(t, render(t, Section(tc.list)))

			testutil.AssertEqual(t, doc.Find("section.features > .container > .row").Length(), 1)

			cards := doc.Find(".row > .col--4")
			testutil.AssertEqual(t, cards.Length(), len(tc.list))

			var titles []string
			cards.Each(func(i int, s *goquery.Selection) {
				titles = append(titles, s.Find("h3").Text())
				key, _ := s.Attr("data-key")
				testutil.AssertEqual(t, key, strconv.Itoa(i))
			})
			testutil.AssertEqual(t, titles, tc.wantTitles)
		})
	}
}

func TestQuarkusDescriptions(t *testing.T) {
	doc := parse(t, render(t, Section(Quarkus)))
	cards := doc.Find(".col--4")

	href, ok := cards.Eq(0).Find("p a").Attr("href")
	if !ok {
		t.Fatal("first card has no link")
	}
	testutil.AssertEqual(t, href, "https://quarkus.io")

	if third := cards.Eq(2).Find("p").Text(); !strings.Contains(third, "lazy loaded") {
		t.Fatalf("third description %q does not mention lazy loading", third)
	}
}

func TestSectionIdempotent(t *testing.T) {
	for name, list := range map[string]FeatureList{"ioc": IoC, "quarkus": Quarkus} {
		t.Run(name, func(t *testing.T) {
			first := render(t, Section(list))
			second := render(t, Section(list))
			testutil.AssertEqual(t, first, second)
		})
	}
}

func TestVariant(t *testing.T) {
	cases := map[string]struct {
		name    string
		want    FeatureList
		wantErr error
	}{
		"ioc":     {name: "ioc", want: IoC},
		"quarkus": {name: "quarkus", want: Quarkus},
		"unknown": {name: "angular", wantErr: ErrUnknownVariant},
		"empty":   {name: "", wantErr: ErrUnknownVariant},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Variant(tc.name)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, render(t, Section(got)), render(t, Section(tc.want)))
		})
	}
}

func TestVariantReturnsCopy(t *testing.T) {
	l, err := Variant("ioc")
	if err != nil {
		t.Fatal(err)
	}
	l[0], l[2] = l[2], l[0]
	testutil.AssertEqual(t, IoC[0].Title, "Light and fast")
}

func TestVariants(t *testing.T) {
	testutil.AssertEqual(t, Variants(), []string{"ioc", "quarkus"})
}

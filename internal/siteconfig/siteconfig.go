// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package siteconfig loads the site configuration and makes it available to
page components.

The configuration lives in a site.yaml file at the root of the site sources:

	title: DC Comics
	tagline: Dremio Cloud service framework
	url: https://dc-comics.dremio.cloud
	base_url: /
	features: quarkus

Environment variables are expanded before the file is parsed. Instead of
naming a compiled-in feature list, a site can describe its own:

	custom_features:
	  - title: Light and fast
	    icon: img/deadline.png
	    description: Powered by [Quarkus](https://quarkus.io).

Descriptions of custom features are Markdown.
*/
package siteconfig

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dremio/dc-comics-site/internal/features"

	"gopkg.in/yaml.v3"
	g "maragu.dev/gomponents"
	"rsc.io/markdown"
)

// Filename is the name of the configuration file in the site root.
const Filename = "site.yaml"

// ErrInvalid is returned when the configuration can't be used.
var ErrInvalid = errors.New("invalid site configuration")

// Config is the site configuration.
type Config struct {
	Title          string    `yaml:"title"`                     // title: Site title, "DC Comics" by default.
	Tagline        string    `yaml:"tagline,omitempty"`         // tagline: Short site description, optional.
	URL            string    `yaml:"url,omitempty"`             // url: Canonical site URL, used for absolute links in production builds, optional.
	BaseURL        string    `yaml:"base_url,omitempty"`        // base_url: Path the site is served under, "/" by default.
	Features       string    `yaml:"features,omitempty"`        // features: Name of a compiled-in feature list, "quarkus" by default.
	CustomFeatures []Feature `yaml:"custom_features,omitempty"` // custom_features: Feature list that overrides features, optional.
}

// Feature is a feature card described in the configuration file.
type Feature struct {
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon,omitempty"`
	IconWidth   string `yaml:"icon_width,omitempty"`
	Description string `yaml:"description,omitempty"` // Markdown
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.Title == "" {
		c.Title = "DC Comics"
	}
	if c.BaseURL == "" {
		c.BaseURL = "/"
	}
	if c.Features == "" {
		c.Features = "quarkus"
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("siteconfig: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses the configuration from b.
func Parse(b []byte) (*Config, error) {
	c := new(Config)
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(b))), c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	c.setDefaults()

	for i, f := range c.CustomFeatures {
		if strings.TrimSpace(f.Title) == "" {
			return nil, fmt.Errorf("%w: custom feature #%d has no title", ErrInvalid, i+1)
		}
	}
	if len(c.CustomFeatures) == 0 {
		if _, err := features.Variant(c.Features); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// FeatureList returns the feature list the homepage should render.
func (c *Config) FeatureList() (features.FeatureList, error) {
	if len(c.CustomFeatures) == 0 {
		return features.Variant(c.Features)
	}

	list := make(features.FeatureList, 0, len(c.CustomFeatures))
	for _, f := range c.CustomFeatures {
		e := features.FeatureEntry{
			Title:       f.Title,
			Description: g.Raw(inlineMarkdown(f.Description)),
		}
		if f.Icon != "" {
			width := f.IconWidth
			if width == "" {
				width = features.IconWidth
			}
			e.Icon = features.IconWithWidth(f.Icon, width)
		}
		list = append(list, e)
	}
	return list, nil
}

var mdParser = &markdown.Parser{
	Strikethrough:      true,
	AutoLinkText:       true,
	AutoLinkAssumeHTTP: true,
	Emoji:              true,
}

// inlineMarkdown renders s to HTML suitable for a paragraph: a single
// paragraph loses its <p> wrapper.
func inlineMarkdown(s string) string {
	out := strings.TrimSpace(markdown.ToHTML(mdParser.Parse(s)))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}

type ctxKey struct{}

// NewContext returns a copy of ctx that carries c.
func NewContext(ctx context.Context, c *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the configuration carried by ctx, or [Default] if there
// is none.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(ctxKey{}).(*Config); ok && c != nil {
		return c
	}
	return Default()
}

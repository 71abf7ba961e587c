// © 2026 The DC Comics Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package site builds the DC Comics documentation homepage.

# Directory Structure

Site has the following files and directories:

	site.yaml  Site configuration, see package siteconfig.
	build      This is where the generated site will be placed by default.
	static     Files in this directory will be copied verbatim to the
	           generated site. Stylesheets and scripts get a content hash
	           in their names and are minified.

Pages are Go components: the homepage is rendered by package home into
index.html, and the not found page into 404.html.
*/
package site

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dremio/dc-comics-site/internal/home"
	"github.com/dremio/dc-comics-site/internal/layout"
	"github.com/dremio/dc-comics-site/internal/siteconfig"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	mjson "github.com/tdewolff/minify/v2/json"
	g "maragu.dev/gomponents"
)

// Config represents a build configuration.
type Config struct {
	// Src is the directory where to read files from. If empty, uses the current
	// directory.
	Src string
	// Dst is the directory where to write files. If empty, uses the build
	// directory.
	Dst string
	// Prod determines if the site should be built in a production mode. This
	// means that the site URL from site.yaml is used to derive absolute URLs
	// for static files.
	Prod bool
}

func (c *Config) setDefaults() {
	if c.Src == "" {
		c.Src = filepath.Join(".")
	}

	if c.Dst == "" {
		c.Dst = filepath.Join(".", "build")
	}
}

// Build builds a site based on the provided [Config].
func Build(ctx context.Context, c *Config) error {
	c.setDefaults()

	site, err := siteconfig.Load(filepath.Join(c.Src, siteconfig.Filename))
	if err != nil {
		return err
	}
	list, err := site.FeatureList()
	if err != nil {
		return err
	}
	b := newBuildContext(c, site)

	// Hash static files.
	if err := b.walkStatic(b.hashStatic); err != nil {
		return err
	}

	// Clean up after previous build.
	if _, err := os.Stat(c.Dst); err == nil {
		if err := os.RemoveAll(c.Dst); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(c.Dst, 0o755); err != nil {
		return err
	}

	ctx = siteconfig.NewContext(ctx, site)
	ctx = layout.WithAssets(ctx, b.getStatic)

	pages := []struct {
		name string
		node g.Node
	}{
		{"index.html", home.Page(ctx, list)},
		{"404.html", home.NotFound(ctx)},
	}
	for _, p := range pages {
		if err := b.writePage(p.name, p.node); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}

	// Write robots.txt.
	if err := os.WriteFile(filepath.Join(c.Dst, "robots.txt"), []byte(robotsTxt), 0o644); err != nil {
		return err
	}
	// Copy static files.
	return b.walkStatic(b.copyStatic)
}

const robotsTxt = `User-agent: *
`

type min struct {
	m *minify.M
}

func newMin() *min {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags:    true,
		KeepDefaultAttrVals: true,
		KeepEndTags:         true,
	})
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("application/json", mjson.Minify)

	return &min{m: m}
}

func (m *min) Bytes(mediaType string, b []byte) ([]byte, error) {
	return m.m.Bytes(mediaType, b)
}

type buildContext struct {
	c      *Config
	site   *siteconfig.Config
	static map[string]string // path -> hashed path (e.g. /css/custom.css -> /css/custom-[hash].css)
	min    *min
}

func newBuildContext(c *Config, site *siteconfig.Config) *buildContext {
	return &buildContext{
		c:      c,
		site:   site,
		static: make(map[string]string),
		min:    newMin(),
	}
}

func (b *buildContext) writePage(name string, n g.Node) error {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return err
	}
	minified, err := b.min.Bytes("text/html", buf.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(b.c.Dst, name), minified, 0o644)
}

func isFullURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func (b *buildContext) url(base string) string {
	if isFullURL(base) || !b.c.Prod || b.site.URL == "" {
		return base
	}
	u, err := url.Parse(b.site.URL)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, b.site.BaseURL, base)
	return u.String()
}

func (b *buildContext) getStatic(base string) string {
	hashed, ok := b.static[base]
	if !ok {
		return b.url(base)
	}
	return b.url(hashed)
}

func (b *buildContext) staticDir() string {
	return filepath.Join(b.c.Src, "static")
}

// walkStatic walks the static directory, if there is one.
func (b *buildContext) walkStatic(fn fs.WalkDirFunc) error {
	if _, err := os.Stat(b.staticDir()); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(b.staticDir(), fn)
}

// staticRel returns the slash-separated path of a static file relative to
// the static directory, with a leading slash.
func (b *buildContext) staticRel(path string) (string, error) {
	rel, err := filepath.Rel(b.staticDir(), path)
	if err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(rel), nil
}

var hashedExts = []string{".css", ".js"}

func (b *buildContext) hashStatic(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}

	if d.IsDir() || isIgnorable(path) {
		return nil
	}

	var hashable bool
	for _, ext := range hashedExts {
		if filepath.Ext(path) == ext {
			hashable = true
		}
	}
	if !hashable {
		return nil
	}

	rel, err := b.staticRel(path)
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	hash := sha256.Sum256(buf)
	hashhex := hex.EncodeToString(hash[:])
	b.static[rel] = formatStaticName(rel, hashhex)

	return nil
}

// formatStaticName returns a hash name that inserts hash before the filename's
// extension. If no extension exists on filename then the hash is appended.
// Returns the original filename if hash is blank. Returns a blank string if
// the filename is blank.
func formatStaticName(filename, hash string) string {
	if filename == "" {
		return ""
	} else if hash == "" {
		return filename
	}

	dir, base := path.Split(filename)
	if i := strings.Index(base, "."); i != -1 {
		return path.Join(dir, fmt.Sprintf("%s-%s%s", base[:i], hash, base[i:]))
	}
	return path.Join(dir, fmt.Sprintf("%s-%s", base, hash))
}

func (b *buildContext) copyStatic(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}

	if d.IsDir() || isIgnorable(path) {
		return nil
	}

	rel, err := b.staticRel(path)
	if err != nil {
		return err
	}

	hashed, ok := b.static[rel]
	if !ok {
		hashed = rel
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var mediaType string
	switch filepath.Ext(path) {
	case ".css":
		mediaType = "text/css"
	case ".js":
		mediaType = "application/javascript"
	case ".json":
		mediaType = "application/json"
	}
	if mediaType != "" {
		minified, err := b.min.Bytes(mediaType, buf)
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
		buf = minified
	}

	dst := filepath.Join(b.c.Dst, filepath.FromSlash(hashed))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, buf, 0o644)
}

func isIgnorable(path string) bool {
	// Ignore files that look like Vim backups.
	if strings.HasSuffix(path, "~") {
		return true
	}

	// Ignore .gitignore files.
	if strings.Contains(path, ".gitignore") {
		return true
	}

	return false
}

var serveReadyHook func() // used in tests, called when Serve started serving the site

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

// newDebouncer creates a new debouncer.
func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Serve builds the site and starts serving it on a provided host:port.
func Serve(ctx context.Context, c *Config, addr string) error {
	c.setDefaults()

	logger.Info(ctx, "performing an initial build")
	if err := Build(ctx, c); err != nil {
		logger.Error(ctx, "initial build failed", slog.Any("err", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// The source root is watched only for site.yaml, see isWatched.
	if err := watcher.Add(c.Src); err != nil {
		return err
	}
	if err := watchRecursive(watcher, filepath.Join(c.Src, "static")); err != nil {
		return err
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer l.Close()
	logger.Info(ctx, "listening for HTTP requests", slog.String("addr", "http://"+l.Addr().String()))

	httpSrv := &http.Server{Handler: newRouter(c)}
	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				errCh <- err
			}
		}
	}()

	var buildMu sync.Mutex
	rebuild := func() {
		buildMu.Lock()
		defer buildMu.Unlock()
		logger.Info(ctx, "triggering build")
		if err := Build(ctx, c); err != nil {
			logger.Error(ctx, "failed to rebuild the site", slog.Any("err", err))
		}
	}
	// It's better to have a bit of delay, so that we don't start building
	// the site on each keystroke.
	debouncer := newDebouncer(250*time.Millisecond, rebuild)

	go func() {
		logger.Info(ctx, "started watching for new changes")

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isWatched(c.Src, event.Name) || !shouldRebuild(event.Name, event.Op) {
					continue
				}
				logger.Info(ctx, "detected change, scheduling build",
					slog.String("name", event.Name),
					slog.Any("op", event.Op),
				)
				debouncer.Do()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error(ctx, "file watcher failed", slog.Any("err", err))
			case <-ctx.Done():
				return
			}
		}
	}()

	if serveReadyHook != nil {
		serveReadyHook()
	}

	select {
	case <-ctx.Done():
		logger.Info(ctx, "gracefully shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return httpSrv.Shutdown(shutdownCtx)
}

func newRouter(c *Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Handle("/*", &staticHandler{fs: os.DirFS(c.Dst)})
	return r
}

func watchRecursive(w *fsnotify.Watcher, dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}

// isWatched reports whether a change to name, reported by the watcher, can
// affect the build. In the source root only site.yaml matters: everything
// else there, including the build directory, is ignored.
func isWatched(src, name string) bool {
	if filepath.Clean(filepath.Dir(name)) != filepath.Clean(src) {
		return true
	}
	return filepath.Base(name) == siteconfig.Filename
}

// Copied from
// https://github.com/brandur/modulir/blob/1ff912fdc45a79cb4d8d9f199d213ae9c3598cbd/watch.go#L201.
func shouldRebuild(path string, op fsnotify.Op) bool {
	base := filepath.Base(path)

	// Mac OS' worst mistake.
	if base == ".DS_Store" {
		return false
	}

	// Vim creates this temporary file to see whether it can write into a target
	// directory. It screws up our watching algorithm, so ignore it.
	if base == "4913" {
		return false
	}

	// A special case, but ignore creates on files that look like Vim backups.
	if strings.HasSuffix(base, "~") {
		return false
	}

	if op&fsnotify.Create != 0 {
		return true
	}

	if op&fsnotify.Remove != 0 {
		return true
	}

	if op&fsnotify.Write != 0 {
		return true
	}

	// Ignore everything else: chmod doesn't affect the build output, and
	// rename produces a following create event as well.
	return false
}

type staticHandler struct {
	fs fs.FS
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if p == "/" {
		p += "/index.html"
	}
	p = strings.TrimPrefix(path.Clean(p), "/")

	// Special case: /foo will serve content from foo.html, if it exists.
	if _, err := fs.Stat(h.fs, p+".html"); err == nil {
		p += ".html"
	}

	d, err := fs.Stat(h.fs, p)
	if errors.Is(err, fs.ErrNotExist) {
		h.serveNotFound(w, r)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if d.IsDir() {
		h.serveNotFound(w, r)
		return
	}

	b, err := fs.ReadFile(h.fs, p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.ServeContent(w, r, d.Name(), d.ModTime(), bytes.NewReader(b))
}

func (h *staticHandler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	f, err := h.fs.Open("404.html")
	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	io.Copy(w, f)
}

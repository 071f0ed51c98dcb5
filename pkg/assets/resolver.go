// pkg/assets/resolver.go

// Package assets resolves the image references carried by invoice records
// (logo, signature) into image data the PDF backend can embed.
package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrUnsupportedImage = errors.New("assets: unsupported image format")
	ErrTooLarge         = errors.New("assets: image too large")
	ErrEmptyRef         = errors.New("assets: empty image reference")
	ErrForbiddenRef     = errors.New("assets: image reference not allowed")
)

const (
	DefaultMaxBytes   = 5 << 20 // 5MB, same as the upload limit for logos
	DefaultTimeout    = 10 * time.Second
	DefaultCacheLimit = 64
)

// Options configures a Resolver.
type Options struct {
	// BaseDir roots file references. When set, absolute paths and paths
	// leaving the directory are rejected.
	BaseDir  string
	MaxBytes int64
	Timeout  time.Duration
	Client   *http.Client

	// DenyFiles rejects file references.
	DenyFiles bool
	// RestrictHosts limits http(s) references to AllowedHosts. An empty
	// list with RestrictHosts set rejects every remote reference.
	RestrictHosts bool
	AllowedHosts  []string

	// CacheLimit bounds the number of cached file and remote images.
	// data: URLs are never cached.
	CacheLimit int
}

type entry struct {
	data   []byte
	format string
}

// Resolver loads images from data: URLs, http(s) URLs and files. File and
// remote results are cached by reference, oldest entries are evicted first.
// A Resolver is safe for concurrent use.
type Resolver struct {
	baseDir       string
	maxBytes      int64
	client        *http.Client
	denyFiles     bool
	restrictHosts bool
	hosts         map[string]bool
	cacheLimit    int

	mu    sync.Mutex
	cache map[string]entry
	order []string // insertion order of cache keys
}

func NewResolver(opts Options) *Resolver {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.CacheLimit <= 0 {
		opts.CacheLimit = DefaultCacheLimit
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	hosts := make(map[string]bool, len(opts.AllowedHosts))
	for _, h := range opts.AllowedHosts {
		hosts[strings.ToLower(h)] = true
	}
	baseDir := opts.BaseDir
	if baseDir != "" {
		baseDir = filepath.Clean(baseDir)
	}
	return &Resolver{
		baseDir:       baseDir,
		maxBytes:      opts.MaxBytes,
		client:        client,
		denyFiles:     opts.DenyFiles,
		restrictHosts: opts.RestrictHosts,
		hosts:         hosts,
		cacheLimit:    opts.CacheLimit,
		cache:         make(map[string]entry),
	}
}

// Load returns the image behind ref as PNG, JPG or GIF data. Formats gofpdf
// cannot embed (WebP, BMP, TIFF) are converted to PNG.
func (r *Resolver) Load(ctx context.Context, ref string) ([]byte, string, error) {
	if ref == "" {
		return nil, "", ErrEmptyRef
	}
	if strings.HasPrefix(ref, "data:") {
		raw, err := r.decodeDataURL(ref)
		if err != nil {
			return nil, "", err
		}
		data, format, err := normalize(raw)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", shorten(ref), err)
		}
		return data, format, nil
	}

	r.mu.Lock()
	e, ok := r.cache[ref]
	r.mu.Unlock()
	if ok {
		return e.data, e.format, nil
	}

	raw, err := r.fetch(ctx, ref)
	if err != nil {
		return nil, "", err
	}
	data, format, err := normalize(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", shorten(ref), err)
	}

	r.store(ref, entry{data: data, format: format})
	return data, format, nil
}

func (r *Resolver) store(ref string, e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cache[ref]; ok {
		r.cache[ref] = e
		return
	}
	for len(r.order) >= r.cacheLimit {
		delete(r.cache, r.order[0])
		r.order = r.order[1:]
	}
	r.cache[ref] = e
	r.order = append(r.order, ref)
}

func (r *Resolver) cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func (r *Resolver) fetch(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return r.download(ctx, ref)
	default:
		return r.readFile(strings.TrimPrefix(ref, "file://"))
	}
}

func (r *Resolver) decodeDataURL(ref string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("assets: malformed data URL")
	}
	var data []byte
	var err error
	if strings.HasSuffix(meta, ";base64") {
		data, err = base64.StdEncoding.DecodeString(payload)
	} else {
		var s string
		s, err = url.PathUnescape(payload)
		data = []byte(s)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: data URL: %w", err)
	}
	if int64(len(data)) > r.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

func (r *Resolver) download(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	if r.restrictHosts && !r.hosts[strings.ToLower(req.URL.Hostname())] {
		return nil, fmt.Errorf("%w: host %q", ErrForbiddenRef, req.URL.Hostname())
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: GET %s: %s", ref, resp.Status)
	}
	return r.readLimited(resp.Body)
}

func (r *Resolver) readFile(path string) ([]byte, error) {
	if r.denyFiles {
		return nil, fmt.Errorf("%w: file %q", ErrForbiddenRef, path)
	}
	path, err := r.confine(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.readLimited(f)
}

// confine resolves path inside the base dir, if one is set.
func (r *Resolver) confine(path string) (string, error) {
	if r.baseDir == "" {
		return path, nil
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: absolute path %q", ErrForbiddenRef, path)
	}
	full := filepath.Join(r.baseDir, path)
	rel, err := filepath.Rel(r.baseDir, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q leaves %s", ErrForbiddenRef, path, r.baseDir)
	}
	return full, nil
}

func (r *Resolver) readLimited(rd io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(rd, r.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > r.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// normalize sniffs the format of data and converts it to something gofpdf
// can embed.
func normalize(data []byte) ([]byte, string, error) {
	_, kind, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	switch kind {
	case "png":
		return data, "PNG", nil
	case "jpeg":
		return data, "JPG", nil
	case "gif":
		return data, "GIF", nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "PNG", nil
}

func shorten(ref string) string {
	if len(ref) > 64 {
		return ref[:61] + "..."
	}
	return ref
}

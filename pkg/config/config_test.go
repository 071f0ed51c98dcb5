// pkg/config/config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/invoice-generator/pkg/invoice"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if !cfg.PDF.Compress {
		t.Error("compression off by default")
	}
	if cfg.Assets.MaxBytes != 5<<20 {
		t.Errorf("max bytes = %d", cfg.Assets.MaxBytes)
	}
	opts := cfg.RenderOptions()
	if opts.Locale != language.AmericanEnglish || opts.Location != time.UTC {
		t.Errorf("render options = %+v", opts)
	}
	if cfg.DefaultCurrency() != invoice.USD {
		t.Errorf("currency = %q", cfg.DefaultCurrency())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoicegen.yaml")
	src := `
server:
  addr: ":9090"
render:
  locale: de-DE
  currency: eur
assets:
  http_timeout: 3s
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INVOICEGEN_SERVER_ADDR", ":7070")
	t.Setenv("INVOICEGEN_PDF_COMPRESS", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.PDF.Compress {
		t.Error("compress not overridden by env")
	}
	if cfg.Assets.HTTPTimeout != 3*time.Second {
		t.Errorf("http timeout = %v", cfg.Assets.HTTPTimeout)
	}
	if cfg.DefaultCurrency() != invoice.EUR {
		t.Errorf("currency = %q, want EUR", cfg.DefaultCurrency())
	}
	if got := cfg.RenderOptions().Locale; got != language.MustParse("de-DE") {
		t.Errorf("locale = %s", got)
	}
}

func TestServerAssetOptions(t *testing.T) {
	t.Setenv("INVOICEGEN_SERVER_IMAGE_HOSTS", "cdn.example.com,img.example.com")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	opts := cfg.ServerAssetOptions("oss.example.com")
	if !opts.DenyFiles || !opts.RestrictHosts {
		t.Errorf("options = %+v, want files denied and hosts restricted", opts)
	}
	want := []string{"oss.example.com", "cdn.example.com", "img.example.com"}
	if diff := cmp.Diff(want, opts.AllowedHosts); diff != "" {
		t.Errorf("allowed hosts mismatch (-want +got):\n%s", diff)
	}

	t.Setenv("INVOICEGEN_SERVER_FILE_IMAGES", "true")
	if cfg, err = Load(""); err != nil {
		t.Fatal(err)
	}
	if !cfg.ServerAssetOptions().DenyFiles {
		t.Error("files allowed without a base dir")
	}
	t.Setenv("INVOICEGEN_ASSETS_BASE_DIR", t.TempDir())
	if cfg, err = Load(""); err != nil {
		t.Fatal(err)
	}
	if cfg.ServerAssetOptions().DenyFiles {
		t.Error("files denied with file_images and a base dir")
	}
	if cfg.AssetOptions().DenyFiles || cfg.AssetOptions().RestrictHosts {
		t.Error("CLI asset options are restricted")
	}
}

func TestLoadRejects(t *testing.T) {
	testCases := map[string]string{
		"locale":   "INVOICEGEN_RENDER_LOCALE",
		"timezone": "INVOICEGEN_RENDER_TIMEZONE",
		"currency": "INVOICEGEN_RENDER_CURRENCY",
	}
	for name, env := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env, "not valid!")
			if _, err := Load(""); err == nil {
				t.Errorf("Load() accepted %s=%q", env, "not valid!")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

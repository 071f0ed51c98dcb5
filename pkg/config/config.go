// pkg/config/config.go

package config

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/invoice-generator/pkg/assets"
	"github.com/invoice-generator/pkg/invoice"
	"github.com/invoice-generator/pkg/render"
)

// EnvPrefix prefixes every environment variable, e.g. INVOICEGEN_SERVER_ADDR.
const EnvPrefix = "INVOICEGEN"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Render    RenderConfig    `mapstructure:"render"`
	PDF       PDFConfig       `mapstructure:"pdf"`
	Assets    AssetsConfig    `mapstructure:"assets"`
	Directory DirectoryConfig `mapstructure:"directory"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// FileImages lets HTTP clients reference files under assets.base_dir.
	FileImages bool `mapstructure:"file_images"`
	// ImageHosts may serve remote images to HTTP clients, in addition to
	// the hosts the directory's logos and signatures live on.
	ImageHosts []string `mapstructure:"image_hosts"`
}

type RenderConfig struct {
	Locale   string `mapstructure:"locale"`
	Timezone string `mapstructure:"timezone"`
	Currency string `mapstructure:"currency"`

	locale language.Tag
	loc    *time.Location
}

type PDFConfig struct {
	FontFile string `mapstructure:"font_file"`
	Compress bool   `mapstructure:"compress"`
}

type AssetsConfig struct {
	BaseDir     string        `mapstructure:"base_dir"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	MaxBytes    int64         `mapstructure:"max_bytes"`
}

type DirectoryConfig struct {
	File string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.file_images", false)
	v.SetDefault("server.image_hosts", []string{})
	v.SetDefault("render.locale", "en-US")
	v.SetDefault("render.timezone", "UTC")
	v.SetDefault("render.currency", string(invoice.DefaultCurrency))
	v.SetDefault("pdf.font_file", "")
	v.SetDefault("pdf.compress", true)
	v.SetDefault("assets.base_dir", "")
	v.SetDefault("assets.http_timeout", assets.DefaultTimeout)
	v.SetDefault("assets.max_bytes", assets.DefaultMaxBytes)
	v.SetDefault("directory.file", "")
}

// Load reads the optional config file at path, then applies environment
// overrides. The file type follows the extension (yaml, toml, json, env).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Render.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *RenderConfig) resolve() error {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("config: render.locale %q: %w", c.Locale, err)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: render.timezone %q: %w", c.Timezone, err)
	}
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return fmt.Errorf("config: render.currency %q: %w", c.Currency, err)
	}
	c.locale, c.loc, c.Currency = tag, loc, unit.String()
	return nil
}

// RenderOptions are the renderer settings derived from the config.
func (c *Config) RenderOptions() render.Options {
	return render.Options{Locale: c.Render.locale, Location: c.Render.loc}
}

// DefaultCurrency is the currency new records start with.
func (c *Config) DefaultCurrency() invoice.Currency {
	return invoice.Currency(c.Render.Currency)
}

func (c *Config) AssetOptions() assets.Options {
	return assets.Options{
		BaseDir:  c.Assets.BaseDir,
		MaxBytes: c.Assets.MaxBytes,
		Timeout:  c.Assets.HTTPTimeout,
	}
}

// ServerAssetOptions are the resolver settings for images referenced by
// HTTP clients. Files need server.file_images and a base dir; remote images
// are limited to hosts plus server.image_hosts.
func (c *Config) ServerAssetOptions(hosts ...string) assets.Options {
	opts := c.AssetOptions()
	opts.DenyFiles = !c.Server.FileImages || c.Assets.BaseDir == ""
	opts.RestrictHosts = true
	opts.AllowedHosts = append(slices.Clone(hosts), c.Server.ImageHosts...)
	return opts
}

// Log prints the effective configuration.
func (c *Config) Log() {
	log.Printf("[INFO] configuration loaded:")
	log.Printf("[INFO] - server addr: %s, file images: %t, extra image hosts: %v", c.Server.Addr, c.Server.FileImages, c.Server.ImageHosts)
	log.Printf("[INFO] - render locale: %s, timezone: %s, currency: %s", c.Render.locale, c.Render.Timezone, c.Render.Currency)
	log.Printf("[INFO] - pdf font: %s, compress: %t", func() string {
		if c.PDF.FontFile != "" {
			return c.PDF.FontFile
		}
		return "Helvetica (built-in)"
	}(), c.PDF.Compress)
	log.Printf("[INFO] - assets base dir: %q, max bytes: %d", c.Assets.BaseDir, c.Assets.MaxBytes)
	log.Printf("[INFO] - directory: %s", func() string {
		if c.Directory.File != "" {
			return c.Directory.File
		}
		return "built-in"
	}())
}

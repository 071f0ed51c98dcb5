// cmd/commands.go

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/invoice-generator/pkg/assets"
	"github.com/invoice-generator/pkg/config"
	"github.com/invoice-generator/pkg/directory"
	"github.com/invoice-generator/pkg/export"
	"github.com/invoice-generator/pkg/invoice"
	"github.com/invoice-generator/pkg/render"
	"github.com/invoice-generator/pkg/server"
)

const creator = "invoicegen"

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	cfg.Log()
	return cfg, nil
}

// readRecord reads a record file, or stdin for "-".
func readRecord(path string) (invoice.Record, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return invoice.Record{}, fmt.Errorf("reading stdin: %w", err)
		}
		return invoice.Decode(data)
	}
	return invoice.ReadFile(path)
}

func recordArg(c *cli.Context) (invoice.Record, error) {
	if c.NArg() != 1 {
		return invoice.Record{}, fmt.Errorf("%s: expected one record file, got %d arguments", c.Command.Name, c.NArg())
	}
	rec, err := readRecord(c.Args().First())
	if err != nil {
		return rec, err
	}
	return rec, rec.Validate()
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "write a fresh record, optionally pre-filled from the directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Value: string(invoice.TypeInvoice), Usage: "invoice, estimate, quote or custom"},
			&cli.StringFlag{Name: "label", Usage: "label of a custom document"},
			&cli.StringFlag{Name: "number", Usage: "document number"},
			&cli.StringFlag{Name: "company", Usage: "directory company supplying logo, marks and issuer block"},
			&cli.StringFlag{Name: "user", Usage: "directory user signing the document"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-", Usage: "record file to write"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			dir, err := directory.Load(cfg.Directory.File)
			if err != nil {
				return err
			}

			edits := []invoice.Edit{
				invoice.SetCurrency(cfg.DefaultCurrency()),
				invoice.SetType(invoice.DocumentType(c.String("type"))),
				invoice.SetCustomLabel(c.String("label")),
				invoice.SetInvoiceNumber(c.String("number")),
			}
			if name := c.String("company"); name != "" {
				company, err := dir.Company(name)
				if err != nil {
					return err
				}
				edits = append(edits, directory.ApplyCompany(company))
			}
			if name := c.String("user"); name != "" {
				user, err := dir.User(name)
				if err != nil {
					return err
				}
				edits = append(edits, directory.ApplyUser(user))
			}

			rec := invoice.Apply(invoice.New(time.Now()), edits...)
			if err := rec.Validate(); err != nil {
				return err
			}
			data, err := invoice.Encode(rec)
			if err != nil {
				return err
			}
			if out := c.String("output"); out != "-" {
				log.Printf("[INFO] writing %s", out)
				return os.WriteFile(out, data, 0o644)
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
}

func previewCommand() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "print the laid-out document",
		ArgsUsage: "RECORD",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the document tree as JSON"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			rec, err := recordArg(c)
			if err != nil {
				return err
			}
			doc := render.Render(rec, cfg.RenderOptions())
			if c.Bool("json") {
				return writeDocumentJSON(os.Stdout, doc)
			}
			writeOutline(os.Stdout, doc)
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export a record as PDF",
		ArgsUsage: "RECORD",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "PDF file to write (default: the document filename)"},
			&cli.BoolFlag{Name: "strict", Usage: "fail when an image cannot be placed"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			rec, err := recordArg(c)
			if err != nil {
				return err
			}
			doc := render.Render(rec, cfg.RenderOptions())

			strict := c.Bool("strict")
			var imageErrs []string
			opts := export.Options{
				Images: assets.NewResolver(cfg.AssetOptions()),
				OnImageError: func(ref string, err error) {
					if !strict {
						log.Printf("[WARN] skipping image: %v", err)
					}
					imageErrs = append(imageErrs, err.Error())
				},
			}

			out := c.String("output")
			if out == "" {
				out = doc.Filename
			}
			p := export.PDFOptions{FontFile: cfg.PDF.FontFile, Compress: cfg.PDF.Compress, Creator: creator}
			if strict {
				// Draw into memory first so a failed image leaves no file behind.
				data, err := export.Bytes(c.Context, doc, p, opts)
				if err != nil {
					return err
				}
				if len(imageErrs) > 0 {
					return fmt.Errorf("export %s: %s", out, strings.Join(imageErrs, "; "))
				}
				return os.WriteFile(out, data, 0o644)
			}
			if err := export.WriteFile(c.Context, doc, out, p, opts); err != nil {
				return err
			}
			log.Printf("[INFO] wrote %s (%d images skipped)", out, len(imageErrs))
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address, overrides server.addr"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			dir, err := directory.Load(cfg.Directory.File)
			if err != nil {
				return err
			}
			addr := cfg.Server.Addr
			if c.IsSet("addr") {
				addr = c.String("addr")
			}
			srv := server.New(server.Options{
				Directory:       dir,
				Images:          assets.NewResolver(cfg.ServerAssetOptions(dir.ImageHosts()...)),
				Render:          cfg.RenderOptions(),
				PDF:             export.PDFOptions{FontFile: cfg.PDF.FontFile, Compress: cfg.PDF.Compress, Creator: creator},
				DefaultCurrency: cfg.DefaultCurrency(),
			})
			return server.RunWithGracefulShutdown(addr, srv.Router(), cfg.Server.ShutdownTimeout)
		},
	}
}

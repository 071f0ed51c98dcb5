// cmd/main.go

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/invoice-generator/pkg/config"
)

func main() {
	app := &cli.App{
		Name:  "invoicegen",
		Usage: "lay out invoices, estimates and quotes and export them as PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file (yaml, toml or json)",
				EnvVars: []string{config.EnvPrefix + "_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			newCommand(),
			previewCommand(),
			exportCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

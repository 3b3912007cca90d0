// Command xdrc compiles XDR/RPC schema files into generated Go source.
// It is the thin driver layer pkg/compiler is agnostic to (§1, §5
// [FULL]): everything here is flag parsing, filesystem access and
// progress/error reporting, never compiler logic.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "xdrc",
		Usage: "compile XDR/RPC schema files into Go",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: defaultConfigPath, Usage: "project config file"},
			&cli.StringFlag{Name: "out", Usage: "output directory (overrides config)"},
			&cli.StringFlag{Name: "package", Value: "generated", Usage: "package name for generated code"},
			&cli.StringFlag{Name: "format", Value: "text", Usage: "diagnostics format: text or json"},
		},
		Commands: []*cli.Command{
			{
				Name:      "compile",
				Usage:     "compile schema files once",
				ArgsUsage: "[schema.x...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "incremental", Usage: "skip files unchanged since the last run"},
					&cli.StringFlag{Name: "cache", Usage: "incremental cache file path"},
				},
				Action: runCompile,
			},
			{
				Name:      "watch",
				Usage:     "recompile schema files on change",
				ArgsUsage: "[schema.x...]",
				Action:    runWatch,
			},
			{
				Name:      "report",
				Usage:     "compile and render an HTML diagnostics report",
				ArgsUsage: "[schema.x...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "report-out", Value: "report.html", Usage: "HTML report path"},
				},
				Action: runReport,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

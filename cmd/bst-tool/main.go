package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bluesky-social/seedtree/util/cliutil"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "bst-tool",
		Usage:   "build, inspect, and exercise array-seeded binary search trees",
		Version: versioninfo.Short(),
		Writer:  out,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			EnvVars: []string{"BST_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format (text or json)",
			EnvVars: []string{"BST_LOG_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "write logs to this path instead of stderr ('-' for stdout)",
			EnvVars: []string{"BST_LOG_FILE"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		_, closer, err := cliutil.SetupSlog(cliutil.LogOptions{
			LogLevel:  cctx.String("log-level"),
			LogFormat: cctx.String("log-format"),
			LogPath:   cctx.String("log-file"),
		})
		if err != nil {
			return err
		}
		cctx.App.Metadata["logCloser"] = closer
		return nil
	}
	app.After = func(cctx *cli.Context) error {
		if closer, ok := cctx.App.Metadata["logCloser"].(io.Closer); ok {
			return closer.Close()
		}
		return nil
	}
	app.Commands = []*cli.Command{
		cmdBuild,
		cmdApply,
		cmdDemo,
		cmdBench,
	}
	return app
}

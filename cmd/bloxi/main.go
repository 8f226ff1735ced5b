package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloxi-go/bloxi/internal/config"
	"github.com/bloxi-go/bloxi/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┐ ┬  ┌─┐─┐ ┬┬
  ├┴┐│  │ │┌┴┬┘│
  └─┘┴─┘└─┘┴ └─┴
`

// options holds the persistent flags shared by every command.
type options struct {
	verbose    bool
	configPath string
	jsonErrors bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		jsonErrors, _ := rootCmd.PersistentFlags().GetBool("json")
		reportError(os.Stderr, err, jsonErrors)
		os.Exit(1)
	}
}

// reportError prints err for a terminal, or as one JSON line for tools.
func reportError(w io.Writer, err error, jsonErrors bool) {
	if jsonErrors {
		errors.PrintJSON(w, err)
		return
	}
	errors.Print(w, err)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bloxi",
		Short: "Responsive style factories for Go HTML rendering",
		Long: `bloxi turns responsive style props into inline styles plus one
static media-query stylesheet.

The CLI prints or publishes that stylesheet and runs a preview
server for a small demo site built with the layout helpers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.verbose))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to bloxi.json or bloxi.yaml")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonErrors, "json", false, "Report errors as JSON")

	rootCmd.AddCommand(
		cssCmd(opts),
		serveCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

// newLogger returns a text logger; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the --config file, or searches upward from the working
// directory. Outside a project the defaults are used.
func loadConfig(opts *options) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFile(opts.configPath)
	}
	cfg, err := config.LoadFromWorkingDir()
	if errors.HasCode(err, "E101") {
		slog.Debug("no config file found, using defaults")
		return config.New(), nil
	}
	return cfg, err
}

// printBanner prints the bloxi ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

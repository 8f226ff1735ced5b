package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloxi-go/bloxi/internal/config"
	"github.com/bloxi-go/bloxi/internal/errors"
	"github.com/bloxi-go/bloxi/pkg/middleware"
	"github.com/bloxi-go/bloxi/pkg/publish"
	"github.com/bloxi-go/bloxi/pkg/style"
)

func cssCmd(opts *options) *cobra.Command {
	var (
		out       string
		doPublish bool
		target    string
		prefix    string
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print or publish the media-query stylesheet",
		Long: `Print the bloxi media-query stylesheet, write it to a file, or
publish it under a content-hashed key to the configured target.

Breakpoint widths come from the "breakpoints" section of bloxi.json.

Examples:
  bloxi css
  bloxi css --out public/bloxi.css
  bloxi css --publish
  bloxi css --publish --target s3 --prefix css/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if target != "" {
				cfg.Publish.Target = target
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}
			sheet := style.NewSheet(sheetBreakpoints(cfg))

			switch {
			case doPublish:
				res, err := publishSheet(cmd.Context(), cfg, sheet)
				if err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "Published %s (%d bytes)", res.Key, res.Size)
				info(cmd.OutOrStdout(), "%s", res.Location)
				return nil
			case out != "":
				if err := os.WriteFile(out, []byte(sheet.CSS()), 0644); err != nil {
					return errors.New("E301").WithDetail("writing " + out).Wrap(err)
				}
				success(cmd.OutOrStdout(), "Wrote %s", out)
				return nil
			default:
				_, err := fmt.Fprint(cmd.OutOrStdout(), sheet.CSS())
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the stylesheet to a file")
	cmd.Flags().BoolVarP(&doPublish, "publish", "p", false, "Publish to the configured target")
	cmd.Flags().StringVar(&target, "target", "", "Publish target: disk or s3 (default from bloxi.json)")
	cmd.Flags().StringVar(&prefix, "prefix", config.DefaultPublishPrefix, "Key prefix for the published file")

	return cmd
}

// sheetBreakpoints applies the configured width overrides to the default
// breakpoint table. Names stay fixed; only widths change.
func sheetBreakpoints(cfg *config.Config) []style.Breakpoint {
	bps := style.DefaultBreakpoints()
	for i, bp := range bps {
		if w, ok := cfg.Breakpoints[bp.Name]; ok {
			bps[i].MinWidth = w
		}
	}
	return bps
}

// publishSheet writes sheet to the configured store and records the
// outcome in the publish metrics.
func publishSheet(ctx context.Context, cfg *config.Config, sheet *style.Sheet) (*publish.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	pcfg := cfg.Publish
	if pcfg.Target == config.TargetDisk {
		pcfg.Dir = cfg.PublishDir()
	}

	store, err := publish.NewStore(pcfg)
	if err != nil {
		middleware.RecordPublish(pcfg.Target, err)
		return nil, err
	}
	res, err := publish.Stylesheet(ctx, store, sheet, pcfg.Prefix)
	middleware.RecordPublish(pcfg.Target, err)
	return res, err
}

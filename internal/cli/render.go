package cli

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartaxes/pkg/config"
	"github.com/matzehuels/chartaxes/pkg/errors"
	"github.com/matzehuels/chartaxes/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path
	formats []string // svg, png, pdf, json
	scale   float64  // PNG scale factor
	noCache bool     // bypass the artifact cache entirely
	refresh bool     // ignore cached artifacts but store fresh ones
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}
	var formats string

	cmd := &cobra.Command{
		Use:   "render CONFIG",
		Short: "Render the axes of a chart description",
		Long: `Render lays out the axes described by a TOML chart file and writes one
file per requested format next to the config (or at --output).

With a single format, --output names the file. With several formats it is a
base path and each file gets the format's extension.`,
		Example: `  chartaxes render latency.toml
  chartaxes render latency.toml -f svg,png --scale 3 -o out/latency`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formats)
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base path")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output formats: svg, png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	chart, err := config.Load(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded chart", "path", input, "width", chart.Width, "height", chart.Height)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	result, err := runner.Execute(ctx, chart, pipeline.Options{
		Formats: opts.formats,
		Scale:   opts.scale,
		Refresh: opts.refresh,
	})
	if err != nil {
		return err
	}

	var written []string
	for _, format := range pipeline.SupportedFormats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(opts.output, input, format, len(result.Artifacts))
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		written = append(written, format)
		printFile(path)
	}
	printStats(written, result)
	prog.done("Rendered " + filepath.Base(input))
	return nil
}

// outputPath picks the file a format is written to. A single artifact goes to
// output verbatim when set; otherwise the base path (output or input minus a
// known extension) gets the format's extension.
func outputPath(output, input, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output, input) + "." + format
}

func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.SupportedFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

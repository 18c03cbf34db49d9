package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dashu-baba/architect-layout-solver/pkg/pipeline"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
	"github.com/dashu-baba/architect-layout-solver/pkg/render"
)

// renderCommand creates the render command for producing artifacts from a
// solved layout.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		showScore  bool
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "render [plan.json] [layout.json]",
		Short: "Render artifacts from a solved layout",
		Long: `Render artifacts from a solved layout.

The render command takes the original plan.json and a layout.json file
(produced by 'solve') and renders presentation artifacts: an SVG floor
plan, a plain-text grid, the solution JSON, or the room-adjacency graph as
DOT or PNG.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Formats:   parseFormats(formatsStr),
				Scale:     scale,
				ShowScore: showScore,
			}
			if err := render.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], args[1], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, txt, dot, png (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&showScore, "show-score", false, "include scores in rendered labels")
	cmd.Flags().Float64Var(&scale, "scale", 0, "SVG resolution in pixels per metre")

	return cmd
}

// runRender loads the plan and layout and renders the requested formats.
func (c *CLI) runRender(ctx context.Context, planPath, layoutPath string, opts pipeline.Options, output string, noCache bool) error {
	doc, err := plan.ReadFile(planPath)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", planPath, err)
	}
	sol, err := plan.ReadSolutionFile(layoutPath)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", layoutPath, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering floor plan...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, sol, doc, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	base := strings.TrimSuffix(layoutPath, filepath.Ext(layoutPath))
	base = strings.TrimSuffix(base, ".layout")
	if err := writeArtifacts(artifacts, opts.Formats, base, output); err != nil {
		return err
	}

	printSuccess("Render complete")
	printStats(len(sol.PlacedRooms), sol.TotalScore, cacheHit)

	return nil
}

// writeArtifacts writes one file per format. With a single format and an
// explicit output path, the artifact goes exactly there; otherwise each
// format lands at <base>.<format>.
func writeArtifacts(artifacts map[string][]byte, formats []string, base, output string) error {
	for _, format := range formats {
		path := base + "." + format
		if output != "" {
			if len(formats) == 1 {
				path = output
			} else {
				path = output + "." + format
			}
		}

		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

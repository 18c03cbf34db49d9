package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/pipeline"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		refresh    bool
		deadline   time.Duration
		showScore  bool
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "solve [plan.json]",
		Short: "Solve a floor-plan layout from a plan document",
		Long: `Solve a floor-plan layout from a plan document.

The solve command reads a plan.json file (boundary dimensions plus room
requirements), runs the constraint solver, and writes the solved layout to
a layout.json file next to the input. Additional artifact formats can be
rendered in the same run with --format.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Deadline:  deadline,
				Refresh:   refresh,
				Scale:     scale,
				ShowScore: showScore,
			}
			if formatsStr != "" {
				opts.Formats = parseFormats(formatsStr)
			}
			return c.runSolve(cmd.Context(), args[0], opts, output, noCache, formatsStr != "")
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "also render artifact format(s): svg, json, txt, dot, png (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even on a cache hit")
	cmd.Flags().DurationVar(&deadline, "deadline", 0, "abort the search after this duration (e.g. 30s)")
	cmd.Flags().BoolVar(&showScore, "show-score", false, "include scores in rendered artifacts")
	cmd.Flags().Float64Var(&scale, "scale", 0, "SVG resolution in pixels per metre")

	return cmd
}

// runSolve loads the plan, solves it, and writes the layout plus any
// requested artifacts.
func (c *CLI) runSolve(ctx context.Context, input string, opts pipeline.Options, output string, noCache, renderArtifacts bool) error {
	doc, err := plan.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %d rooms...", len(doc.Rooms)))
	spinner.Start()

	if err := doc.Validate(); err != nil {
		spinner.Stop()
		return err
	}

	sol, cacheHit, err := runner.SolveWithCacheInfo(ctx, doc, opts)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNoSolution) {
			spinner.StopWithError("No layout satisfies all constraints")
		} else if errors.Is(err, errors.ErrCodeTimeout) {
			spinner.StopWithError("Search deadline exceeded")
		} else {
			spinner.StopWithError("Solve failed")
		}
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := plan.WriteSolutionFile(sol, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout solved in %.1f ms", sol.ComputationTimeMS)
	printFile(outputPath)
	printStats(len(sol.PlacedRooms), sol.TotalScore, cacheHit)

	if renderArtifacts {
		artifacts, _, err := runner.RenderWithCacheInfo(ctx, sol, doc, opts)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		base := strings.TrimSuffix(outputPath, ".layout.json")
		if err := writeArtifacts(artifacts, opts.Formats, base, ""); err != nil {
			return err
		}
	}

	printNewline()
	printNextStep("Render", fmt.Sprintf("%s render %s %s", appName, input, outputPath))

	return nil
}

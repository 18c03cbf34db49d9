package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// examplesCommand creates the examples command for browsing built-in plans.
func (c *CLI) examplesCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "examples [name]",
		Short: "List or export the built-in example plans",
		Long: `List or export the built-in example plans.

Without arguments, lists the available examples. With a name, writes that
example to <name>.json in the current directory. With --pick, opens an
interactive selector.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return writeExample(args[0])
			}
			if pick {
				return runExamplePicker()
			}
			listExamples()
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "select an example interactively")

	return cmd
}

// listExamples prints the example table.
func listExamples() {
	fmt.Println(StyleTitle.Render("Built-in example plans"))
	printNewline()

	for _, ex := range plan.Examples() {
		fmt.Println("  " + StyleHighlight.Render(ex.Name) +
			StyleDim.Render(fmt.Sprintf("  %d rooms · %.0f×%.0f m", len(ex.Plan.Rooms), ex.Plan.Boundary.Width, ex.Plan.Boundary.Height)))
		printDetail("%s", ex.Description)
	}

	printNewline()
	printNextStep("Export one", appName+" examples apartment")
}

// writeExample exports one example to <name>.json.
func writeExample(name string) error {
	ex := plan.ExampleByName(name)
	if ex == nil {
		return errors.New(errors.ErrCodeNotFound, "no example named %q (try '%s examples')", name, appName)
	}

	path := ex.Name + ".json"
	if err := plan.WriteFile(ex.Plan, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Wrote %s example", ex.Name)
	printFile(path)
	printNewline()
	printNextStep("Solve it", fmt.Sprintf("%s solve %s", appName, path))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan.json]",
		Short: "Validate a plan document without solving it",
		Long: `Validate a plan document without solving it.

Checks the same rules the solver enforces before searching: positive finite
boundary dimensions and room areas, unique well-formed room ids, and
neighbour relations that do not contradict themselves.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := plan.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("load plan %s: %w", args[0], err)
			}

			if err := doc.Validate(); err != nil {
				printError("Plan is invalid")
				printDetail("%s", errors.UserMessage(err))
				return err
			}

			printSuccess("Plan is valid")
			printDetail("%d rooms in a %.1f×%.1f m site", len(doc.Rooms), doc.Boundary.Width, doc.Boundary.Height)
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-history/internal"
)

// tictactoe replay
func Replay(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <cell>...",
		Short: "Play a sequence of cells and print the resulting board",
		Long: heredoc.Doc(`replay places marks on the given cells in order, X first,
			and prints the board, the status and the move list.

			With --jump the board is shown as it was after that move,
			as if the player had jumped back in the history.`),
		Example: "  tictactoe replay 0 4 1 3 2\n  tictactoe replay 0 4 1 --jump 1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cells := make([]int, 0, len(args))
			for _, arg := range args {
				cell, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("cell %q is not a number", arg)
				}
				cells = append(cells, cell)
			}

			var jump *int
			if cmd.Flags().Changed("jump") {
				move, err := cmd.Flags().GetInt("jump")
				if err != nil {
					return err
				}
				jump = &move
			}

			return application.Replay(rt.logger, rt.conf, cells, jump, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntP("jump", "j", 0, "Move to show after replaying")

	return cmd
}

package cli

import (
	"io"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-history/internal"
)

// tictactoe play
func Play(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.play(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (that *runtime) play(in io.Reader, out io.Writer) error {
	return application.RunApp(that.logger, that.conf, in, out)
}

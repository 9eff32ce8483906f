package cli

import (
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
)

const version = "v0.1.0"

// runtime is what the persistent pre-run prepares for the subcommands.
type runtime struct {
	conf   *config.Config
	logger *slog.Logger
}

func Root() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal with move history",
		Long: heredoc.Doc(`tictactoe is a two player game on a 3x3 board. Players
			take turns placing X and O; the first to fill a row, column
			or diagonal wins.

			Every move is kept in a history. Jumping to an earlier move
			and playing from there discards the moves that followed it.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.play(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to the config file")
	root.PersistentFlags().BoolP("trace", "t", false, "Show debug logs")
	root.PersistentFlags().Bool("no-color", false, "Disable colors")

	root.SetVersionTemplate(version + "\n")
	root.Version = version

	root.AddCommand(Play(rt))
	root.AddCommand(Replay(rt))
	root.AddCommand(Version(rt))

	return root
}

func (that *runtime) init(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if path == "" {
		path = config.Locate()
	}

	conf, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flag("trace").Changed {
		conf.LogLevel = "debug"
	}

	if cmd.Flag("no-color").Changed {
		conf.Display.NoColor = true
	}

	that.conf = conf
	that.logger = initLogger(conf, cmd.ErrOrStderr())

	return nil
}

// initialize logger.
func initLogger(conf *config.Config, writer io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))
}

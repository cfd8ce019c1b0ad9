package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/cab-booking/internal/infrastructure/config"
	"github.com/example/cab-booking/internal/infrastructure/logging"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

// app carries what the root command resolved for its subcommands.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "cabbook",
		Short:         "Cab booking admission: book rides or load-test the admission policy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.Setup(cfg.Debug, cfg.LogJSON)
			return nil
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newVersionCmd())
	root.AddCommand(newBookCmd(a))
	root.AddCommand(newSimulateCmd(a))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

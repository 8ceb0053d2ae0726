package main

import (
	"errors"

	"github.com/diepfote/golang-tools/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd(version string) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "logger",
		Short: "Print log lines from the shell, only in debug configurations",
		Long: `logger drives the same gated logging the Go package offers.

Lines are printed when the binary was built with -tags debug, when
LOGGER_DEBUG is true, or when --debug is passed. Otherwise every command
exits quietly.

Only the arguments after the message are printed:
  logger warn "cache miss" 1 two 3.0    # prints "1 two 3.0"
  logger debug-error --error "dial tcp: timeout"
  logger replay --file ./events.log`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.OutOrStdout())
			// unset leaves the build tag and LOGGER_DEBUG in charge
			if v.IsSet("debug") {
				logger.SetEnabled(v.GetBool("debug"))
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "print log lines regardless of the build configuration")
	v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	v.SetEnvPrefix("LOGGER")
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newLevelCmd(logger.TypeError),
		newLevelCmd(logger.TypeWarn),
		newLevelCmd(logger.TypeDebug),
		newDebugErrorCmd(),
		newReplayCmd(),
	)
	return rootCmd
}

func newLevelCmd(t logger.LogType) *cobra.Command {
	return &cobra.Command{
		Use:   t.String() + " <message> [args...]",
		Short: "Log the args at " + t.String() + " level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Log(t, args[0], parseValues(args[1:])...)
			return nil
		},
	}
}

// cliError lets --description act like an error with a display text.
type cliError struct {
	text        string
	description string
}

func (e *cliError) Error() string            { return e.text }
func (e *cliError) ErrorDescription() string { return e.description }

func newDebugErrorCmd() *cobra.Command {
	var (
		text        string
		description string
		fallback    string
	)
	cmd := &cobra.Command{
		Use:   "debug-error",
		Short: "Log an error description, or the fallback when no error is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch {
			case description != "":
				err = &cliError{text: text, description: description}
			case cmd.Flags().Changed("error"):
				err = errors.New(text)
			}
			logger.DebugError(err, fallback)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "error", "", "error text; omit to log the fallback")
	cmd.Flags().StringVar(&description, "description", "", "display description that takes precedence over --error")
	cmd.Flags().StringVar(&fallback, "fallback", logger.DefaultFallback, "message logged when there is no error")
	return cmd
}

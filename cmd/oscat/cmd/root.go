package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/osckit/oscwire/osc"
)

var (
	cfg    Config
	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "oscat",
	Short: "Send, receive and inspect OSC messages over stream transports",
	Long: `oscat encodes, decodes and moves Open Sound Control messages over
SLIP-framed TCP streams. It is a debugging companion for anything
speaking the OSC 1.0 wire format.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Str("app", "oscat").Logger()

		path, _ := cmd.Flags().GetString("config")
		var err error
		if cfg, err = loadConfig(path); err != nil {
			return err
		}
		if cmd.Flags().Changed("doubles") {
			cfg.Doubles, _ = cmd.Flags().GetBool("doubles")
		}
		if cmd.Flags().Changed("oversize") {
			cfg.Oversize, _ = cmd.Flags().GetInt("oversize")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().Bool("doubles", false, "encode non-integer numbers as 64-bit floats")
	rootCmd.PersistentFlags().Int("oversize", 0, "extra encode buffer slack for multi-byte text")
}

func options() osc.Options {
	return osc.Options{Oversize: cfg.Oversize, Doubles: cfg.Doubles}
}

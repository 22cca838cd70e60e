package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osckit/oscwire/osc"
	"github.com/osckit/oscwire/stream"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Accept TCP connections and print every received message",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Listen
		}

		srv := &stream.Server{
			Addr:    addr,
			Options: options(),
			Log:     &logger,
			Handler: stream.HandlerFunc(func(msg *osc.Message) {
				fmt.Println(msg)
			}),
		}
		logger.Info().Str("addr", addr).Msg("listening")
		return srv.ListenAndServe()
	},
}

func init() {
	listenCmd.Flags().String("addr", "", "host:port to listen on (default from config)")
	rootCmd.AddCommand(listenCmd)
}

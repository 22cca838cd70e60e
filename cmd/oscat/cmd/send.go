package cmd

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osckit/oscwire/osc"
	"github.com/osckit/oscwire/stream"
)

var sendCmd = &cobra.Command{
	Use:   "send ADDRESS [ARG...]",
	Short: "Encode one message and send it to a TCP peer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			to = cfg.Target
		}

		msg := osc.NewMessage(args[0], parseArguments(args[1:])...)

		conn, err := stream.Dial(to, options())
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := conn.Send(msg); err != nil {
			return err
		}
		logger.Info().Str("to", to).Stringer("message", msg).Msg("sent")
		return nil
	},
}

func init() {
	sendCmd.Flags().String("to", "", "host:port to send to (default from config)")
	rootCmd.AddCommand(sendCmd)
}

// parseArguments maps CLI tokens to OSC arguments: integers and floats
// become Number (classified at encode time), true/false become Bool,
// 0x-prefixed hex becomes Blob, everything else is a String.
func parseArguments(tokens []string) []osc.Argument {
	args := make([]osc.Argument, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok == "true":
			args = append(args, osc.Bool(true))
		case tok == "false":
			args = append(args, osc.Bool(false))
		case strings.HasPrefix(tok, "0x"):
			if b, err := hex.DecodeString(tok[2:]); err == nil {
				args = append(args, osc.Blob(b))
			} else {
				args = append(args, osc.String(tok))
			}
		default:
			if n, err := strconv.ParseFloat(tok, 64); err == nil {
				args = append(args, osc.Number(n))
			} else {
				args = append(args, osc.String(tok))
			}
		}
	}
	return args
}

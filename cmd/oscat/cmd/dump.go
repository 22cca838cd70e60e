package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osckit/oscwire/osc"
	"github.com/osckit/oscwire/stream"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [FILE]",
	Short: "Decode raw packets and print them",
	Long: `Decode a single raw OSC packet from FILE (or stdin) and print it.
With --slip the input is treated as a SLIP-framed stream and every
frame is decoded and printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		if slip, _ := cmd.Flags().GetBool("slip"); slip {
			conn := stream.NewConn(struct {
				io.Reader
				io.Writer
			}{in, io.Discard}, options())
			for {
				msg, err := conn.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println(msg)
			}
		}

		data, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		msg, err := osc.Decode(data)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	dumpCmd.Flags().Bool("slip", false, "treat input as a SLIP-framed stream")
	rootCmd.AddCommand(dumpCmd)
}

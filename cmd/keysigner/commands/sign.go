package commands

import (
	"github.com/spf13/cobra"
)

// sign [path] <message>: print the tag of message. Without path the
// --keypair flag or configured keypair is used.
func signCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sign [path] <message>",
		Short: "Sign a message with the keypair",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathArgs, message := splitPath(args, 1)
			path, err := o.keypairPath(pathArgs)
			if err != nil {
				return err
			}
			kp, err := o.appCtx.Keypairs.Restore(path)
			if err != nil {
				return err
			}
			tag := o.appCtx.Keypairs.Sign(kp, []byte(message[0]))
			return o.printer(cmd.OutOrStdout()).signed(message[0], tag)
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

func fingerprintCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [path]",
		Short: "Print keypair fingerprint and public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := o.keypairPath(args)
			if err != nil {
				return err
			}
			kp, err := o.appCtx.Keypairs.Restore(path)
			if err != nil {
				return err
			}
			return o.printer(cmd.OutOrStdout()).keypair(path, o.appCtx.Keypairs.Fingerprint(kp), kp.PublicKey)
		},
	}
}

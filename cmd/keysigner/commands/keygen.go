package commands

import (
	"github.com/spf13/cobra"
)

func keygenCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen [path]",
		Short: "Generate a keypair and save it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := o.keypairPath(args)
			if err != nil {
				return err
			}
			svc := o.appCtx.Keypairs
			kp := svc.Generate()
			if err := svc.Save(kp, path); err != nil {
				return err
			}
			o.appCtx.Log.Info().Str("path", path).Str("fingerprint", svc.Fingerprint(kp).String()).Msg("keypair created")
			return o.printer(cmd.OutOrStdout()).keypair(path, svc.Fingerprint(kp), kp.PublicKey)
		},
	}
}

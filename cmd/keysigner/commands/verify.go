package commands

import (
	"github.com/spf13/cobra"

	kserrors "keysigner/internal/errors"
)

// verify [path] <message> <hex>: check a tag. Unlike the root command's
// --verify-signature, a mismatch is reported through the exit status.
func verifyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [path] <message> <signature-hex>",
		Short: "Verify a message signature with the keypair",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathArgs, rest := splitPath(args, 2)
			path, err := o.keypairPath(pathArgs)
			if err != nil {
				return err
			}
			kp, err := o.appCtx.Keypairs.Restore(path)
			if err != nil {
				return err
			}
			message, signature := rest[0], rest[1]
			tag, err := decodeSignature(signature)
			if err != nil {
				return err
			}
			ok := o.appCtx.Keypairs.Verify(kp, []byte(message), tag)
			if err := o.printer(cmd.OutOrStdout()).verified(message, signature, ok); err != nil {
				return err
			}
			if !ok {
				return kserrors.ErrVerificationFailed
			}
			return nil
		},
	}
}

package commands

import (
	"encoding/hex"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"keysigner/internal/app"
	"keysigner/internal/domain"
	kserrors "keysigner/internal/errors"
)

// options carries flag values and the wired app between the root command and
// its subcommands.
type options struct {
	v *viper.Viper

	configFile string
	passphrase string
	verbose    bool
	quiet      bool

	loadKeypair     string
	message         string
	verifySignature string
	save            string

	appCtx *app.Wire
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	o := &options{v: app.NewViper()}

	root := &cobra.Command{
		Use:   "keysigner",
		Short: "Generate keypairs and sign or verify messages with them",
		Long: `keysigner generates a 32-byte keypair, saves and restores it, and computes
deterministic tags over messages.

The tag is SHA-256(message || private key). It authenticates messages between
holders of the same keypair file; it is not a public-key signature and cannot
be checked with the public key alone.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runOneShot(cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", "", "config dir (default ~/.keysigner)")
	pf.StringVar(&o.configFile, "config", "", "config file (default $home/config.yaml)")
	pf.StringVarP(&o.passphrase, "passphrase", "p", "", "passphrase sealing the keypair file (\"-\" to prompt)")
	pf.StringP("keypair", "k", "", "keypair file used by subcommands")
	pf.StringP("output", "o", app.OutputText, "output format (text|json)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only log warnings and errors")
	for _, key := range []string{"home", "keypair", "output"} {
		_ = o.v.BindPFlag(key, pf.Lookup(key))
	}

	f := root.Flags()
	f.StringVarP(&o.loadKeypair, "load-keypair", "l", "", "path to the keypair file")
	f.StringVarP(&o.message, "message", "m", "", "message to sign")
	f.StringVar(&o.verifySignature, "verify-signature", "", "verify a signed message from a hex string")
	f.StringVarP(&o.save, "save", "s", "", "save the keypair to a file path")

	root.AddCommand(keygenCmd(o), fingerprintCmd(o), signCmd(o), verifyCmd(o))
	return root
}

// setup loads config, builds the logger and wires the app.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig(o.v, o.configFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, o.verbose, o.quiet, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	pass, err := resolvePassphrase(o.passphrase, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.appCtx = app.NewWire(cfg, logger, pass)
	return nil
}

// runOneShot restores or generates, optionally saves, then signs or verifies.
func (o *options) runOneShot(w io.Writer) error {
	svc := o.appCtx.Keypairs

	var kp domain.Keypair
	if o.loadKeypair == "" {
		kp = svc.Generate()
	} else {
		var err error
		if kp, err = svc.Restore(o.loadKeypair); err != nil {
			return err
		}
	}

	if o.save != "" {
		if err := svc.Save(kp, o.save); err != nil {
			return err
		}
	}

	if o.message == "" {
		return nil
	}
	msg := []byte(o.message)
	if o.verifySignature == "" {
		return o.printer(w).signed(o.message, svc.Sign(kp, msg))
	}
	tag, err := decodeSignature(o.verifySignature)
	if err != nil {
		return err
	}
	return o.printer(w).verified(o.message, o.verifySignature, svc.Verify(kp, msg, tag))
}

// keypairPath returns the positional path if given, else the configured one.
func (o *options) keypairPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if p := o.appCtx.Config.Keypair; p != "" {
		return p, nil
	}
	return "", kserrors.Wrap(kserrors.ErrEmptyValue, "no keypair path: pass one or use --keypair")
}

// splitPath separates an optional leading path from the n trailing operands.
func splitPath(args []string, n int) (pathArgs, rest []string) {
	if len(args) > n {
		return args[:1], args[1:]
	}
	return nil, args
}

func decodeSignature(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, kserrors.Wrapf(kserrors.Mark(kserrors.ErrInvalidSignature, err), "signature %q", s)
	}
	return b, nil
}

func (o *options) printer(w io.Writer) printer {
	return printer{w: w, format: o.appCtx.Config.Output}
}

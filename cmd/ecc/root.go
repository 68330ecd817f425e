package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecc/internal/config"
)

const (
	configFileFlag = "config"
	primeFlag      = "prime"
	aFlag          = "a"
	bFlag          = "b"
	verboseFlag    = "verbose"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type options struct {
	cfgFilePath string
	verbose     bool
	flags       config.Config
	conf        *config.Config
}

func GetRootCmd() *cobra.Command {
	opts := &options{}

	var rootCmd = &cobra.Command{
		Use:           "ecc",
		Short:         "Prime field and elliptic curve arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	setFlags(rootCmd, opts)

	rootCmd.AddCommand(getAddCommand(opts))
	rootCmd.AddCommand(getMulCommand(opts))
	rootCmd.AddCommand(getCheckCommand(opts))
	rootCmd.AddCommand(getVersionCommand())
	return rootCmd
}

func setFlags(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().StringVar(&opts.cfgFilePath, configFileFlag, "", "JSON file with the curve (prime, a, b)")
	cmd.PersistentFlags().Uint64Var(&opts.flags.Prime, primeFlag, 0, "field modulus")
	cmd.PersistentFlags().Uint64Var(&opts.flags.A, aFlag, 0, "curve coefficient a")
	cmd.PersistentFlags().Uint64Var(&opts.flags.B, bFlag, 0, "curve coefficient b")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, verboseFlag, "v", false, "enable debug logging")
}

// loadConfig merges the config file, if any, with flags set on the command
// line. Flags win.
func (o *options) loadConfig(cmd *cobra.Command) error {
	if o.verbose {
		log.SetLevel(log.DebugLevel)
	}

	conf := config.GetDefaultConfig()
	if o.cfgFilePath != "" {
		c, err := config.ConfigFromFile(o.cfgFilePath)
		if err != nil {
			return err
		}
		conf = c
	}

	flags := cmd.Flags()
	if flags.Changed(primeFlag) {
		conf.Prime = o.flags.Prime
	}
	if flags.Changed(aFlag) {
		conf.A = o.flags.A
	}
	if flags.Changed(bFlag) {
		conf.B = o.flags.B
	}
	if err := conf.VerifyRequired(); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prime": conf.Prime,
		"a":     conf.A,
		"b":     conf.B,
	}).Debug("curve loaded")
	o.conf = conf
	return nil
}

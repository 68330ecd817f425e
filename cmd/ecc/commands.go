package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecc/internal/config"
	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

func getAddCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add P Q",
		Short: "Add two curve points given as \"x,y\" or \"inf\"",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadConfig(cmd); err != nil {
				return err
			}
			p, err := opts.conf.ParsePoint(args[0])
			if err != nil {
				return err
			}
			q, err := opts.conf.ParsePoint(args[1])
			if err != nil {
				return err
			}

			r, err := p.Add(q)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"p": p, "q": q, "result": r}).Debug("add")
			fmt.Fprintln(cmd.OutOrStdout(), config.FormatPoint(r))
			return nil
		},
	}
}

func getMulCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mul P K",
		Short: "Multiply a curve point by a non-negative integer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadConfig(cmd); err != nil {
				return err
			}
			p, err := opts.conf.ParsePoint(args[0])
			if err != nil {
				return err
			}
			k, err := strconv.ParseUint(args[1], 0, 64)
			if err != nil {
				return fmt.Errorf("cannot parse coefficient %q: %w", args[1], err)
			}

			r, err := p.ScalarMul(k)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"p": p, "k": k, "result": r}).Debug("mul")
			fmt.Fprintln(cmd.OutOrStdout(), config.FormatPoint(r))
			return nil
		},
	}
}

func getCheckCommand(opts *options) *cobra.Command {
	var n uint64
	cmd := &cobra.Command{
		Use:   "check G Q",
		Short: "Check the group laws on the curve with generator G and a second point Q",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadConfig(cmd); err != nil {
				return err
			}
			g, err := opts.conf.ParsePoint(args[0])
			if err != nil {
				return err
			}
			q, err := opts.conf.ParsePoint(args[1])
			if err != nil {
				return err
			}
			curve, err := curves.NewWeierstrass(g)
			if err != nil {
				return err
			}

			if err := curves.CheckGroupLaws(curve, curve.Generator(), curves.WrapPoint(q), n); err != nil {
				log.WithFields(log.Fields{
					"curve": curve.Name(),
					"Error": err,
				}).Error("group law check failed")
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", curve.Name())
			return nil
		},
	}
	cmd.Flags().Uint64Var(&n, "n", 32, "check scalar multiplication for all k up to n")
	return cmd
}

func getVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Command to show current binary version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

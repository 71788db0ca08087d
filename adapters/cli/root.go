package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/satriahrh/buyer-hash/adapters/hasher"
	"github.com/satriahrh/buyer-hash/config"
	"github.com/satriahrh/buyer-hash/usecase"
	"github.com/satriahrh/buyer-hash/utils/log"
)

// NewRootCmd builds the command tree around v. Running it without a
// subcommand prints the reference demo.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "buyerhash",
		Short:         "Keccak-256 identifiers for buyer phone numbers and addresses",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlag(v, config.HasherBackendKey, cmd.Flags(), "backend")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, v)
		},
	}

	cmd.PersistentFlags().String("backend", hasher.Keccak256Backend,
		fmt.Sprintf("hashing backend, one of %v", hasher.Backends()))

	cmd.AddCommand(
		newDemoCmd(v),
		newPhoneCmd(v),
		newAddressCmd(v),
		newServeCmd(v),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd(config.New()).ExecuteContext(ctx)
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// bindFlag ties a parsed flag to a configuration key so the flag wins over
// the environment when set.
func bindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) error {
	if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
		return fmt.Errorf("binding --%s: %w", name, err)
	}
	return nil
}

// newService reads the configuration and wires the hashing use case.
func newService(v *viper.Viper) (*config.Config, *usecase.BuyerHashService, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	log.SetDebug(cfg.Debug)

	h, err := hasher.New(cfg.HasherBackend)
	if err != nil {
		return nil, nil, err
	}
	return cfg, usecase.NewBuyerHashService(h), nil
}

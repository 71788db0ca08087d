package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/satriahrh/buyer-hash/domain"
)

const (
	DemoPhoneNumber = "15555555555"
	DemoAddress     = "北京市朝阳区"
)

func newDemoCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Hash the reference phone number and address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, v)
		},
	}
}

func runDemo(cmd *cobra.Command, v *viper.Viper) error {
	_, svc, err := newService(v)
	if err != nil {
		return err
	}

	phoneHash, err := svc.HashPhoneNumber(DemoPhoneNumber)
	if err != nil {
		return err
	}
	addressHash, err := svc.HashAddress(DemoAddress)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "hash_phone_number: %s\n", phoneHash.Hex())
	fmt.Fprintf(out, "hash_address: %s\n", addressHash.Hex())
	return nil
}

func newPhoneCmd(v *viper.Viper) *cobra.Command {
	return newHashCmd(v, "phone <phone-number>", "Hash a buyer phone number", domain.PhoneNumberPurpose)
}

func newAddressCmd(v *viper.Viper) *cobra.Command {
	return newHashCmd(v, "address <address>", "Hash a buyer address", domain.AddressPurpose)
}

func newHashCmd(v *viper.Viper, use, short string, purpose domain.Purpose) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := newService(v)
			if err != nil {
				return err
			}
			d, err := svc.Digest(purpose, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Hex())
			return nil
		},
	}
}

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PlatariumNetwork/PlatariumCore/signer"
)

func newGenerateKeysCmd() *cobra.Command {
	var mnemonic, alphanumeric, path string
	var seedIndex uint32

	cmd := &cobra.Command{
		Use:   "generate-keys",
		Short: "Derive a key pair and print public/private/signature key hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mnemonic == "" || alphanumeric == "" {
				fmt.Fprintln(os.Stderr, "generate-keys: --mnemonic and --alphanumeric are required")
				os.Exit(exitValidationFail)
			}
			mainKey, err := signer.DeriveFromMnemonic(mnemonic, alphanumeric, seedIndex)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitCryptoFail)
			}
			derived, err := signer.DerivedKeyPair(mainKey)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitCryptoFail)
			}
			fmt.Printf("Public: %s\n", hex.EncodeToString(mainKey.Pub))
			fmt.Printf("Private: %s\n", hex.EncodeToString(mainKey.PrivBytes()))
			fmt.Printf("SignatureKey: %s\n", hex.EncodeToString(derived.Pub))
			return nil
		},
	}
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "mnemonic phrase")
	cmd.Flags().StringVar(&alphanumeric, "alphanumeric", "", "alphanumeric secret")
	cmd.Flags().Uint32Var(&seedIndex, "seed-index", 0, "account index")
	cmd.Flags().StringVar(&path, "path", "", "derivation path (informational only; no BIP32 support)")
	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PlatariumNetwork/PlatariumCore/signer"
)

func newGenerateMnemonicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-mnemonic",
		Short: "Print a fresh mnemonic and alphanumeric secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, alnum, err := signer.GenerateMnemonic()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitCryptoFail)
			}
			fmt.Printf("Mnemonic: %s\n", mnemonic)
			fmt.Printf("Alphanumeric: %s\n", alnum)
			return nil
		},
	}
}

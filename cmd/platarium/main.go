// Command platarium is the CLI surface for key generation, mnemonic
// generation, message signing, and signature verification. It is the
// external collaborator the core package is built to support: that
// functionality lives here, behind the signer package, never inside
// core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for the CLI commands.
const (
	exitOK               = 0
	exitValidationFail   = 1
	exitCryptoFail       = 2
	exitIOOrParseFail    = 3
)

func main() {
	root := &cobra.Command{
		Use:   "platarium",
		Short: "Platarium Core CLI: mnemonic/key generation and message signing",
	}
	root.AddCommand(
		newGenerateMnemonicCmd(),
		newGenerateKeysCmd(),
		newSignMessageCmd(),
		newVerifySignatureCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitIOOrParseFail)
	}
}

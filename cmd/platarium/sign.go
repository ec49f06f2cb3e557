package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PlatariumNetwork/PlatariumCore/signer"
)

func newSignMessageCmd() *cobra.Command {
	var message, mnemonic, alphanumeric string

	cmd := &cobra.Command{
		Use:   "sign-message",
		Short: "Hash and sign a JSON message with the main and derived keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" || mnemonic == "" || alphanumeric == "" {
				fmt.Fprintln(os.Stderr, "sign-message: --message, --mnemonic and --alphanumeric are required")
				os.Exit(exitValidationFail)
			}
			mainKey, err := signer.DeriveFromMnemonic(mnemonic, alphanumeric, 0)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitCryptoFail)
			}
			hash, sigMain, sigDerived, err := signer.SignMessage(mainKey, []byte(message))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitCryptoFail)
			}
			fmt.Printf("Hash: %s\n", hash)
			fmt.Printf("SignatureMain: %s\n", hex.EncodeToString(sigMain))
			fmt.Printf("SignatureDerived: %s\n", hex.EncodeToString(sigDerived))
			return nil
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "JSON message to sign")
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "mnemonic phrase")
	cmd.Flags().StringVar(&alphanumeric, "alphanumeric", "", "alphanumeric secret")
	return cmd
}

func newVerifySignatureCmd() *cobra.Command {
	var message, signatureHex, pubkeyHex string

	cmd := &cobra.Command{
		Use:   "verify-signature",
		Short: "Verify a signature over a JSON message against a public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := hex.DecodeString(signatureHex)
			if err != nil {
				fmt.Fprintln(os.Stderr, "verify-signature: invalid --signature hex")
				os.Exit(exitIOOrParseFail)
			}
			pub, err := hex.DecodeString(pubkeyHex)
			if err != nil {
				fmt.Fprintln(os.Stderr, "verify-signature: invalid --pubkey hex")
				os.Exit(exitIOOrParseFail)
			}
			domainMsg := append([]byte(signer.MessageDomainPrefix), []byte(message)...)
			ok := signer.Secp256k1Verifier{}.Verify(sig, domainMsg, pub)
			if !ok {
				os.Exit(exitCryptoFail)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "JSON message that was signed")
	cmd.Flags().StringVar(&signatureHex, "signature", "", "hex-encoded signature")
	cmd.Flags().StringVar(&pubkeyHex, "pubkey", "", "hex-encoded public key")
	return cmd
}

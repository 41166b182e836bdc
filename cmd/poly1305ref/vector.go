package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"golang.zx2c4.com/poly1305ref/internal/xvector"
)

func newVectorCmd() *cobra.Command {
	var keyHex, nonceHex, plaintextHex string
	var counter uint32
	var variant bool

	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Emit a ChaCha20(+Poly1305)-paired AEAD-shaped test vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := decodeKey(keyHex)
			if err != nil {
				return err
			}
			nonce, err := hex.DecodeString(nonceHex)
			if err != nil {
				return fmt.Errorf("invalid nonce hex: %w", err)
			}
			plaintext, err := decodeMsg(plaintextHex)
			if err != nil {
				return err
			}

			v, err := xvector.BuildVector(key, nonce, counter, plaintext, variant)
			if err != nil {
				return err
			}

			fmt.Printf("ciphertext: %x\n", v.Ciphertext)
			fmt.Printf("tag:        %x\n", v.Tag)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "32-byte key, hex-encoded (64 chars)")
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "nonce, hex-encoded (12 bytes standard, 16 bytes with --variant)")
	cmd.Flags().StringVar(&plaintextHex, "plaintext", "", "plaintext, hex-encoded")
	cmd.Flags().Uint32Var(&counter, "counter", 0, "initial block counter")
	cmd.Flags().BoolVar(&variant, "variant", false, "use the 24-round/16-byte-nonce experimental keystream")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("nonce")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.zx2c4.com/poly1305ref/internal/poly1305"
	"golang.zx2c4.com/poly1305ref/internal/xvector"
)

func newVerifyCmd() *cobra.Command {
	var keyHex, msgHex string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compute the tag with the core and an independent oracle, and compare",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := decodeKey(keyHex)
			if err != nil {
				return err
			}
			msg, err := decodeMsg(msgHex)
			if err != nil {
				return err
			}

			var mac [16]byte
			poly1305.Sum(&mac, msg, key)

			oracle := xvector.Oracle(key, msg)
			agree := xvector.Agrees(mac, key, msg)

			fmt.Printf("core:   %x\n", mac)
			fmt.Printf("oracle: %x\n", oracle)
			if agree {
				fmt.Println("agree")
				return nil
			}
			return fmt.Errorf("disagreement between core and oracle tags")
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "32-byte key, hex-encoded (64 chars)")
	cmd.Flags().StringVar(&msgHex, "msg", "", "message, hex-encoded")
	cmd.MarkFlagRequired("key")

	return cmd
}

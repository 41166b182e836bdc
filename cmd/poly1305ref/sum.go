package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.zx2c4.com/poly1305ref/internal/poly1305"
)

func newSumCmd() *cobra.Command {
	var keyHex, msgHex string

	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Compute the one-shot Poly1305 tag of a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := decodeKey(keyHex)
			if err != nil {
				return err
			}
			msg, err := decodeMsg(msgHex)
			if err != nil {
				return err
			}

			var ctx poly1305.Context
			ctx.Init(key)
			tracedWrite(&ctx, msg)
			var mac [16]byte
			ctx.Sum(&mac)

			fmt.Printf("%x\n", mac)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "32-byte key, hex-encoded (64 chars)")
	cmd.Flags().StringVar(&msgHex, "msg", "", "message, hex-encoded")
	cmd.MarkFlagRequired("key")

	return cmd
}

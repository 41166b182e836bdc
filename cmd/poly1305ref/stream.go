package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.zx2c4.com/poly1305ref/internal/poly1305"
)

func newStreamCmd() *cobra.Command {
	var keyHex, chunksCSV string

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Drive the incremental interface across an explicit chunk split",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := decodeKey(keyHex)
			if err != nil {
				return err
			}

			var ctx poly1305.Context
			ctx.Init(key)

			for i, part := range strings.Split(chunksCSV, ",") {
				if part == "" {
					continue
				}
				chunk, err := decodeMsg(part)
				if err != nil {
					return fmt.Errorf("chunk %d: %w", i, err)
				}
				tracedWrite(&ctx, chunk)
			}

			var mac [16]byte
			ctx.Sum(&mac)
			fmt.Printf("%x\n", mac)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "32-byte key, hex-encoded (64 chars)")
	cmd.Flags().StringVar(&chunksCSV, "chunks", "", "comma-separated hex chunks, fed one Write call at a time")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("chunks")

	return cmd
}

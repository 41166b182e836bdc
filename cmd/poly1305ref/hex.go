package main

import (
	"encoding/hex"
	"fmt"
)

func decodeKey(s string) (*[32]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid key hex: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes (64 hex chars), got %d bytes", len(b))
	}
	var key [32]byte
	copy(key[:], b)
	return &key, nil
}

func decodeMsg(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid message hex: %w", err)
	}
	return b, nil
}

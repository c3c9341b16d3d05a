package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/neumenon/glyph/internal/canon"
	"github.com/neumenon/glyph/internal/value"
)

func runId(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: glyph id <prefix>")
	}
	prefix := args[0]
	id := value.NewId(prefix, uuid.New().String())
	fmt.Println(canon.Encode(id, canon.Default()))
	return nil
}

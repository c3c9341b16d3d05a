package main

import (
	"fmt"

	"github.com/neumenon/glyph/internal/fingerprint"
)

func runHash(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: glyph hash <file.json>")
	}
	v, err := loadValue(args[0])
	if err != nil {
		return err
	}
	fmt.Println(fingerprint.Hash(v))
	return nil
}

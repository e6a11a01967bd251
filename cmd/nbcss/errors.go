package main

import (
	"errors"
	"fmt"
	"strings"
)

// CLI errors.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrEnvConfig   = errors.New("invalid environment variable")
	ErrWriteOutput = errors.New("failed to write output")
)

func errUnexpectedArgs(args []string) error {
	return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(args, " "))
}

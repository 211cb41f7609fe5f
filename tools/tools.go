//go:build tools

// Package tools pins code generation binaries in go.mod.
package tools

import (
	_ "github.com/vektra/mockery/v2"
)

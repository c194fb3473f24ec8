//go:build tools

// Package tools pins the formatters and the mock generator used by the main module.
package tools

import (
	_ "github.com/daixiang0/gci"
	_ "github.com/golang/mock/mockgen"
	_ "mvdan.cc/gofumpt"
)

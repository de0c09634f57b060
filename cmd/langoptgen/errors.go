package main

import "errors"

// Sentinel errors for command operations
var (
	ErrOutputRequired        = errors.New("output path is required")
	ErrModularAndBenignFlags = errors.New("--modular-only and --benign-only are mutually exclusive")
)

package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 10
)

// Valid snapshot formats.
var validFormats = []string{"json", "csv"}

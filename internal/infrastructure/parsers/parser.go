// Package parsers provides parsers for importing bank snapshots from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// Parser defines the interface for parsing bank snapshots.
type Parser interface {
	Parse(r io.Reader) ([]entities.BankSlot, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// Package gamedata loads the storage location catalog and the item
// composition table, either built in or from user supplied YAML files.
package gamedata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

//go:embed data/catalog.yaml
var builtinCatalog []byte

//go:embed data/items.yaml
var builtinItems []byte

type catalogFile struct {
	Locations []entities.StorageLocation `yaml:"locations"`
}

// LoadCatalog reads storage locations from path, or the built-in catalog
// when path is empty.
func LoadCatalog(path string) ([]entities.StorageLocation, error) {
	if path == "" {
		return ParseCatalog(bytes.NewReader(builtinCatalog))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	return ParseCatalog(f)
}

// ParseCatalog decodes a catalog document.
func ParseCatalog(r io.Reader) ([]entities.StorageLocation, error) {
	var doc catalogFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(doc.Locations) == 0 {
		return nil, errors.New("parsing catalog: no locations defined")
	}
	return doc.Locations, nil
}

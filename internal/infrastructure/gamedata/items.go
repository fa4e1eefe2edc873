package gamedata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

type itemsFile struct {
	Noted []struct {
		ID     int `yaml:"id"`
		Linked int `yaml:"linked"`
	} `yaml:"noted"`
	Placeholders []struct {
		ID       int `yaml:"id"`
		Template int `yaml:"template"`
	} `yaml:"placeholders"`
}

// ItemTable implements ports.ItemResolver from a static table.
type ItemTable struct {
	items map[int]entities.ItemComposition
}

// LoadItemTable reads the item composition table from path, or the
// built-in table when path is empty.
func LoadItemTable(path string) (*ItemTable, error) {
	if path == "" {
		return ParseItemTable(bytes.NewReader(builtinItems))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening items file: %w", err)
	}
	defer f.Close()

	return ParseItemTable(f)
}

// ParseItemTable decodes an item composition document.
func ParseItemTable(r io.Reader) (*ItemTable, error) {
	var doc itemsFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing items: %w", err)
	}

	table := &ItemTable{items: make(map[int]entities.ItemComposition, len(doc.Noted)+len(doc.Placeholders))}
	for _, n := range doc.Noted {
		if n.ID <= 0 || n.Linked <= 0 {
			return nil, fmt.Errorf("parsing items: noted entry %d links to %d", n.ID, n.Linked)
		}
		table.items[n.ID] = entities.ItemComposition{ID: n.ID, Noted: true, LinkedID: n.Linked}
	}
	for _, p := range doc.Placeholders {
		if _, ok := table.items[p.ID]; ok {
			return nil, fmt.Errorf("parsing items: id %d is both noted and a placeholder", p.ID)
		}
		table.items[p.ID] = entities.ItemComposition{ID: p.ID, Placeholder: true}
	}

	return table, nil
}

// Composition returns the composition of itemID. Unknown ids are plain items.
func (t *ItemTable) Composition(itemID int) entities.ItemComposition {
	if comp, ok := t.items[itemID]; ok {
		return comp
	}
	return entities.ItemComposition{ID: itemID}
}

// Len returns the number of known compositions.
func (t *ItemTable) Len() int {
	return len(t.items)
}

package services

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// reNumericToken matches a token made only of digits.
var reNumericToken = regexp.MustCompile(`^\d+$`)

// ExclusionList is the user's exclusion text together with the ids it
// resolves to. Values are immutable: edits return a new list.
type ExclusionList struct {
	catalog *Catalog
	tokens  []string
	set     *entities.ExclusionSet
}

// ParseExclusions parses comma-separated ids or item names into an
// ExclusionList. Names are matched against the catalog ignoring case and
// whitespace. Tokens that are neither numeric nor a known name are kept in
// the text but resolve to nothing.
func ParseExclusions(catalog *Catalog, text string) (*ExclusionList, error) {
	if !catalog.Ready() {
		return nil, ErrCatalogNotReady
	}
	return parseTokens(catalog, splitCSV(text)), nil
}

func parseTokens(catalog *Catalog, tokens []string) *ExclusionList {
	set := entities.NewExclusionSet()
	for _, token := range tokens {
		for _, id := range resolveToken(catalog, token) {
			set.Add(id)
		}
	}
	return &ExclusionList{
		catalog: catalog,
		tokens:  tokens,
		set:     set,
	}
}

// resolveToken returns the ids a single token stands for.
func resolveToken(catalog *Catalog, token string) []int {
	compact := stripSpaces(token)
	if compact == "" {
		return nil
	}

	if reNumericToken.MatchString(compact) {
		id, err := strconv.Atoi(compact)
		if err != nil {
			return nil
		}
		return []int{id}
	}

	locations, err := catalog.Locations()
	if err != nil {
		return nil
	}

	var ids []int
	for _, loc := range locations {
		for _, item := range loc.Items {
			if strings.EqualFold(compact, stripSpaces(item.Name)) {
				ids = append(ids, item.ItemID)
			}
		}
	}
	return ids
}

// splitCSV splits on commas, trims each token and drops empty ones.
func splitCSV(text string) []string {
	var tokens []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Set returns a copy of the resolved ids.
func (l *ExclusionList) Set() *entities.ExclusionSet {
	return l.set.Clone()
}

// Contains reports whether the item id is excluded.
func (l *ExclusionList) Contains(itemID int) bool {
	return l.set.Contains(itemID)
}

// Text returns the serialized exclusion text.
func (l *ExclusionList) Text() string {
	return strings.Join(l.tokens, ", ")
}

// Tokens returns a copy of the raw tokens.
func (l *ExclusionList) Tokens() []string {
	return append([]string(nil), l.tokens...)
}

// Unresolved returns tokens that did not resolve to any id.
func (l *ExclusionList) Unresolved() []string {
	var out []string
	for _, token := range l.tokens {
		if len(resolveToken(l.catalog, token)) == 0 {
			out = append(out, token)
		}
	}
	return out
}

// Add returns a list with itemID excluded. The item's catalog name is
// appended to the text, or its id when the name is unknown or would not
// parse back to exactly this item.
func (l *ExclusionList) Add(itemID int) *ExclusionList {
	if l.Contains(itemID) {
		return l
	}
	return parseTokens(l.catalog, append(l.Tokens(), l.tokenFor(itemID)))
}

func (l *ExclusionList) tokenFor(itemID int) string {
	name, ok := l.catalog.LookupName(itemID)
	if !ok || strings.Contains(name, ",") || !slices.Equal(resolveToken(l.catalog, name), []int{itemID}) {
		return strconv.Itoa(itemID)
	}
	return name
}

// Remove returns a list without itemID. Every token resolving to the id is
// dropped from the text.
func (l *ExclusionList) Remove(itemID int) *ExclusionList {
	if !l.Contains(itemID) {
		return l
	}
	kept := make([]string, 0, len(l.tokens))
	for _, token := range l.tokens {
		if slices.Contains(resolveToken(l.catalog, token), itemID) {
			continue
		}
		kept = append(kept, token)
	}
	return parseTokens(l.catalog, kept)
}

// Toggle flags or unflags itemID depending on whether it is currently
// excluded, and returns the new list with a change notification.
func (l *ExclusionList) Toggle(itemID int, currentlyExcluded bool) (*ExclusionList, entities.ExclusionChange) {
	name, _ := l.catalog.LookupName(itemID)
	change := entities.ExclusionChange{ItemID: itemID, Name: name}

	if currentlyExcluded {
		return l.Remove(itemID), change
	}
	change.Excluded = true
	return l.Add(itemID), change
}

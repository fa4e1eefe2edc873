package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// CSVParser parses a snapshot from CSV.
// Expected columns: id, quantity (any order, extra columns ignored).
type CSVParser struct{}

// Parse reads CSV from the reader and returns the slots.
func (p *CSVParser) Parse(r io.Reader) ([]entities.BankSlot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"id", "quantity"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to slots.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]entities.BankSlot, error) {
	var slots []entities.BankSlot
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		slot, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// parseRecord converts a CSV record to a slot.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (entities.BankSlot, error) {
	id, err := intColumn(record, colIndex, "id")
	if err != nil {
		return entities.BankSlot{}, fmt.Errorf("line %d: %w", lineNum, err)
	}
	qty, err := intColumn(record, colIndex, "quantity")
	if err != nil {
		return entities.BankSlot{}, fmt.Errorf("line %d: %w", lineNum, err)
	}
	return entities.BankSlot{ItemID: id, Quantity: qty}, nil
}

// intColumn parses a required integer column.
func intColumn(record []string, colIndex map[string]int, col string) (int, error) {
	raw := strings.TrimSpace(getColumn(record, colIndex, col))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", col, raw)
	}
	return v, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}

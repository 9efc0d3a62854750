package stations

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// LoadOptions controls how the station table is parsed
type LoadOptions struct {
	// Delimiter separates identifier and name. Defaults to ';'.
	Delimiter rune

	// SkipMalformed drops rows with fewer than two fields instead of failing.
	SkipMalformed bool
}

// DefaultLoadOptions returns the options for the semicolon table
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Delimiter: ';'}
}

// MalformedRowError reports a table row with fewer than two fields
type MalformedRowError struct {
	Line   int
	Fields []string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("station table line %d: want identifier and name, got %d field %q",
		e.Line, len(e.Fields), e.Fields)
}

// NewStationIndexFromBytes parses a station table held in memory
func NewStationIndexFromBytes(data []byte, opts LoadOptions) (*StationIndex, error) {
	return NewStationIndexFromReader(bytes.NewReader(data), opts)
}

// NewStationIndexFromReader parses a station table from r
func NewStationIndexFromReader(r io.Reader, opts LoadOptions) (*StationIndex, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ';'
	}
	csvr := csv.NewReader(r)
	csvr.Comma = opts.Delimiter
	csvr.FieldsPerRecord = -1

	s := NewStationIndex()
	first := true
	for {
		row, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)
		if first {
			row[0] = strings.TrimPrefix(row[0], utf8BOM)
			first = false
		}
		if len(row) < 2 {
			if opts.SkipMalformed {
				s.skipped++
				continue
			}
			return nil, &MalformedRowError{Line: line, Fields: row}
		}
		if row[1] == "" {
			// an empty name never matches a destination
			continue
		}
		s.Add(row[0], row[1])
	}
	return s, nil
}

package cards

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	cerrors "github.com/codeclub/cccards/pkg/errors"
)

// LoadFile reads a card CSV file and returns its entries in file order.
// See Load for the row contract.
func LoadFile(path string, delimiter rune) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.WrapInput(err, cerrors.ErrInputNotFound, "input CSV not found").
				WithContext("file", path).
				WithSuggestion("Check the file path and spelling")
		}
		return nil, cerrors.WrapInput(err, cerrors.ErrInputReadFailed, "cannot open input CSV").
			WithContext("file", path)
	}
	defer f.Close()

	return Load(f, path, delimiter)
}

// Load reads card entries from r. Each row must be of the form:
//
//	card text,weight
//
// where 'card text' is the label to appear on the card and 'weight' is the
// number of copies of that card in the deck. A missing or blank weight
// column defaults to 1. There is no header row.
//
// The name is used in error context only. Parsing fails closed: a row with
// an empty label, or a weight that is not a positive integer, terminates
// the load with a validation error naming the file and 1-based row number.
func Load(r io.Reader, name string, delimiter rune) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	var entries []Entry
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				row = pe.Line
			}
			return nil, cerrors.WrapValidation(err, cerrors.ErrMalformedRow, "cannot parse CSV row").
				WithContext("file", name).
				WithContext("row", strconv.Itoa(row)).
				WithSuggestion("Check quoting and that the delimiter matches the file")
		}

		label := strings.TrimSpace(record[0])
		if label == "" {
			return nil, cerrors.ValidationError(cerrors.ErrMissingLabel, "row has no card label").
				WithContext("file", name).
				WithContext("row", strconv.Itoa(row))
		}

		weight, err := parseWeight(record)
		if err != nil {
			ce, _ := cerrors.AsCardsError(err)
			return nil, ce.
				WithContext("file", name).
				WithContext("row", strconv.Itoa(row))
		}

		entries = append(entries, Entry{Label: label, Weight: weight})
	}

	return entries, nil
}

// parseWeight extracts the weight column from a record.
// A missing or blank weight column defaults to 1; anything else must parse
// as a positive integer.
func parseWeight(record []string) (int, error) {
	if len(record) < 2 {
		return 1, nil
	}
	raw := strings.TrimSpace(record[1])
	if raw == "" {
		return 1, nil
	}

	weight, err := strconv.Atoi(raw)
	if err != nil {
		return 0, cerrors.WrapValidation(err, cerrors.ErrBadWeight, "weight is not a number").
			WithContext("weight", raw).
			WithSuggestion("Use a positive integer in the weight column, or leave it blank for 1")
	}
	if weight < 1 {
		return 0, cerrors.ValidationError(cerrors.ErrBadWeight, "weight must be at least 1").
			WithContext("weight", raw)
	}
	return weight, nil
}

package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one raw registration row before scoring. Fields mirror the
// signup form; everything not listed here (timestamps, contact details,
// unnamed spreadsheet columns) is dropped on read.
type Record struct {
	Name        string
	DOB         string
	Position    string
	Position2   string
	YearsExp    float64
	HistoryText string
}

// headerAliases maps the verbose form headings to canonical field names.
// Canonical names are accepted as-is so re-ingesting an exported file works.
var headerAliases = map[string]string{
	"full name":                 "name",
	"name":                      "name",
	"date of birth":             "dob",
	"dob":                       "dob",
	"primary playing position":  "position",
	"position":                  "position",
	"secondary playing position (optional)": "position_2",
	"position_2": "position_2",
	"years of competitive soccer experience": "years_exp",
	"years_exp": "years_exp",
	"please list your previous two competitive teams and the highest level you played (e.g., u17 premier, high school varsity)": "history_text",
	"history_text": "history_text",
}

// ReadCSV decodes registration rows from r. The first row must be a header.
// Unknown columns are ignored, which also covers the PII columns the form
// collects (email, phone, timestamp).
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("roster: read header: %w", err)
	}
	fields := make(map[int]string, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := headerAliases[key]; ok {
			fields[i] = canonical
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("roster: no recognized columns in header %v", header)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("roster: read row: %w", err)
		}
		var rec Record
		for i, cell := range row {
			name, ok := fields[i]
			if !ok {
				continue
			}
			cell = strings.TrimSpace(cell)
			switch name {
			case "name":
				rec.Name = cell
			case "dob":
				rec.DOB = cell
			case "position":
				rec.Position = cell
			case "position_2":
				rec.Position2 = cell
			case "years_exp":
				if cell != "" {
					if v, err := strconv.ParseFloat(cell, 64); err == nil {
						rec.YearsExp = v
					}
				}
			case "history_text":
				rec.HistoryText = cell
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

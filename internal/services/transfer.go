package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lehmann314159/vokab/internal/models"
)

// listSeparator joins list cells in CSV files
const listSeparator = ";"

var csvHeader = []string{"name", "meaning", "origin", "pronunciation", "synonyms", "antonyms", "usage_examples"}

// ImportJSON reads a JSON array of words and inserts them as one batch
func (s *WordService) ImportJSON(ctx context.Context, r io.Reader) ([]*models.Word, error) {
	var reqs []*models.WordRequest
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return s.CreateMany(ctx, reqs)
}

// ImportCSV reads words from CSV and inserts them as one batch. Any bad
// row aborts the import before anything is written.
func (s *WordService) ImportCSV(ctx context.Context, r io.Reader) ([]*models.Word, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"name", "meaning"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	cell := func(record []string, col string) string {
		idx, ok := colIndex[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var reqs []*models.WordRequest
	lineNum := 1 // header

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		req := &models.WordRequest{
			Name:          cell(record, "name"),
			Meaning:       cell(record, "meaning"),
			Synonyms:      splitList(cell(record, "synonyms")),
			Antonyms:      splitList(cell(record, "antonyms")),
			UsageExamples: splitList(cell(record, "usage_examples")),
		}
		if val := cell(record, "origin"); val != "" {
			req.Origin = &val
		}
		if val := cell(record, "pronunciation"); val != "" {
			req.Pronunciation = &val
		}

		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		reqs = append(reqs, req)
	}

	return s.CreateMany(ctx, reqs)
}

// ExportCSV writes all words, sorted by name, in the import layout
func (s *WordService) ExportCSV(ctx context.Context, w io.Writer) error {
	words, err := s.repo.List(ctx, models.ListOptions{SortByName: true})
	if err != nil {
		return fmt.Errorf("failed to fetch words: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, word := range words {
		record := []string{
			word.Name,
			word.Meaning,
			deref(word.Origin),
			deref(word.Pronunciation),
			strings.Join(word.Synonyms, listSeparator),
			strings.Join(word.Antonyms, listSeparator),
			strings.Join(word.UsageExamples, listSeparator),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

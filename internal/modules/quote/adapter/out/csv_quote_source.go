package out

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pomo/internal/modules/quote/domain"
	quoteout "pomo/internal/modules/quote/port/out"
)

const (
	quoteColumn  = "quote"
	authorColumn = "author"
)

type CSVQuoteSource struct {
	path string
}

func NewCSVQuoteSource(path string) quoteout.QuoteSource {
	return &CSVQuoteSource{path: path}
}

func (s *CSVQuoteSource) Load(_ context.Context) ([]domain.Quote, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open quotes: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read quotes header: empty file")
		}
		return nil, fmt.Errorf("read quotes header: %w", err)
	}
	quoteIdx, authorIdx := -1, -1
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch name {
		case quoteColumn:
			quoteIdx = i
		case authorColumn:
			authorIdx = i
		}
	}
	if quoteIdx < 0 || authorIdx < 0 {
		return nil, fmt.Errorf("read quotes header: columns %q and %q are required", "Quote", "Author")
	}

	out := []domain.Quote{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read quotes row: %w", err)
		}
		q := domain.Quote{Text: field(row, quoteIdx), Author: field(row, authorIdx)}
		if q.Validate() != nil {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

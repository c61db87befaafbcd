package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/mkleven/osloplan"
	"github.com/xuri/excelize/v2"
)

const (
	documentsSheet  = "Documents"
	statisticsSheet = "Statistics"
)

// WriteExcel writes the documents and statistics as an xlsx workbook with
// a Documents sheet and a Statistics sheet.
func WriteExcel(w io.Writer, docs []*osloplan.Document, stats *osloplan.Statistics) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", documentsSheet); err != nil {
		return fmt.Errorf("failed to create documents sheet: %w", err)
	}

	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(documentsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, doc := range docs {
		record := csvRecord(doc)
		row := make([]any, len(record))
		for j, v := range record {
			row[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(documentsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %q: %w", doc.Title, err)
		}
	}

	if err := writeStatisticsSheet(f, stats); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeStatisticsSheet(f *excelize.File, stats *osloplan.Statistics) error {
	if _, err := f.NewSheet(statisticsSheet); err != nil {
		return fmt.Errorf("failed to create statistics sheet: %w", err)
	}

	rows := [][]any{
		{"metric", "value"},
		{"total documents", stats.Total},
		{"completion percent", stats.CompletionPercent},
	}
	for _, key := range sortedKeys(stats.ByCategory) {
		rows = append(rows, []any{"category: " + key, stats.ByCategory[key]})
	}
	for _, key := range sortedKeys(stats.ByStatus) {
		rows = append(rows, []any{"status: " + key, stats.ByStatus[key]})
	}

	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(statisticsSheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write statistics row: %w", err)
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

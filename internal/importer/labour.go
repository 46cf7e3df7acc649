package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tableforge/tableforge/internal/model"
)

// LabourImportResult holds the results of a labour schedule import.
type LabourImportResult struct {
	Rules    []model.LabourRule
	Errors   []string
	Warnings []string
}

// ImportLabourCSV imports labour rules from a CSV file with columns
// label, basis, rate, applies (header optional, positional fallback).
func ImportLabourCSV(path string) LabourImportResult {
	result := LabourImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	startRow := 0
	if looksLikeLabourHeader(rows[0]) {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("Line %d", i+1)

		label := getCell(row, 0)
		if label == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing rule label", rowLabel))
			continue
		}

		basis, ok := parseBasis(getCell(row, 1))
		if !ok {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: Unknown cost basis %q", rowLabel, getCell(row, 1)))
			continue
		}

		rate, err := strconv.ParseFloat(getCell(row, 2), 64)
		if err != nil || rate < 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: Invalid rate %q", rowLabel, getCell(row, 2)))
			continue
		}

		applies, ok := parseEdgeProfile(getCell(row, 3))
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: Unknown edge profile %q, defaulting to Any", rowLabel, getCell(row, 3)))
			applies = model.EdgeAny
		}

		result.Rules = append(result.Rules, model.NewLabourRule(label, basis, rate, applies))
	}

	return result
}

// looksLikeLabourHeader reports whether the first row names columns rather
// than holding data (a non-numeric rate cell is the tell).
func looksLikeLabourHeader(row []string) bool {
	rate := getCell(row, 2)
	if rate == "" {
		return false
	}
	_, err := strconv.ParseFloat(rate, 64)
	return err != nil
}

// parseBasis converts a cost-basis string to a model.CostBasis value.
func parseBasis(s string) (model.CostBasis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge", "per edge", "per-edge-length", "edge length", "per edge metre", "metre", "m":
		return model.PerEdgeLength, true
	case "area", "per area", "per-area", "per m2", "m2", "sqm":
		return model.PerArea, true
	case "table", "per table", "per-table", "piece", "per piece":
		return model.PerTable, true
	case "order", "per order", "per-order", "flat", "setup":
		return model.PerOrder, true
	default:
		return model.PerEdgeLength, false
	}
}

// parseEdgeProfile converts an edge-profile string to its filter value.
func parseEdgeProfile(s string) (model.EdgeProfile, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "all", "-":
		return model.EdgeAny, true
	case "square", "abs", "banded", "square (abs banded)":
		return model.EdgeSquare, true
	case "bevel", "painted", "painted bevel":
		return model.EdgeBevel, true
	default:
		return model.EdgeAny, false
	}
}

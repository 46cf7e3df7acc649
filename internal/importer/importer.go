// Package importer provides CSV, Excel, and DXF import for catalog data and
// custom outlines. CSV import supports automatic delimiter detection,
// flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tableforge/tableforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// CatalogImportResult holds the results of a material catalog import.
// Rows sharing a material name merge into one entry with multiple
// thickness records.
type CatalogImportResult struct {
	Materials []model.MaterialCatalogEntry
	Errors    []string
	Warnings  []string
}

// materialColumns maps semantic column roles to their indices in the data.
type materialColumns struct {
	Name      int
	Family    int
	Finish    int
	Thickness int
	MaxLength int
	MaxWidth  int
	Rate      int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":      {"name", "material", "material name", "label", "description"},
	"family":    {"family", "type", "category", "substrate"},
	"finish":    {"finish", "surface", "face", "veneer"},
	"thickness": {"thickness", "thickness mm", "thk", "t"},
	"maxlength": {"max length", "maxlength", "sheet length", "length", "len", "l"},
	"maxwidth":  {"max width", "maxwidth", "sheet width", "width", "w"},
	"rate":      {"rate", "rate per sqm", "price", "price per sqm", "cost", "rate/m2", "rate per m2"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// producing the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// detectMaterialColumns examines a header row and returns the column mapping.
// It performs case-insensitive matching against known aliases for each role.
// Returns the mapping and true if a header was detected, or a default
// positional mapping and false if no header was found.
func detectMaterialColumns(row []string) (materialColumns, bool) {
	mapping := materialColumns{
		Name: -1, Family: -1, Finish: -1,
		Thickness: -1, MaxLength: -1, MaxWidth: -1, Rate: -1,
	}

	isHeader := false
	assign := func(dst *int, i int) {
		isHeader = true
		if *dst == -1 {
			*dst = i
		}
	}

	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				switch role {
				case "name":
					assign(&mapping.Name, i)
				case "family":
					assign(&mapping.Family, i)
				case "finish":
					assign(&mapping.Finish, i)
				case "thickness":
					assign(&mapping.Thickness, i)
				case "maxlength":
					assign(&mapping.MaxLength, i)
				case "maxwidth":
					assign(&mapping.MaxWidth, i)
				case "rate":
					assign(&mapping.Rate, i)
				}
			}
		}
	}

	if !isHeader {
		// Positional fallback: Name, Family, Finish, Thickness, MaxLength, MaxWidth, Rate
		return materialColumns{
			Name: 0, Family: 1, Finish: 2,
			Thickness: 3, MaxLength: 4, MaxWidth: 5, Rate: 6,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportMaterialsCSV imports material catalog entries from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportMaterialsCSV(path string) CatalogImportResult {
	result := CatalogImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importMaterialsFromRows(records, "Line", result.Warnings)
}

// ImportMaterialsExcel imports material catalog entries from an Excel
// (.xlsx) file. Reads the first sheet and auto-detects the column mapping
// from headers.
func ImportMaterialsExcel(path string) CatalogImportResult {
	result := CatalogImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importMaterialsFromRows(rows, "Row", nil)
}

// importMaterialsFromRows is the shared import logic for CSV and Excel data.
func importMaterialsFromRows(rows [][]string, rowPrefix string, initialWarnings []string) CatalogImportResult {
	result := CatalogImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := detectMaterialColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Name == -1 {
			missing = append(missing, "Name")
		}
		if mapping.Thickness == -1 {
			missing = append(missing, "Thickness")
		}
		if mapping.MaxLength == -1 {
			missing = append(missing, "Max Length")
		}
		if mapping.MaxWidth == -1 {
			missing = append(missing, "Max Width")
		}
		if mapping.Rate == -1 {
			missing = append(missing, "Rate")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	// Entries are keyed by name so multiple thickness rows merge.
	byName := map[string]int{}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		name := getCell(row, mapping.Name)
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing material name", rowLabel))
			continue
		}

		thickness, err := parsePositiveFloat(getCell(row, mapping.Thickness))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid thickness: %v", rowLabel, err))
			continue
		}
		maxLen, err := parsePositiveFloat(getCell(row, mapping.MaxLength))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid max length: %v", rowLabel, err))
			continue
		}
		maxWid, err := parsePositiveFloat(getCell(row, mapping.MaxWidth))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid max width: %v", rowLabel, err))
			continue
		}
		rate, err := parsePositiveFloat(getCell(row, mapping.Rate))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid rate: %v", rowLabel, err))
			continue
		}

		rec := model.ThicknessRecord{ThicknessMM: thickness, MaxLengthMM: maxLen, MaxWidthMM: maxWid}

		if idx, ok := byName[name]; ok {
			entry := &result.Materials[idx]
			entry.Thicknesses = append(entry.Thicknesses, rec)
			if entry.RatePerSqm != rate {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: Rate %.2f differs from earlier rows for %q, keeping first", rowLabel, rate, name))
			}
			continue
		}

		entry := model.NewMaterialCatalogEntry(
			name,
			getCell(row, mapping.Family),
			getCell(row, mapping.Finish),
			rate,
			[]model.ThicknessRecord{rec},
		)
		byName[name] = len(result.Materials)
		result.Materials = append(result.Materials, entry)
	}

	return result
}

// parsePositiveFloat parses a strictly positive float from a cell value.
func parsePositiveFloat(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive: %v", v)
	}
	return v, nil
}

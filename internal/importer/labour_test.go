package importer

import (
	"strings"
	"testing"

	"github.com/tableforge/tableforge/internal/model"
)

func TestImportLabourCSV(t *testing.T) {
	csvData := `Label,Basis,Rate,Applies
CNC cutting,edge,4.20,any
ABS edge banding,per edge metre,6.80,square
Sanding,area,9.00,
Handling,per table,7.50,any
Job setup,order,35.00,any
`
	path := writeTempFile(t, "labour.csv", csvData)
	result := ImportLabourCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rules) != 5 {
		t.Fatalf("expected 5 rules, got %d", len(result.Rules))
	}

	byLabel := map[string]model.LabourRule{}
	for _, r := range result.Rules {
		byLabel[r.Label] = r
	}

	if byLabel["CNC cutting"].Basis != model.PerEdgeLength {
		t.Errorf("expected per-edge basis, got %v", byLabel["CNC cutting"].Basis)
	}
	if byLabel["ABS edge banding"].Applies != model.EdgeSquare {
		t.Errorf("expected square edge filter, got %v", byLabel["ABS edge banding"].Applies)
	}
	if byLabel["Sanding"].Applies != model.EdgeAny {
		t.Errorf("blank applies column should default to Any, got %v", byLabel["Sanding"].Applies)
	}
	if byLabel["Job setup"].Basis != model.PerOrder {
		t.Errorf("expected per-order basis, got %v", byLabel["Job setup"].Basis)
	}
	if byLabel["Handling"].ID == "" {
		t.Error("imported rules should get generated IDs")
	}
}

func TestImportLabourCSVWithoutHeader(t *testing.T) {
	csvData := "CNC cutting,edge,4.20,any\n"
	path := writeTempFile(t, "noheader.csv", csvData)
	result := ImportLabourCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(result.Rules))
	}
}

func TestImportLabourCSVBadRows(t *testing.T) {
	csvData := `Label,Basis,Rate,Applies
,edge,4.20,any
CNC cutting,nonsense,4.20,any
CNC cutting,edge,notanumber,any
Sanding,area,9.00,martian
`
	path := writeTempFile(t, "bad.csv", csvData)
	result := ImportLabourCSV(path)

	if len(result.Errors) != 3 {
		t.Errorf("expected 3 row errors, got %d: %v", len(result.Errors), result.Errors)
	}
	// The unknown edge profile imports with a warning, not an error.
	if len(result.Rules) != 1 {
		t.Fatalf("expected 1 surviving rule, got %d", len(result.Rules))
	}
	if result.Rules[0].Applies != model.EdgeAny {
		t.Errorf("unknown edge profile should default to Any, got %v", result.Rules[0].Applies)
	}
	warned := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "martian") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected a warning naming the unknown profile, got %v", result.Warnings)
	}
}

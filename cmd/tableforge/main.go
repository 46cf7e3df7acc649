// TableForge — parametric tabletop pricing engine
//
// Computes a deterministic, quantity-aware cost breakdown for a parametric
// tabletop: built-in shape families or a custom DXF outline, priced against
// a material catalog and labour schedule.
//
// Build:
//   go build -o tableforge ./cmd/tableforge
//
// Examples:
//   tableforge -shape rectangle -length 2000 -width 900 -thickness 25 -qty 1
//   tableforge -shape round -length 1200 -material "Birch Plywood" -qty 4
//   tableforge -shape custom -dxf top.dxf -pdf quote.pdf
//   tableforge -load quote.json -qty 10

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tableforge/tableforge/internal/engine"
	"github.com/tableforge/tableforge/internal/export"
	"github.com/tableforge/tableforge/internal/geometry"
	"github.com/tableforge/tableforge/internal/importer"
	"github.com/tableforge/tableforge/internal/model"
	"github.com/tableforge/tableforge/internal/store"
)

func main() {
	var (
		shapeName = flag.String("shape", "rectangle", "shape: rectangle, rounded, dend, round, ellipse, superellipse, custom")
		length    = flag.Float64("length", 2000, "length in mm")
		width     = flag.Float64("width", 900, "width in mm")
		thickness = flag.Float64("thickness", 25, "thickness in mm")
		radius    = flag.Float64("radius", 0, "corner radius in mm (rounded rectangle)")
		exponent  = flag.Float64("exp", 2.5, "curvature exponent (super-ellipse, 1.5..8)")
		edgeName  = flag.String("edge", "square", "edge profile: square, bevel")
		qty       = flag.Int("qty", 1, "quantity")
		material  = flag.String("material", "MDF Raw", "material name from the catalog")
		profit    = flag.Float64("profit", -1, "profit percentage (default from app config)")
		dxfPath   = flag.String("dxf", "", "DXF file for a custom outline")
		loadPath  = flag.String("load", "", "load a saved quote JSON instead of building from flags")
		savePath  = flag.String("save", "", "save the priced quote to this JSON file")
		pdfPath   = flag.String("pdf", "", "write a specification PDF to this file")
		name      = flag.String("name", "Tabletop", "quote name")
	)
	flag.Parse()

	catalog, _, err := store.LoadOrCreateCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: catalog: %v (using defaults)\n", err)
		catalog = model.DefaultCatalog()
	}
	appCfg, err := loadAppConfig()
	if err != nil {
		appCfg = model.DefaultAppConfig()
	}
	if *profit < 0 {
		*profit = appCfg.DefaultProfitPercent
	}

	var quote model.Quote
	if *loadPath != "" {
		quote, err = store.LoadQuote(*loadPath)
		if err != nil {
			fatal(err)
		}
		if flagWasSet("qty") {
			quote.Config.Quantity = *qty
		}
	} else {
		quote, err = buildQuote(*name, *shapeName, *edgeName, *length, *width, *thickness, *radius, *exponent, *qty, *material, *profit, *dxfPath)
		if err != nil {
			fatal(err)
		}
	}

	snap, err := engine.PriceQuote(quote, catalog)
	if err != nil {
		fatal(err)
	}
	quote.Snapshot = &snap
	quote.Touch()

	printSnapshot(os.Stdout, quote, snap)

	if *savePath != "" {
		if err := store.SaveQuote(*savePath, quote); err != nil {
			fatal(err)
		}
		store.RememberQuote(&appCfg, *savePath)
		if path, err := store.DefaultAppConfigPath(); err == nil {
			if err := store.SaveAppConfig(path, appCfg); err != nil {
				fmt.Fprintf(os.Stderr, "warning: app config: %v\n", err)
			}
		}
		fmt.Printf("Saved quote to %s\n", *savePath)
	}

	if *pdfPath != "" {
		boundary, err := geometry.Generate(quote.Config, quote.Outline)
		if err != nil {
			fatal(err)
		}
		if err := export.ExportQuotePDF(*pdfPath, quote, boundary); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote specification PDF to %s\n", *pdfPath)
	}
}

// buildQuote assembles a quote from command-line parameters.
func buildQuote(name, shapeName, edgeName string, length, width, thickness, radius, exponent float64, qty int, material string, profit float64, dxfPath string) (model.Quote, error) {
	shape, err := parseShape(shapeName)
	if err != nil {
		return model.Quote{}, err
	}
	edge, err := parseEdge(edgeName)
	if err != nil {
		return model.Quote{}, err
	}

	cfg := model.NewTabletopConfiguration(shape, length, width, thickness, qty)
	cfg.CornerRadiusMM = radius
	cfg.SuperEllipseExp = exponent
	cfg.Edge = edge
	cfg.Normalize()

	quote := model.NewQuote(name, cfg, material, profit)

	if shape == model.Custom {
		if dxfPath == "" {
			return model.Quote{}, fmt.Errorf("custom shape requires -dxf")
		}
		result, err := importer.ImportDXF(dxfPath)
		if err != nil {
			return model.Quote{}, err
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "dxf: %s\n", w)
		}
		quote.Outline = &result.Outline
	}

	return quote, nil
}

// printSnapshot writes the costing breakdown as an aligned text table.
func printSnapshot(out *os.File, q model.Quote, snap model.CostingSnapshot) {
	fmt.Fprintf(out, "%s — %s, %.0f x %.0f x %.0f mm, %s, qty %d\n",
		q.Name, q.Config.Shape, q.Config.LengthMM, q.Config.WidthMM,
		q.Config.ThicknessMM, q.MaterialName, snap.Quantity)
	fmt.Fprintf(out, "Area %.3f m², edge length %.3f m\n", snap.AreaM2, snap.EdgeLengthM)
	if snap.HasMaterial() {
		fmt.Fprintf(out, "Sheet %.2f m², %d piece(s) per sheet, %d sheet(s) required\n",
			snap.SheetAreaM2, snap.PiecesPerSheet, snap.SheetsRequired)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if snap.HasMaterial() {
		fmt.Fprintf(w, "Material\t%d sheet(s)\t\t%.2f\n", snap.SheetsRequired, snap.MaterialCost)
	}
	for _, item := range snap.LabourItems {
		fmt.Fprintf(w, "%s\t%.3f\t%s @ %.2f\t%.2f\n", item.Label, item.BasisQty, item.Basis, item.Rate, item.Cost)
	}
	fmt.Fprintf(w, "Labour subtotal\t\t\t%.2f\n", snap.LabourTotal)
	fmt.Fprintf(w, "Base cost\t\t\t%.2f\n", snap.BaseCost)
	fmt.Fprintf(w, "Profit (%.1f%%)\t\t\t%.2f\n", snap.ProfitPercent, snap.Profit)
	fmt.Fprintf(w, "TOTAL\t\t\t%.2f\n", snap.Total)
	w.Flush()

	if snap.Approximate {
		fmt.Fprintln(out, "note: approximate figure (proportionally scaled, not fully re-costed)")
	}
}

func parseShape(s string) (model.ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle", "rect":
		return model.Rectangle, nil
	case "rounded", "rounded-rectangle", "roundedrect":
		return model.RoundedRect, nil
	case "dend", "d-end", "d":
		return model.DEnd, nil
	case "round", "circle":
		return model.Round, nil
	case "ellipse", "oval":
		return model.Ellipse, nil
	case "superellipse", "super-ellipse", "super":
		return model.SuperEllipse, nil
	case "custom", "dxf":
		return model.Custom, nil
	default:
		return model.Rectangle, fmt.Errorf("unknown shape %q", s)
	}
}

func parseEdge(s string) (model.EdgeProfile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "abs", "banded":
		return model.EdgeSquare, nil
	case "bevel", "painted", "painted-bevel":
		return model.EdgeBevel, nil
	default:
		return model.EdgeSquare, fmt.Errorf("unknown edge profile %q", s)
	}
}

func loadAppConfig() (model.AppConfig, error) {
	path, err := store.DefaultAppConfigPath()
	if err != nil {
		return model.AppConfig{}, err
	}
	return store.LoadAppConfig(path)
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

package render

import (
	"encoding/json"
	"fmt"

	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// Format constants for output artifacts.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "txt"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatText: true,
	FormatDOT:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, json, txt, dot, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options configures artifact rendering.
type Options struct {
	// Scale is the SVG resolution in pixels per metre.
	Scale float64
	// ShowScore includes per-room scores in labels.
	ShowScore bool
}

// Artifact renders the solution in the given format.
func Artifact(format string, sol plan.Solution, p plan.Plan, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(sol, p, opts), nil
	case FormatJSON:
		return RenderJSON(sol)
	case FormatText:
		return RenderText(sol, p), nil
	case FormatDOT:
		return []byte(ToDOT(sol, p)), nil
	case FormatPNG:
		return RenderGraphPNG(sol, p)
	default:
		return nil, ValidateFormat(format)
	}
}

// RenderJSON renders the solution document, indented for humans.
func RenderJSON(sol plan.Solution) ([]byte, error) {
	data, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

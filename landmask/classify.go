package landmask

import (
	"fmt"
	"strings"
)

// EvergreenBroadleaf is the Copernicus discrete-classification code the tree
// counts are trusted for. Fine-resolution tree pixels outside cells carrying
// this code are ignored.
const EvergreenBroadleaf uint16 = 111

// FilterWhereEqual zeroes counts wherever the companion categorical layer
// does not hold the required code, whatever the original count was.
func FilterWhereEqual(counts, companion *RasterLayer, code uint16) (*RasterLayer, error) {
	if !sameGeometry(counts.Grid, companion.Grid) {
		return nil, fmt.Errorf("%w: count layer is %dx%d, companion is %dx%d",
			ErrGridMismatch, counts.Grid.Cols, counts.Grid.Rows,
			companion.Grid.Cols, companion.Grid.Rows)
	}
	out := NewLayer(counts.Grid, 0)
	for i, v := range counts.Data {
		if companion.Data[i] == code {
			out.Data[i] = v
		}
	}
	return out, nil
}

// Profile selects a threshold tuple for the classification hierarchy.
type Profile int

const (
	Standard Profile = iota
	WaterHeavy
)

func (p Profile) String() string {
	if p == WaterHeavy {
		return "water heavy"
	}
	return "standard"
}

// Slug is the profile name in file-name form.
func (p Profile) Slug() string {
	return strings.ReplaceAll(p.String(), " ", "_")
}

// ParseProfiles resolves a case-insensitive selector into the profiles to
// run. "batch" expands to both profiles, in standard-first order.
func ParseProfiles(selector string) ([]Profile, error) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "standard":
		return []Profile{Standard}, nil
	case "water heavy":
		return []Profile{WaterHeavy}, nil
	case "batch":
		return []Profile{Standard, WaterHeavy}, nil
	}
	return nil, fmt.Errorf(`unknown mask type %q, choose "standard", "water heavy" or "batch"`, selector)
}

// thresholds for tree, urban majority, urban dense and water, in rule order.
// Counts are fine pixels per 3x3 coarse-to-fine window, so at most 9.
func (p Profile) thresholds() [4]uint16 {
	if p == WaterHeavy {
		return [4]uint16{6, 3, 7, 1}
	}
	return [4]uint16{6, 3, 7, 3}
}

// Rule assigns Code to every cell whose Source count is strictly greater
// than Threshold.
type Rule struct {
	Source    *RasterLayer
	Threshold uint16
	Code      uint16
}

// Rules builds the profile's ordered hierarchy over the three count layers.
// Later rules overwrite earlier ones, so a cell that is both majority and
// dense urban ends up dense, and a cell that is both tree and water ends up
// water. That precedence is part of the mask definition.
func (p Profile) Rules(treeCounts, urbanCounts, waterCounts *RasterLayer) []Rule {
	t := p.thresholds()
	return []Rule{
		{treeCounts, t[0], CodeTree},
		{urbanCounts, t[1], CodeUrbanMajority},
		{urbanCounts, t[2], CodeUrbanDense},
		{waterCounts, t[3], CodeWater},
	}
}

// Classify applies the rule hierarchy over the grid. Every cell starts as
// unclassified; each rule in turn overwrites the cells exceeding its
// threshold. The returned layer declares the nodata sentinel but never
// contains it.
func Classify(grid GridDescriptor, rules []Rule) (*RasterLayer, error) {
	out := NewLayer(grid, CodeUnclassified)
	for _, rule := range rules {
		if !sameGeometry(rule.Source.Grid, grid) {
			return nil, fmt.Errorf("%w: rule layer for code %d is %dx%d, want %dx%d",
				ErrGridMismatch, rule.Code,
				rule.Source.Grid.Cols, rule.Source.Grid.Rows, grid.Cols, grid.Rows)
		}
		for i, count := range rule.Source.Data {
			if count > rule.Threshold {
				out.Data[i] = rule.Code
			}
		}
	}
	noData := float64(NoDataValue)
	out.NoData = &noData
	return out, nil
}

// ClassLabel names an output class code for reporting.
func ClassLabel(code uint16) string {
	switch code {
	case CodeTree:
		return "tree"
	case CodeUrbanMajority:
		return "urban majority"
	case CodeUrbanDense:
		return "urban high density"
	case CodeWater:
		return "water"
	case CodeUnclassified:
		return "unclassified"
	}
	return fmt.Sprintf("unknown (%d)", code)
}

// ClassCodes lists every valid output code in rule order, unclassified last.
func ClassCodes() []uint16 {
	return []uint16{CodeTree, CodeUrbanMajority, CodeUrbanDense, CodeWater, CodeUnclassified}
}

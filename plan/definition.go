/*
Package plan implements the caller side of the growth engine: raw input
normalization and plan projection.

PURPOSE:
  The growth package only ever sees validated Segments and canonical
  PeriodKinds. Everything between raw caller input (HTTP bodies, YAML
  files, CLI flags) and that contract lives here:
  - period token canonicalization (ParsePeriod)
  - parallel-list broadcasting (one amount for many durations)
  - shape validation (ErrInputShapeMismatch before the core runs)

BROADCAST RULE:
  Durations drives the segment count. Amounts and Periods are each
  either a singleton (applied to every segment) or exactly one value
  per duration. Any other length is rejected before the core is
  invoked.

SEE ALSO:
  - project.go: composes the core operations into one result
  - growth package: the engine this package feeds
*/
package plan

import (
	"strings"

	"github.com/creasty/defaults"

	"github.com/warp/growth-engine/growth"
)

// =============================================================================
// PERIOD TOKEN PARSING
// =============================================================================

// periodTokens maps accepted spellings to canonical kinds. Localization
// of non-English tokens belongs to the presentation layer; by the time
// input reaches here it is one of these.
var periodTokens = map[string]growth.PeriodKind{
	"monthly":   growth.Monthly,
	"month":     growth.Monthly,
	"quarterly": growth.Quarterly,
	"quarter":   growth.Quarterly,
	"annually":  growth.Annually,
	"annual":    growth.Annually,
	"yearly":    growth.Annually,
	"year":      growth.Annually,
}

// ParsePeriod canonicalizes a period token. Matching is
// case-insensitive and whitespace-tolerant; anything outside the token
// table wraps growth.ErrInvalidPeriod.
func ParsePeriod(token string) (growth.PeriodKind, error) {
	kind, ok := periodTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return "", &growth.InvalidPeriodError{Token: token}
	}
	return kind, nil
}

// =============================================================================
// DEFINITION - Raw caller input before normalization
// =============================================================================

// Definition is the raw, possibly-sparse plan input as it arrives from
// a config file, CLI flags, or an API request. Normalize turns it into
// a fully-specified Plan or rejects it.
type Definition struct {
	InitialAmount    float64 `json:"initial_amount" yaml:"initial_amount"`
	ProfitPercentage float64 `json:"profit_percentage" yaml:"profit_percentage"`

	// ProfitPeriod is the period the profit percentage is stated over.
	ProfitPeriod string `json:"profit_period" yaml:"profit_period" default:"annually"`

	// Parallel segment lists. Durations drives the count; Amounts and
	// Periods broadcast when given as singletons.
	Durations []int     `json:"durations" yaml:"durations"`
	Amounts   []float64 `json:"amounts" yaml:"amounts"`
	Periods   []string  `json:"periods" yaml:"periods" default:"[\"monthly\"]"`
}

// =============================================================================
// PLAN - Fully-specified, validated input for the core
// =============================================================================

// Plan is a normalized Definition: canonical periods, one fully
// specified segment per duration. Immutable after Normalize.
type Plan struct {
	InitialAmount    float64
	ProfitPercentage float64
	ProfitPeriod     growth.PeriodKind
	Segments         []growth.Segment
}

// Normalize validates the definition's shape, applies defaults and the
// broadcast rule, and parses every period token. All input-shape errors
// surface here, before any core computation runs.
func Normalize(def Definition) (Plan, error) {
	if err := defaults.Set(&def); err != nil {
		return Plan{}, err
	}

	profitPeriod, err := ParsePeriod(def.ProfitPeriod)
	if err != nil {
		return Plan{}, err
	}

	n := len(def.Durations)
	if n == 0 {
		return Plan{}, growth.ErrEmptyPlan
	}

	amounts, err := broadcastFloats("amounts", def.Amounts, n)
	if err != nil {
		return Plan{}, err
	}
	cadences, err := broadcastStrings("periods", def.Periods, n)
	if err != nil {
		return Plan{}, err
	}

	segments := make([]growth.Segment, n)
	for i := range def.Durations {
		kind, err := ParsePeriod(cadences[i])
		if err != nil {
			return Plan{}, err
		}
		segments[i] = growth.Segment{
			DurationUnits: def.Durations[i],
			Amount:        amounts[i],
			Period:        kind,
		}
	}

	return Plan{
		InitialAmount:    def.InitialAmount,
		ProfitPercentage: def.ProfitPercentage,
		ProfitPeriod:     profitPeriod,
		Segments:         segments,
	}, nil
}

func broadcastFloats(field string, values []float64, n int) ([]float64, error) {
	switch len(values) {
	case n:
		return values, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	default:
		return nil, &growth.ShapeMismatchError{Field: field, Want: n, Got: len(values)}
	}
}

func broadcastStrings(field string, values []string, n int) ([]string, error) {
	switch len(values) {
	case n:
		return values, nil
	case 1:
		out := make([]string, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	default:
		return nil, &growth.ShapeMismatchError{Field: field, Want: n, Got: len(values)}
	}
}

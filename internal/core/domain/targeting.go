package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Share is one bucket of a percentage breakdown, e.g. {"18-24", 35}.
type Share struct {
	Key     string  `json:"key"`
	Percent float64 `json:"percent"`
}

// Shares is a percentage breakdown. Each bucket lies in [0,100] and the
// buckets sum to at most 100.
type Shares []Share

// Validate checks the percentage invariant of the breakdown.
func (s Shares) Validate(code string) error {
	total := decimal.Zero
	seen := make(map[string]struct{}, len(s))
	for _, b := range s {
		if b.Key == "" {
			return Validation(code, "share key must not be empty")
		}
		if _, dup := seen[b.Key]; dup {
			return Validation(code, "duplicate share key %q", b.Key)
		}
		seen[b.Key] = struct{}{}
		if b.Percent < 0 || b.Percent > 100 {
			return Validation(code, "share %q percent %v out of range [0,100]", b.Key, b.Percent)
		}
		total = total.Add(decimal.NewFromFloat(b.Percent))
	}
	if total.GreaterThan(decimal.NewFromInt(100)) {
		return Validation(code, "shares sum to %s, more than 100", total.String())
	}
	return nil
}

// Targeting describes who a campaign should reach.
type Targeting struct {
	AgeRanges Shares   `json:"age_ranges,omitempty"`
	Genders   Shares   `json:"genders,omitempty"`
	Geos      []string `json:"geos,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Validate enforces the percentage invariants of the breakdowns.
func (t Targeting) Validate() error {
	if err := t.AgeRanges.Validate("TARGETING_AGE_RANGES_INVALID"); err != nil {
		return err
	}
	return t.Genders.Validate("TARGETING_GENDERS_INVALID")
}

// Clone returns a deep copy so stored snapshots never share slices.
func (t Targeting) Clone() Targeting {
	return Targeting{
		AgeRanges: slices.Clone(t.AgeRanges),
		Genders:   slices.Clone(t.Genders),
		Geos:      slices.Clone(t.Geos),
		Languages: slices.Clone(t.Languages),
		Interests: slices.Clone(t.Interests),
	}
}

// Demographics describes the audience a platform reaches.
type Demographics struct {
	AgeRanges Shares   `json:"age_ranges,omitempty"`
	Genders   Shares   `json:"genders,omitempty"`
	TopGeos   []string `json:"top_geos,omitempty"`
}

// Validate enforces the percentage invariants of the breakdowns.
func (d Demographics) Validate() error {
	if err := d.AgeRanges.Validate("DEMOGRAPHICS_AGE_RANGES_INVALID"); err != nil {
		return err
	}
	return d.Genders.Validate("DEMOGRAPHICS_GENDERS_INVALID")
}

// Clone returns a deep copy.
func (d Demographics) Clone() Demographics {
	return Demographics{
		AgeRanges: slices.Clone(d.AgeRanges),
		Genders:   slices.Clone(d.Genders),
		TopGeos:   slices.Clone(d.TopGeos),
	}
}

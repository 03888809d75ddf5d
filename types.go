package clearlydefined

import (
	"encoding/json"
	"fmt"
)

// SchemaError reports a response score object missing a required numeric
// field. Score records are all-or-nothing: if the service sends one at
// all, every sub-score must be present.
type SchemaError struct {
	Record string
	Field  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s score missing required field %q", e.Record, e.Field)
}

// Defined is the aggregated definition record the service returns for a
// coordinate: provenance, license findings, per-file data, and scores.
type Defined struct {
	Coordinates Coordinates `json:"coordinates"`
	Described   *Described  `json:"described,omitempty"`
	Licensed    *Licensed   `json:"licensed,omitempty"`
	Files       []FileEntry `json:"files,omitempty"`
	Scores      FinalScores `json:"scores"`
	ID          string      `json:"_id,omitempty"`
	Meta        Meta        `json:"_meta"`
}

// Meta carries the schema version and update timestamp of a definition.
type Meta struct {
	SchemaVersion string `json:"schemaVersion"`
	Updated       string `json:"updated"`
}

// Described holds the provenance side of a definition: where the source
// lives, which tools have harvested it, and the describe scores.
// Optional scalars are pointers so a present-but-zero value decodes and
// re-encodes distinctly from an absent one.
type Described struct {
	Score          *DescribedScore `json:"score,omitempty"`
	ToolScore      *DescribedScore `json:"toolScore,omitempty"`
	SourceLocation *SourceLocation `json:"sourceLocation,omitempty"`
	URLs           *URLs           `json:"urls,omitempty"`
	ProjectWebsite *string         `json:"projectWebsite,omitempty"`
	IssueTracker   *string         `json:"issueTracker,omitempty"`
	ReleaseDate    *string         `json:"releaseDate,omitempty"`
	Hashes         *Hashes         `json:"hashes,omitempty"`
	Files          *int            `json:"files,omitempty"`
	Tools          []string        `json:"tools,omitempty"`
	Facets         *Facets         `json:"facets,omitempty"`
}

// HarvestStatus classifies how much tool output backs a definition.
type HarvestStatus string

const (
	NotHarvested       HarvestStatus = "not-harvested"
	PartiallyHarvested HarvestStatus = "partially-harvested"
	Harvested          HarvestStatus = "harvested"
)

// HarvestStatus derives the harvest state from the Tools list alone.
// Absent tools means nothing ran yet; the service considers a component
// fully harvested only once more than two tools have reported. The two-
// tool boundary is the upstream service's own convention.
func (d *Described) HarvestStatus() HarvestStatus {
	switch {
	case d == nil || d.Tools == nil:
		return NotHarvested
	case len(d.Tools) > 2:
		return Harvested
	default:
		return PartiallyHarvested
	}
}

// Licensed holds the license side of a definition.
type Licensed struct {
	Score     *LicensedScore `json:"score,omitempty"`
	ToolScore *LicensedScore `json:"toolScore,omitempty"`
	Declared  *string        `json:"declared,omitempty"`
	Facets    *Facets        `json:"facets,omitempty"`
}

// Facets splits findings across the service's fixed facet set.
type Facets struct {
	Core     *Facet `json:"core,omitempty"`
	Data     *Facet `json:"data,omitempty"`
	Dev      *Facet `json:"dev,omitempty"`
	Docs     *Facet `json:"docs,omitempty"`
	Examples *Facet `json:"examples,omitempty"`
	Tests    *Facet `json:"tests,omitempty"`
}

// Facet aggregates attribution and license discovery for one facet.
type Facet struct {
	Attribution *Attribution `json:"attribution,omitempty"`
	Discovered  *Discovered  `json:"discovered,omitempty"`
	Files       *int         `json:"files,omitempty"`
}

// Attribution lists the parties credited within a facet.
type Attribution struct {
	Parties []string `json:"parties,omitempty"`
	Unknown *int     `json:"unknown,omitempty"`
}

// Discovered lists the license expressions found within a facet.
type Discovered struct {
	Expressions []string `json:"expressions,omitempty"`
	Unknown     *int     `json:"unknown,omitempty"`
}

// URLs collects the service's pointers back to the registry.
type URLs struct {
	Registry string `json:"registry,omitempty"`
	Version  string `json:"version,omitempty"`
	Download string `json:"download,omitempty"`
}

// Hashes carries the content hashes the harvest recorded.
type Hashes struct {
	MD5    string `json:"md5,omitempty"`
	SHA1   string `json:"sha1,omitempty"`
	SHA256 string `json:"sha256,omitempty"`
	GitSHA string `json:"gitSha,omitempty"`
}

// FileEntry is one file's license, attribution, and hash data.
type FileEntry struct {
	Path         string   `json:"path,omitempty"`
	License      string   `json:"license,omitempty"`
	Attributions []string `json:"attributions,omitempty"`
	Facets       []string `json:"facets,omitempty"`
	Hashes       *Hashes  `json:"hashes,omitempty"`
	Token        string   `json:"token,omitempty"`
	Natures      []string `json:"natures,omitempty"`
}

// DescribedScore is the describe-side score breakdown. All fields are
// required when the record is present.
type DescribedScore struct {
	Total  int `json:"total"`
	Date   int `json:"date"`
	Source int `json:"source"`
}

func (s *DescribedScore) UnmarshalJSON(data []byte) error {
	var raw struct {
		Total  *int `json:"total"`
		Date   *int `json:"date"`
		Source *int `json:"source"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Total == nil {
		return &SchemaError{Record: "described", Field: "total"}
	}
	if raw.Date == nil {
		return &SchemaError{Record: "described", Field: "date"}
	}
	if raw.Source == nil {
		return &SchemaError{Record: "described", Field: "source"}
	}
	*s = DescribedScore{Total: *raw.Total, Date: *raw.Date, Source: *raw.Source}
	return nil
}

// LicensedScore is the license-side score breakdown. All fields are
// required when the record is present.
type LicensedScore struct {
	Total       int `json:"total"`
	Declared    int `json:"declared"`
	Discovered  int `json:"discovered"`
	Consistency int `json:"consistency"`
	SPDX        int `json:"spdx"`
	Texts       int `json:"texts"`
}

func (s *LicensedScore) UnmarshalJSON(data []byte) error {
	var raw struct {
		Total       *int `json:"total"`
		Declared    *int `json:"declared"`
		Discovered  *int `json:"discovered"`
		Consistency *int `json:"consistency"`
		SPDX        *int `json:"spdx"`
		Texts       *int `json:"texts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fields := []struct {
		name string
		val  *int
	}{
		{"total", raw.Total},
		{"declared", raw.Declared},
		{"discovered", raw.Discovered},
		{"consistency", raw.Consistency},
		{"spdx", raw.SPDX},
		{"texts", raw.Texts},
	}
	for _, f := range fields {
		if f.val == nil {
			return &SchemaError{Record: "licensed", Field: f.name}
		}
	}
	*s = LicensedScore{
		Total:       *raw.Total,
		Declared:    *raw.Declared,
		Discovered:  *raw.Discovered,
		Consistency: *raw.Consistency,
		SPDX:        *raw.SPDX,
		Texts:       *raw.Texts,
	}
	return nil
}

// FinalScores is the definition-level score summary. All fields are
// required when the record is present.
type FinalScores struct {
	Effective int `json:"effective"`
	Tool      int `json:"tool"`
}

func (s *FinalScores) UnmarshalJSON(data []byte) error {
	var raw struct {
		Effective *int `json:"effective"`
		Tool      *int `json:"tool"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Effective == nil {
		return &SchemaError{Record: "final", Field: "effective"}
	}
	if raw.Tool == nil {
		return &SchemaError{Record: "final", Field: "tool"}
	}
	*s = FinalScores{Effective: *raw.Effective, Tool: *raw.Tool}
	return nil
}

package upgrade

import (
	"github.com/o365cli/o365/internal/spfx/project"
)

// Severity tells how important it is to apply a finding.
type Severity string

const (
	SeverityRequired    Severity = "Required"
	SeverityRecommended Severity = "Recommended"
	SeverityOptional    Severity = "Optional"
)

// ResolutionType describes the content of a resolution.
type ResolutionType string

const (
	ResolutionCmd  ResolutionType = "cmd"
	ResolutionJSON ResolutionType = "json"
	ResolutionJS   ResolutionType = "js"
	ResolutionTS   ResolutionType = "ts"
)

// Position is a 1-based location in a file.
type Position = project.Position

// Occurrence is one place in the project a finding applies to.
type Occurrence struct {
	File       string
	Position   *Position
	Resolution string
}

// Finding is one change required to upgrade the project.
type Finding struct {
	ID             string
	Title          string
	Description    string
	Severity       Severity
	ResolutionType ResolutionType
	Resolution     string
	Supersedes     []string
	Occurrences    []Occurrence
}

// FindingToReport is one occurrence of a finding, ready to be rendered.
type FindingToReport struct {
	Description    string         `json:"description"`
	ID             string         `json:"id"`
	File           string         `json:"file"`
	Position       *Position      `json:"position,omitempty"`
	Resolution     string         `json:"resolution"`
	ResolutionType ResolutionType `json:"resolutionType"`
	Severity       Severity       `json:"severity"`
	Title          string         `json:"title"`
}

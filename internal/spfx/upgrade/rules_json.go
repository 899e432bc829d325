package upgrade

import (
	"fmt"
	"path"
	"strings"

	"github.com/o365cli/o365/internal/spfx/project"
)

// JSONPropertyRule checks a property of one of the project JSON documents.
// The rule does not apply when the document is absent.
type JSONPropertyRule struct {
	ruleInfo
	file     string
	path     []string
	expected interface{}
	mode     PropertyMode
}

// NewJSONPropertyRule creates a rule over the document stored at file (one of
// the project.*Path constants). propertyPath is dot separated.
func NewJSONPropertyRule(id, file, propertyPath string, expected interface{}, mode PropertyMode, severity Severity, description string) *JSONPropertyRule {
	return &JSONPropertyRule{
		ruleInfo: ruleInfo{
			id:          id,
			title:       fmt.Sprintf("%s %s", path.Base(file), propertyPath),
			description: description,
			severity:    severity,
		},
		file:     file,
		path:     strings.Split(propertyPath, "."),
		expected: expected,
		mode:     mode,
	}
}

// Supersedes marks the findings this rule makes obsolete.
func (r *JSONPropertyRule) Supersedes(ids ...string) *JSONPropertyRule {
	r.supersedes = append(r.supersedes, ids...)
	return r
}

func (r *JSONPropertyRule) Visit(p *project.Project) []Finding {
	doc := p.Document(r.file)
	if doc == nil {
		return nil
	}
	resolution, failed := checkProperty(doc.Data, r.path, r.expected, r.mode)
	if !failed {
		return nil
	}
	return r.finding(ResolutionJSON, Occurrence{File: r.file, Resolution: resolution})
}

// NewYoRcVersionRule updates the generator version recorded in .yo-rc.json.
func NewYoRcVersionRule(id, generatorVersion string) *JSONPropertyRule {
	r := NewJSONPropertyRule(id, project.YoRcJSONPath, "@microsoft/generator-sharepoint.version", generatorVersion,
		PropertySet, SeverityRecommended, "Update version in .yo-rc.json")
	r.title = ".yo-rc.json version"
	return r
}

package upgrade

import (
	"fmt"
	"strings"

	"github.com/o365cli/o365/internal/spfx/project"
)

// ManifestRule checks a property in every component manifest, optionally only
// those of one component type. All offending manifests are reported as
// occurrences of a single finding.
type ManifestRule struct {
	ruleInfo
	componentType string
	path          []string
	expected      interface{}
	mode          PropertyMode
}

func NewManifestRule(id, componentType, propertyPath string, expected interface{}, mode PropertyMode, severity Severity, description string) *ManifestRule {
	title := "manifest " + propertyPath
	if componentType != "" {
		title = fmt.Sprintf("%s manifest %s", componentType, propertyPath)
	}
	return &ManifestRule{
		ruleInfo: ruleInfo{
			id:          id,
			title:       title,
			description: description,
			severity:    severity,
		},
		componentType: componentType,
		path:          strings.Split(propertyPath, "."),
		expected:      expected,
		mode:          mode,
	}
}

func (r *ManifestRule) Visit(p *project.Project) []Finding {
	var occurrences []Occurrence
	for _, m := range p.Manifests {
		if r.componentType != "" && m.ComponentType != r.componentType {
			continue
		}
		resolution, failed := checkProperty(m.Data, r.path, r.expected, r.mode)
		if !failed {
			continue
		}
		occurrences = append(occurrences, Occurrence{File: m.RelPath, Resolution: resolution})
	}
	return r.finding(ResolutionJSON, occurrences...)
}

// FileRule requires a file to exist with the given content, or to be removed.
type FileRule struct {
	ruleInfo
	file           string
	remove         bool
	content        string
	resolutionType ResolutionType
}

// NewAddFileRule reports a missing file together with the content to create it with.
func NewAddFileRule(id, file string, resolutionType ResolutionType, content string, severity Severity) *FileRule {
	return &FileRule{
		ruleInfo: ruleInfo{
			id:          id,
			title:       file,
			description: fmt.Sprintf("Add file %s", file),
			severity:    severity,
		},
		file:           file,
		content:        content,
		resolutionType: resolutionType,
	}
}

// NewRemoveFileRule reports a file that is no longer used.
func NewRemoveFileRule(id, file string, severity Severity, supersedes ...string) *FileRule {
	return &FileRule{
		ruleInfo: ruleInfo{
			id:          id,
			title:       file,
			description: fmt.Sprintf("Remove file %s", file),
			severity:    severity,
			supersedes:  supersedes,
		},
		file:           file,
		remove:         true,
		resolutionType: ResolutionCmd,
	}
}

func (r *FileRule) Visit(p *project.Project) []Finding {
	exists := p.HasFile(r.file)
	if r.remove {
		if !exists {
			return nil
		}
		return r.finding(ResolutionCmd, Occurrence{
			File:       r.file,
			Resolution: fmt.Sprintf("rm %s", strings.TrimPrefix(r.file, "./")),
		})
	}

	if exists {
		return nil
	}
	return r.finding(r.resolutionType, Occurrence{File: r.file, Resolution: r.content})
}

// GulpfileRule requires gulpfile.js to contain a piece of code.
type GulpfileRule struct {
	ruleInfo
	snippet string
}

func NewGulpfileRule(id, title, snippet string, severity Severity, description string) *GulpfileRule {
	return &GulpfileRule{
		ruleInfo: ruleInfo{
			id:          id,
			title:       title,
			description: description,
			severity:    severity,
		},
		snippet: snippet,
	}
}

func (r *GulpfileRule) Visit(p *project.Project) []Finding {
	if p.Gulpfile == nil || strings.Contains(p.Gulpfile.Source, r.snippet) {
		return nil
	}
	return r.finding(ResolutionJS, Occurrence{File: p.Gulpfile.Path, Resolution: r.snippet})
}

package upgrade

import (
	"github.com/o365cli/o365/internal/spfx/project"
)

// SourceMatcher selects the places in a TypeScript file a SourceRule reports.
type SourceMatcher func(f *project.TsFile) ([]project.Match, error)

// ImportedFrom matches import statements bringing symbol in from module.
func ImportedFrom(symbol, module string) SourceMatcher {
	return func(f *project.TsFile) ([]project.Match, error) {
		imports, err := f.Imports()
		if err != nil {
			return nil, err
		}
		var matches []project.Match
		for _, imp := range imports {
			if imp.Module != module {
				continue
			}
			for _, name := range imp.Names {
				if name == symbol {
					matches = append(matches, project.Match{Text: imp.Text, Position: imp.Position})
					break
				}
			}
		}
		return matches, nil
	}
}

// NodeContaining matches the outermost syntax nodes of nodeType (for example
// call_expression or new_expression) whose source contains substr.
func NodeContaining(nodeType, substr string) SourceMatcher {
	return func(f *project.TsFile) ([]project.Match, error) {
		return f.Find(nodeType, substr)
	}
}

// SourceRule reports code patterns in the project TypeScript files. Every
// match becomes an occurrence with its position.
type SourceRule struct {
	ruleInfo
	match      SourceMatcher
	resolution string
}

func NewSourceRule(id, title string, match SourceMatcher, resolution string, severity Severity, description string) *SourceRule {
	return &SourceRule{
		ruleInfo: ruleInfo{
			id:          id,
			title:       title,
			description: description,
			severity:    severity,
		},
		match:      match,
		resolution: resolution,
	}
}

func (r *SourceRule) Visit(p *project.Project) []Finding {
	var occurrences []Occurrence
	for _, f := range p.TsFiles {
		matches, err := r.match(f)
		if err != nil {
			// unparsable sources are not something the rule can report on
			continue
		}
		for _, m := range matches {
			pos := m.Position
			occurrences = append(occurrences, Occurrence{
				File:       f.RelPath,
				Position:   &pos,
				Resolution: r.resolution,
			})
		}
	}
	return r.finding(ResolutionTS, occurrences...)
}

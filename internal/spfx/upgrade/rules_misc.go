package upgrade

import (
	"github.com/o365cli/o365/internal/spfx/project"
)

// DedupeRuleID is the id of the npm dedupe finding.
const DedupeRuleID = "FN017001"

// DedupeRule suggests running npm dedupe after the packages have been upgraded.
// It always fires and only runs for npm.
type DedupeRule struct {
	ruleInfo
}

func NewDedupeRule() *DedupeRule {
	return &DedupeRule{ruleInfo: ruleInfo{
		id:    DedupeRuleID,
		title: "npm dedupe",
		description: "If, after upgrading npm packages, when building the project you have errors similar to: " +
			"\"error TS2345: Argument of type 'SPHttpClientConfiguration' is not assignable to parameter of type " +
			"'SPHttpClientConfiguration'\", try running 'npm dedupe' to cleanup npm packages.",
		severity: SeverityOptional,
	}}
}

func (r *DedupeRule) Visit(p *project.Project) []Finding {
	return r.finding(ResolutionCmd, Occurrence{File: project.PackageJSONPath, Resolution: "npm dedupe"})
}

package upgrade

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/o365cli/o365/internal/spfx/project"
)

// AnalysisContext carries the settings of one upgrade run through every stage.
// It is built once and never modified.
type AnalysisContext struct {
	ProjectRoot    string
	FromVersion    string
	ToVersion      string
	PackageManager PackageManager
	Output         string
}

// RuleError reports a rule that failed while visiting a project.
type RuleError struct {
	RuleID  string
	Version string
	Err     error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s of version %s failed: %v", e.RuleID, e.Version, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Engine runs the rules of a version range against a project.
type Engine struct {
	registry Registry
	logger   hclog.Logger
}

// NewEngine creates an engine over registry.
func NewEngine(registry Registry, logger hclog.Logger) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{
		registry: registry,
		logger:   logger,
	}
}

// Run visits the project with the rules of every version after
// actx.FromVersion up to actx.ToVersion, newest version first. For npm the
// dedupe finding is appended last.
func (e *Engine) Run(actx AnalysisContext, p *project.Project) ([]Finding, error) {
	versions, err := ResolveRange(actx.FromVersion, actx.ToVersion)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, version := range versions {
		rules := e.registry.RulesFor(version)
		e.logger.Debug("running rules", "version", version, "rules", len(rules))
		for _, rule := range rules {
			found, err := e.visit(rule, version, p)
			if err != nil {
				return nil, err
			}
			findings = append(findings, found...)
		}
	}

	if actx.PackageManager.Name == NPM.Name {
		dedupe := NewDedupeRule()
		found, err := e.visit(dedupe, "", p)
		if err != nil {
			return nil, err
		}
		findings = append(findings, found...)
	}

	e.logger.Debug("rules completed", "findings", len(findings))
	return findings, nil
}

func (e *Engine) visit(rule Rule, version string, p *project.Project) (findings []Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("rule failed", "rule", rule.ID(), "version", version, "panic", r)
			err = &RuleError{RuleID: rule.ID(), Version: version, Err: fmt.Errorf("%v", r)}
			findings = nil
		}
	}()
	return rule.Visit(p), nil
}

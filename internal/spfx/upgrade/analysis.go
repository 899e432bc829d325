package upgrade

import (
	"errors"

	"github.com/hashicorp/go-hclog"

	"github.com/o365cli/o365/internal/spfx/project"
)

// Analysis is the outcome of a successful upgrade analysis.
type Analysis struct {
	Context  AnalysisContext
	Project  *project.Project
	Findings []Finding
	Rows     []FindingToReport
}

// Analyze locates the project containing startDir, checks that it can be
// upgraded to toVersion and reports the findings to apply, with commands
// resolved for pm. Gate failures are returned as *GateError and rule failures
// as *RuleError.
func Analyze(startDir, toVersion string, pm PackageManager, output string, registry Registry, logger hclog.Logger) (*Analysis, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	root, err := project.FindRoot(startDir)
	if err != nil {
		if errors.Is(err, project.ErrProjectRootNotFound) {
			return nil, &GateError{Code: CodeProjectRootNotFound, Message: project.ErrProjectRootNotFound.Error()}
		}
		return nil, err
	}
	logger.Debug("found project root", "path", root)

	if toVersion == "" {
		toVersion = LatestVersion()
	}
	if err := CheckTargetVersion(toVersion); err != nil {
		return nil, err
	}

	p := project.Collect(root, logger)

	actx := AnalysisContext{
		ProjectRoot:    root,
		FromVersion:    DetectProjectVersion(p),
		ToVersion:      toVersion,
		PackageManager: pm,
		Output:         output,
	}
	logger.Info("analyzing project", "from", actx.FromVersion, "to", actx.ToVersion, "packageManager", pm.Name)

	findings, err := NewEngine(registry, logger).Run(actx, p)
	if err != nil {
		return nil, err
	}

	reduced := Reduce(findings)
	rows := ResolveTokens(Flatten(reduced), pm)
	logger.Debug("reduced findings", "findings", len(findings), "reduced", len(reduced), "rows", len(rows))

	return &Analysis{
		Context:  actx,
		Project:  p,
		Findings: reduced,
		Rows:     rows,
	}, nil
}

package projectupgrade

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/o365cli/o365/cmd/version"
	"github.com/o365cli/o365/internal/git"
	"github.com/o365cli/o365/internal/spfx/report"
	"github.com/o365cli/o365/internal/spfx/upgrade"
)

// exitCode maps an analysis error to the exit code of the command.
func exitCode(err error) int {
	var gateErr *upgrade.GateError
	if errors.As(err, &gateErr) {
		return gateErr.Code
	}
	var ruleErr *upgrade.RuleError
	if errors.As(err, &ruleErr) {
		return upgrade.CodeRuleFailed
	}
	return 1
}

// collectMeta describes the analysed project for the report. Repository
// details are only added when the project is inside a git repository.
func collectMeta(analysis *upgrade.Analysis, lg hclog.Logger) report.ReportMeta {
	actx := analysis.Context
	meta := report.ReportMeta{
		ProjectName:    filepath.Base(actx.ProjectRoot),
		FromVersion:    actx.FromVersion,
		ToVersion:      actx.ToVersion,
		PackageManager: actx.PackageManager.Name,
		GeneratedAt:    time.Now(),
		ToolVersion:    version.CoreVersion,
	}

	md, err := git.CollectRepositoryMetadata(actx.ProjectRoot)
	if err != nil {
		lg.Debug("skipping repository metadata", "error", err)
		return meta
	}
	meta.Repository = md
	if md.WebURL != nil {
		meta.RepositoryURL = *md.WebURL
	}
	return meta
}

// reportFileName returns the file name used when --output-file is a folder.
func reportFileName(output string) string {
	switch output {
	case OutputJSON:
		return "spfx-upgrade-report.json"
	case OutputMarkdown:
		return "spfx-upgrade-report.md"
	case OutputSARIF:
		return "spfx-upgrade-report.sarif"
	default:
		return "spfx-upgrade-report.txt"
	}
}

var flagAliases = map[string]string{
	"to-version":      "toVersion",
	"package-manager": "packageManager",
	"outputFile":      "output-file",
}

// normalizeFlagName lets the camelCase and kebab-case spellings of a flag
// refer to the same flag.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if alias, ok := flagAliases[name]; ok {
		name = alias
	}
	return pflag.NormalizedName(name)
}

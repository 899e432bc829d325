package report

import (
	"time"

	"github.com/o365cli/o365/internal/git"
	"github.com/o365cli/o365/internal/spfx/upgrade"
)

// ReportMeta describes the upgrade a report is generated for.
type ReportMeta struct {
	ProjectName    string
	FromVersion    string
	ToVersion      string
	PackageManager string
	GeneratedAt    time.Time
	Repository     *git.RepositoryMetadata
	RepositoryURL  string
	ToolVersion    string
}

// Modification is one change to apply to a file.
type Modification struct {
	Description  string
	Modification string
}

// ReportData groups report rows into the commands to execute and the
// modifications to apply per file.
type ReportData struct {
	// Commands holds commands other than package installs and removals.
	Commands []string
	// PackageManagerCommands holds at most one command per verb, in the
	// order install, installDev, uninstall, uninstallDev.
	PackageManagerCommands  []string
	ModificationPerFile     map[string][]Modification
	ModificationTypePerFile map[string]string
	// FileOrder lists the keys of ModificationPerFile in the order the files
	// were first reported.
	FileOrder []string
}

// BuildReportData sorts every row into exactly one bucket. Package commands
// of pm are merged so each verb is executed once for all its packages.
func BuildReportData(rows []upgrade.FindingToReport, pm upgrade.PackageManager) ReportData {
	data := ReportData{
		Commands:                []string{},
		PackageManagerCommands:  []string{},
		ModificationPerFile:     map[string][]Modification{},
		ModificationTypePerFile: map[string]string{},
		FileOrder:               []string{},
	}

	packages := map[string][]string{}
	for _, row := range rows {
		if row.ResolutionType == upgrade.ResolutionCmd {
			if verb, names, ok := pm.ParseCommand(row.Resolution); ok {
				packages[verb] = append(packages[verb], names...)
			} else {
				data.Commands = append(data.Commands, row.Resolution)
			}
			continue
		}

		if _, ok := data.ModificationPerFile[row.File]; !ok {
			data.FileOrder = append(data.FileOrder, row.File)
			data.ModificationTypePerFile[row.File] = string(row.ResolutionType)
		}
		data.ModificationPerFile[row.File] = append(data.ModificationPerFile[row.File], Modification{
			Description:  row.Description,
			Modification: row.Resolution,
		})
	}

	for _, verb := range []string{upgrade.TokenInstall, upgrade.TokenInstallDev, upgrade.TokenUninstall, upgrade.TokenUninstallDev} {
		if names := packages[verb]; len(names) > 0 {
			data.PackageManagerCommands = append(data.PackageManagerCommands, pm.Command(verb, names))
		}
	}

	return data
}

// script returns the commands to execute, package manager commands first.
func (d ReportData) script() []string {
	script := make([]string, 0, len(d.PackageManagerCommands)+len(d.Commands))
	script = append(script, d.PackageManagerCommands...)
	return append(script, d.Commands...)
}

package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/o365cli/o365/internal/spfx/upgrade"
)

const (
	sarifToolName = "o365 spfx project upgrade"
	sarifToolURI  = "https://github.com/o365cli/o365"
)

// toSarifLevel maps a finding severity to a SARIF result level.
func toSarifLevel(severity upgrade.Severity) string {
	switch severity {
	case upgrade.SeverityRequired:
		return "error"
	case upgrade.SeverityRecommended:
		return "warning"
	case upgrade.SeverityOptional:
		return "note"
	default:
		return "none"
	}
}

// RenderSARIF renders the rows as a SARIF 2.1.0 log with one rule per finding
// id and one result per row.
func RenderSARIF(rows []upgrade.FindingToReport, meta ReportMeta) (string, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return "", fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	if meta.ToolVersion != "" {
		toolVersion := meta.ToolVersion
		run.Tool.Driver.Version = &toolVersion
		run.Tool.Driver.SemanticVersion = &toolVersion
	}

	automationID := fmt.Sprintf("spfx-project-upgrade/%s/%s", meta.ProjectName, meta.ToVersion)
	guid := uuid.New().String()
	run.AutomationDetails = &sarif.RunAutomationDetails{ID: &automationID, GUID: &guid}

	if provenance := versionControlProvenance(meta); provenance != nil {
		run.VersionControlProvenance = []*sarif.VersionControlDetails{provenance}
	}

	described := map[string]struct{}{}
	for _, row := range rows {
		level := toSarifLevel(row.Severity)
		if _, ok := described[row.ID]; !ok {
			described[row.ID] = struct{}{}
			title, description := row.Title, row.Description
			rule := run.AddRule(row.ID)
			rule.Name = &title
			rule.ShortDescription = &sarif.MultiformatMessageString{Text: &title}
			rule.FullDescription = &sarif.MultiformatMessageString{Text: &description}
			rule.DefaultConfiguration = &sarif.ReportingConfiguration{Level: level}
			rule.Properties = map[string]interface{}{
				"severity":       string(row.Severity),
				"resolutionType": string(row.ResolutionType),
			}
		}

		uri := strings.TrimPrefix(row.File, "./")
		location := &sarif.Location{
			PhysicalLocation: &sarif.PhysicalLocation{
				ArtifactLocation: &sarif.ArtifactLocation{URI: &uri},
			},
		}
		if row.Position != nil {
			line, column := row.Position.Line, row.Position.Character
			location.PhysicalLocation.Region = &sarif.Region{StartLine: &line, StartColumn: &column}
		}

		result := sarif.NewRuleResult(row.ID).
			WithMessage(sarif.NewTextMessage(fmt.Sprintf("%s\n\n%s", row.Description, row.Resolution))).
			WithLevel(level).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}

	report.AddRun(run)

	var buf bytes.Buffer
	if err := report.PrettyWrite(&buf); err != nil {
		return "", fmt.Errorf("failed to write SARIF report: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func versionControlProvenance(meta ReportMeta) *sarif.VersionControlDetails {
	if meta.Repository == nil || meta.RepositoryURL == "" {
		return nil
	}
	repositoryURI := meta.RepositoryURL
	details := &sarif.VersionControlDetails{
		RepositoryURI: &repositoryURI,
		RevisionID:    meta.Repository.CommitHash,
		Branch:        meta.Repository.BranchName,
	}
	if meta.Repository.Subfolder != "" {
		subfolder := meta.Repository.Subfolder + "/"
		details.MappedTo = &sarif.ArtifactLocation{URI: &subfolder}
	}
	return details
}

package report

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/o365cli/o365/internal/spfx/upgrade"
)

//go:embed templates/upgrade-report.md.tmpl
var templates embed.FS

const markdownTemplate = "upgrade-report.md.tmpl"

// ordinalDate returns a string with the ordinal number of the day
// helper function for the report template
func ordinalDate(day int) string {
	suffix := "th"
	switch day {
	case 1, 21, 31:
		suffix = "st"
	case 2, 22:
		suffix = "nd"
	case 3, 23:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// formatDate formats a time.Time object as the report date.
// helper function for the report template
func formatDate(t time.Time) string {
	return fmt.Sprintf("%s %s %d", ordinalDate(t.Day()), t.Month(), t.Year())
}

// displaySeverity normalizes a severity to its capitalized label.
func displaySeverity(severity upgrade.Severity) string {
	normalized := strings.ToLower(strings.TrimSpace(string(severity)))
	if normalized == "" {
		return ""
	}
	return cases.Title(language.Und).String(normalized)
}

func newMarkdownTemplate() (*template.Template, error) {
	return template.New(markdownTemplate).
		Funcs(template.FuncMap{
			"formatDate":      formatDate,
			"displaySeverity": displaySeverity,
		}).
		ParseFS(templates, "templates/"+markdownTemplate)
}

type fileModifications struct {
	File          string
	Type          string
	Modifications []Modification
}

type markdownView struct {
	Meta       ReportMeta
	Repository []string
	Findings   []upgrade.FindingToReport
	Script     []string
	Files      []fileModifications
}

// RenderMarkdown renders a report listing every finding with its resolution,
// followed by a summary of the commands to execute and the files to modify.
func RenderMarkdown(rows []upgrade.FindingToReport, data ReportData, meta ReportMeta) (string, error) {
	tmpl, err := newMarkdownTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	view := markdownView{
		Meta:       meta,
		Repository: repositoryLines(meta),
		Findings:   rows,
		Script:     data.script(),
	}
	for _, file := range data.FileOrder {
		view.Files = append(view.Files, fileModifications{
			File:          file,
			Type:          data.ModificationTypePerFile[file],
			Modifications: data.ModificationPerFile[file],
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func repositoryLines(meta ReportMeta) []string {
	var lines []string
	if meta.RepositoryURL != "" {
		lines = append(lines, fmt.Sprintf("Repository: [%s](%s)", meta.RepositoryURL, meta.RepositoryURL))
	}
	if meta.Repository == nil {
		return lines
	}
	if meta.Repository.BranchName != nil {
		lines = append(lines, fmt.Sprintf("Branch: `%s`", *meta.Repository.BranchName))
	}
	if commit := meta.Repository.ShortCommit(); commit != "" {
		lines = append(lines, fmt.Sprintf("Commit: `%s`", commit))
	}
	return lines
}

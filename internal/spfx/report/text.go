package report

import (
	"strings"
)

// RenderText renders the commands to execute followed by the modifications
// per file.
func RenderText(data ReportData) string {
	var sb strings.Builder

	sb.WriteString("Execute in command line\n")
	sb.WriteString(underline("Execute in command line"))
	sb.WriteString(strings.Join(data.script(), "\n"))
	sb.WriteString("\n\n")

	for i, file := range data.FileOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(file + "\n")
		sb.WriteString(underline(file))
		for j, m := range data.ModificationPerFile[file] {
			if j > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(m.Description + ":\n" + m.Modification + "\n")
		}
	}

	return strings.TrimSpace(sb.String())
}

func underline(s string) string {
	return strings.Repeat("-", len(s)) + "\n"
}

package upgrade

// Reduce removes repeated findings, keeping the first finding reported under
// each id, then drops the findings superseded by any remaining finding.
// Findings arrive newest version first, so the newest finding wins.
func Reduce(findings []Finding) []Finding {
	seen := make(map[string]struct{}, len(findings))
	deduped := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if _, ok := seen[f.ID]; ok {
			continue
		}
		seen[f.ID] = struct{}{}
		deduped = append(deduped, f)
	}

	superseded := make(map[string]struct{})
	for _, f := range deduped {
		for _, id := range f.Supersedes {
			superseded[id] = struct{}{}
		}
	}

	reduced := make([]Finding, 0, len(deduped))
	for _, f := range deduped {
		if _, ok := superseded[f.ID]; ok {
			continue
		}
		reduced = append(reduced, f)
	}
	return reduced
}

// Flatten emits one report row per occurrence, in finding order.
func Flatten(findings []Finding) []FindingToReport {
	rows := make([]FindingToReport, 0, len(findings))
	for _, f := range findings {
		for _, o := range f.Occurrences {
			rows = append(rows, FindingToReport{
				ID:             f.ID,
				Title:          f.Title,
				Description:    f.Description,
				Severity:       f.Severity,
				ResolutionType: f.ResolutionType,
				File:           o.File,
				Position:       o.Position,
				Resolution:     o.Resolution,
			})
		}
	}
	return rows
}

// ResolveTokens returns a copy of rows where the verbs of command resolutions
// are replaced by the commands of pm.
func ResolveTokens(rows []FindingToReport, pm PackageManager) []FindingToReport {
	resolved := make([]FindingToReport, len(rows))
	for i, row := range rows {
		if row.ResolutionType == ResolutionCmd {
			row.Resolution = pm.ResolveCommand(row.Resolution)
		}
		resolved[i] = row
	}
	return resolved
}

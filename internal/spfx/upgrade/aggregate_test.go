package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cmdFinding(id, resolution string, supersedes ...string) Finding {
	return Finding{
		ID:             id,
		Title:          id,
		Severity:       SeverityRequired,
		ResolutionType: ResolutionCmd,
		Resolution:     resolution,
		Supersedes:     supersedes,
		Occurrences:    []Occurrence{{File: "./package.json", Resolution: resolution}},
	}
}

func ids(findings []Finding) []string {
	var out []string
	for _, f := range findings {
		out = append(out, f.ID)
	}
	return out
}

func TestReduceKeepsNewestDuplicate(t *testing.T) {
	findings := []Finding{
		cmdFinding("FN001001", "install @microsoft/sp-core-library@1.6.0"),
		cmdFinding("FN002001", "installDev @microsoft/sp-build-web@1.6.0"),
		cmdFinding("FN001001", "install @microsoft/sp-core-library@1.5.1"),
	}

	reduced := Reduce(findings)

	assert.Equal(t, []string{"FN001001", "FN002001"}, ids(reduced))
	assert.Equal(t, "install @microsoft/sp-core-library@1.6.0", reduced[0].Resolution)
}

func TestReduceSupersession(t *testing.T) {
	tests := []struct {
		name     string
		findings []Finding
		want     []string
	}{
		{
			name: "superseding finding first",
			findings: []Finding{
				cmdFinding("FN015003", "rm config/tslint.json", "FN008001", "FN008002"),
				cmdFinding("FN008001", "a"),
				cmdFinding("FN008002", "b"),
				cmdFinding("FN001001", "c"),
			},
			want: []string{"FN015003", "FN001001"},
		},
		{
			name: "superseding finding last",
			findings: []Finding{
				cmdFinding("FN008001", "a"),
				cmdFinding("FN001001", "c"),
				cmdFinding("FN015003", "rm config/tslint.json", "FN008001"),
			},
			want: []string{"FN001001", "FN015003"},
		},
		{
			name: "unknown superseded id",
			findings: []Finding{
				cmdFinding("FN015003", "rm config/tslint.json", "FN999999"),
				cmdFinding("FN001001", "c"),
			},
			want: []string{"FN015003", "FN001001"},
		},
		{
			name:     "empty",
			findings: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reduced := Reduce(tt.findings)
			assert.Equal(t, tt.want, ids(reduced))
			assert.Equal(t, reduced, Reduce(reduced))
		})
	}
}

func TestFlatten(t *testing.T) {
	pos := Position{Line: 3, Character: 1}
	findings := []Finding{
		cmdFinding("FN001001", "install @microsoft/sp-core-library@1.6.0"),
		{
			ID:             "FN011002",
			Title:          "WebPart manifest supportedHosts",
			Severity:       SeverityRequired,
			ResolutionType: ResolutionJSON,
			Occurrences: []Occurrence{
				{File: "./src/webparts/a/A.manifest.json", Resolution: "a"},
				{File: "./src/webparts/b/B.manifest.json", Resolution: "b", Position: &pos},
			},
		},
	}

	rows := Flatten(findings)

	assert.Len(t, rows, 3)
	assert.Equal(t, "./package.json", rows[0].File)
	assert.Equal(t, "FN011002", rows[1].ID)
	assert.Equal(t, "./src/webparts/a/A.manifest.json", rows[1].File)
	assert.Nil(t, rows[1].Position)
	assert.Equal(t, &pos, rows[2].Position)
	assert.Equal(t, "b", rows[2].Resolution)
	assert.Empty(t, Flatten(nil))
}

func TestResolveTokens(t *testing.T) {
	rows := []FindingToReport{
		{ID: "FN001001", ResolutionType: ResolutionCmd, Resolution: "install @microsoft/sp-core-library@1.6.0"},
		{ID: "FN002001", ResolutionType: ResolutionCmd, Resolution: "installDev @microsoft/sp-build-web@1.6.0"},
		{ID: "FN001015", ResolutionType: ResolutionCmd, Resolution: "uninstall @microsoft/sp-client-preview"},
		{ID: "FN002011", ResolutionType: ResolutionCmd, Resolution: "uninstallDev tslint"},
		{ID: "FN015003", ResolutionType: ResolutionCmd, Resolution: "rm config/tslint.json"},
		{ID: "FN012001", ResolutionType: ResolutionJSON, Resolution: "install"},
	}

	tests := []struct {
		pm   PackageManager
		want []string
	}{
		{
			pm: NPM,
			want: []string{
				"npm i -SE @microsoft/sp-core-library@1.6.0",
				"npm i -DE @microsoft/sp-build-web@1.6.0",
				"npm un -S @microsoft/sp-client-preview",
				"npm un -D tslint",
			},
		},
		{
			pm: PNPM,
			want: []string{
				"pnpm i -E @microsoft/sp-core-library@1.6.0",
				"pnpm i -DE @microsoft/sp-build-web@1.6.0",
				"pnpm un @microsoft/sp-client-preview",
				"pnpm un tslint",
			},
		},
		{
			pm: Yarn,
			want: []string{
				"yarn add -E @microsoft/sp-core-library@1.6.0",
				"yarn add -DE @microsoft/sp-build-web@1.6.0",
				"yarn remove @microsoft/sp-client-preview",
				"yarn remove tslint",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pm.Name, func(t *testing.T) {
			resolved := ResolveTokens(rows, tt.pm)
			assert.Len(t, resolved, len(rows))
			for i, want := range tt.want {
				assert.Equal(t, want, resolved[i].Resolution)
			}
			assert.Equal(t, "rm config/tslint.json", resolved[4].Resolution)
			assert.Equal(t, "install", resolved[5].Resolution)
			// input rows are left untouched
			assert.Equal(t, "install @microsoft/sp-core-library@1.6.0", rows[0].Resolution)
		})
	}
}

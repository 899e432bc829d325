package upgrade

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestAnalyze(t *testing.T) {
	root := writeProject(t, map[string]string{
		"package.json": `{
  "name": "hello-world",
  "dependencies": {
    "@microsoft/sp-core-library": "~1.0.0",
    "@microsoft/sp-webpart-base": "~1.0.0"
  },
  "devDependencies": {
    "@microsoft/sp-build-web": "~1.0.0",
    "@microsoft/sp-module-interfaces": "~1.0.0",
    "@microsoft/sp-webpart-workbench": "~1.0.0"
  }
}`,
		"src/webparts/helloWorld/HelloWorldWebPart.ts": "export default class HelloWorldWebPart {}\n",
	})

	analysis, err := Analyze(filepath.Join(root, "src", "webparts"), "1.0.1", Yarn, "json", DefaultRegistry, nil)

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", analysis.Context.FromVersion)
	assert.Equal(t, "1.0.1", analysis.Context.ToVersion)
	assert.Equal(t, "json", analysis.Context.Output)
	assert.Equal(t, []string{"FN001001", "FN001004"}, ids(analysis.Findings))
	require.Len(t, analysis.Rows, 2)
	assert.Equal(t, "yarn add -E @microsoft/sp-core-library@1.0.1", analysis.Rows[0].Resolution)
	assert.Equal(t, "yarn add -E @microsoft/sp-webpart-base@1.0.1", analysis.Rows[1].Resolution)
}

func TestAnalyzeDefaultsToLatestVersion(t *testing.T) {
	root := writeProject(t, map[string]string{
		"package.json": `{ "dependencies": { "@microsoft/sp-core-library": "1.8.2" } }`,
	})

	_, err := Analyze(root, "", NPM, "text", DefaultRegistry, nil)

	assert.Equal(t, CodeUpToDate, gateCode(t, err))
}

func TestAnalyzeGate(t *testing.T) {
	versioned := writeProject(t, map[string]string{
		"package.json": `{ "dependencies": { "@microsoft/sp-core-library": "1.5.0" } }`,
	})
	unversioned := writeProject(t, map[string]string{
		"package.json": `{ "dependencies": {} }`,
	})
	legacy := writeProject(t, map[string]string{
		"package.json": `{ "dependencies": { "@microsoft/sp-core-library": "0.4.0" } }`,
	})

	tests := []struct {
		name string
		dir  string
		to   string
		code int
	}{
		{name: "no project root", dir: t.TempDir(), to: "1.6.0", code: CodeProjectRootNotFound},
		{name: "unsupported target", dir: versioned, to: "1.9.0", code: CodeUnsupportedTarget},
		{name: "undetectable version", dir: unversioned, to: "1.6.0", code: CodeVersionUndetectable},
		{name: "unsupported source", dir: legacy, to: "1.6.0", code: CodeUnsupportedSource},
		{name: "downgrade", dir: versioned, to: "1.4.1", code: CodeDowngrade},
		{name: "up to date", dir: versioned, to: "1.5.0", code: CodeUpToDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := Analyze(tt.dir, tt.to, NPM, "text", DefaultRegistry, nil)
			assert.Nil(t, analysis)
			assert.Equal(t, tt.code, gateCode(t, err))
		})
	}
}

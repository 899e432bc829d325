package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineFileFullPath(t *testing.T) {
	type testCase struct {
		name         string
		inputPath    string
		nameTemplate string
		expectFile   string
		expectFolder string
		setup        func(t *testing.T) (inputPath, expectFile, expectFolder string)
	}

	tmpDir := t.TempDir()

	tests := []testCase{
		{
			name:         "Directory path with name template",
			inputPath:    tmpDir,
			nameTemplate: "upgrade-report.md",
			expectFile:   filepath.Join(tmpDir, "upgrade-report.md"),
			expectFolder: tmpDir,
		},
		{
			name:         "File path with extension",
			inputPath:    filepath.Join(tmpDir, "report.json"),
			nameTemplate: "ignored.txt",
			setup: func(t *testing.T) (string, string, string) {
				f := filepath.Join(tmpDir, "report.json")
				_ = os.WriteFile(f, []byte("[]"), 0644)
				return f, f, tmpDir
			},
		},
		{
			name:         "Path with no extension, treat as folder",
			inputPath:    filepath.Join(tmpDir, "reports"),
			nameTemplate: "upgrade-report.txt",
			expectFile:   filepath.Join(tmpDir, "reports", "upgrade-report.txt"),
			expectFolder: filepath.Join(tmpDir, "reports"),
		},
		{
			name:         "Non-existent file with extension",
			inputPath:    filepath.Join(tmpDir, "nonexistent.sarif"),
			nameTemplate: "ignored.txt",
			expectFile:   filepath.Join(tmpDir, "nonexistent.sarif"),
			expectFolder: tmpDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualPath := tt.inputPath
			expectFile := tt.expectFile
			expectFolder := tt.expectFolder

			if tt.setup != nil {
				actualPath, expectFile, expectFolder = tt.setup(t)
			}

			filePath, folderPath, err := DetermineFileFullPath(actualPath, tt.nameTemplate)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if filePath != expectFile {
				t.Errorf("Expected file path %s, got %s", expectFile, filePath)
			}
			if folderPath != expectFolder {
				t.Errorf("Expected folder path %s, got %s", expectFolder, folderPath)
			}
		})
	}
}

func TestFindUpwards(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "webparts", "helloWorld")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644))

	found, err := FindUpwards(nested, "package.json")
	require.NoError(t, err)
	assert.Equal(t, root, found)

	found, err = FindUpwards(root, "package.json")
	require.NoError(t, err)
	assert.Equal(t, root, found)

	_, err = FindUpwards(nested, "does-not-exist.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, WriteFile(out, []byte("first version")))
	require.NoError(t, WriteFile(out, []byte("second")))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

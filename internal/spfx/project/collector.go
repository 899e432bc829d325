package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/mapstructure"

	"github.com/o365cli/o365/pkg/shared/files"
)

// ErrProjectRootNotFound is returned when no package.json exists in the start
// directory or any of its parents.
var ErrProjectRootNotFound = errors.New("Couldn't find project root folder")

// skippedDirs are never part of the file inventory. Build output folders are
// only skipped at the project root.
var (
	skippedDirs = map[string]struct{}{
		"node_modules": {},
		".git":         {},
	}
	skippedRootDirs = map[string]struct{}{
		"lib":     {},
		"temp":    {},
		"dist":    {},
		"release": {},
	}
)

// FindRoot walks up from start until it finds a directory holding package.json.
func FindRoot(start string) (string, error) {
	root, err := files.FindUpwards(start, "package.json")
	if err != nil {
		if errors.Is(err, files.ErrNotFound) {
			return "", ErrProjectRootNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrProjectRootNotFound, err)
	}
	return root, nil
}

// collector accumulates a Project while reading files from root.
type collector struct {
	root   string
	logger hclog.Logger
	p      *Project
}

// Collect reads the project rooted at root into a snapshot. It never fails:
// unreadable or malformed files are recorded in Project.Issues and skipped.
func Collect(root string, logger hclog.Logger) *Project {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	c := &collector{
		root:   root,
		logger: logger,
		p: &Project{
			Path:  root,
			Files: map[string]struct{}{},
		},
	}

	c.logger.Debug("collecting project", "path", root)

	p := c.p
	p.ConfigJSON = c.readJSON(ConfigJSONPath)
	p.CopyAssetsJSON = c.readJSON(CopyAssetsJSONPath)
	p.DeployAzureStorageJSON = c.readJSON(DeployAzureStorageJSONPath)
	p.PackageJSON = c.readJSON(PackageJSONPath)
	p.PackageSolutionJSON = c.readJSON(PackageSolutionJSONPath)
	p.ServeJSON = c.readJSON(ServeJSONPath)
	p.TsConfigJSON = c.readJSON(TsConfigJSONPath)
	p.TsLintJSON = c.readJSON(TsLintJSONPath)
	p.TsLintJSONRoot = c.readJSON(TsLintJSONRootPath)
	p.WriteManifestsJSON = c.readJSON(WriteManifestsJSONPath)
	p.YoRcJSON = c.readJSON(YoRcJSONPath)

	p.Package = c.readPackage()
	p.Gulpfile = c.readGulpfile()
	p.VsCode = c.readVsCode()

	c.walkProject()

	c.logger.Debug("collected project",
		"manifests", len(p.Manifests),
		"tsFiles", len(p.TsFiles),
		"files", len(p.Files),
		"issues", len(p.Issues),
	)
	return p
}

func (c *collector) abs(relPath string) string {
	return filepath.Join(c.root, filepath.FromSlash(strings.TrimPrefix(relPath, "./")))
}

func (c *collector) addIssue(relPath string, err error) {
	c.logger.Debug("skipping project file", "file", relPath, "error", err)
	c.p.Issues = append(c.p.Issues, LoadIssue{File: relPath, Err: err})
}

// read returns the file content, or nil when the file is absent or unreadable.
func (c *collector) read(relPath string) []byte {
	path := c.abs(relPath)
	if !files.Exists(path) {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		c.addIssue(relPath, err)
		return nil
	}
	return content
}

func (c *collector) readJSON(relPath string) *JSONFile {
	content := c.read(relPath)
	if content == nil {
		return nil
	}
	doc, err := ParseJSONFile(relPath, content)
	if err != nil {
		c.addIssue(relPath, err)
		return nil
	}
	return doc
}

func (c *collector) readPackage() *PackageManifest {
	if c.p.PackageJSON == nil {
		return nil
	}
	content := StripSingleLineComments(c.read(PackageJSONPath))
	var pkg PackageManifest
	if err := json.Unmarshal(content, &pkg); err != nil {
		c.addIssue(PackageJSONPath, err)
		return nil
	}
	return &pkg
}

func (c *collector) readGulpfile() *Gulpfile {
	content := c.read(GulpfilePath)
	if content == nil {
		return nil
	}
	return &Gulpfile{Path: GulpfilePath, Source: string(content)}
}

func (c *collector) readVsCode() *VsCode {
	vsCode := &VsCode{
		Settings:   c.readJSON(VsCodeSettingsPath),
		Extensions: c.readJSON(VsCodeExtensionsPath),
		Launch:     c.readJSON(VsCodeLaunchPath),
	}
	if vsCode.Settings == nil && vsCode.Extensions == nil && vsCode.Launch == nil {
		return nil
	}
	return vsCode
}

// walkProject builds the file inventory and loads manifests and TypeScript
// sources from src.
func (c *collector) walkProject() {
	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Debug("failed to access path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(c.root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		relPath := "./" + filepath.ToSlash(rel)

		if d.IsDir() {
			if _, skip := skippedDirs[d.Name()]; skip {
				return fs.SkipDir
			}
			if _, skip := skippedRootDirs[d.Name()]; skip && !strings.Contains(rel, string(filepath.Separator)) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		c.p.Files[relPath] = struct{}{}
		if !strings.HasPrefix(relPath, "./src/") {
			return nil
		}

		name := d.Name()
		switch {
		case strings.HasSuffix(name, ".manifest.json"):
			if m := c.readManifest(path, relPath); m != nil {
				c.p.Manifests = append(c.p.Manifests, *m)
			}
		case strings.HasSuffix(name, ".ts"), strings.HasSuffix(name, ".tsx"):
			if source := c.read(relPath); source != nil {
				c.p.TsFiles = append(c.p.TsFiles, NewTsFile(path, relPath, source))
			}
		}
		return nil
	})
	if err != nil {
		c.addIssue("./", err)
	}
}

func (c *collector) readManifest(path, relPath string) *Manifest {
	content := c.read(relPath)
	if content == nil {
		return nil
	}
	doc, err := ParseJSONFile(relPath, content)
	if err != nil {
		c.addIssue(relPath, err)
		return nil
	}

	m := &Manifest{Path: path, RelPath: relPath, Data: doc.Data}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &m.ManifestInfo,
	})
	if err != nil {
		c.addIssue(relPath, err)
		return nil
	}
	if err := decoder.Decode(doc.Data); err != nil {
		// keep the raw document, the typed view is best effort
		c.addIssue(relPath, fmt.Errorf("failed to decode manifest fields: %w", err))
	}
	return m
}

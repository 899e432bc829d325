package project

import (
	"sort"
)

// Relative locations of the project files the collector knows about.
const (
	ConfigJSONPath             = "./config/config.json"
	CopyAssetsJSONPath         = "./config/copy-assets.json"
	DeployAzureStorageJSONPath = "./config/deploy-azure-storage.json"
	PackageJSONPath            = "./package.json"
	PackageSolutionJSONPath    = "./config/package-solution.json"
	ServeJSONPath              = "./config/serve.json"
	TsConfigJSONPath           = "./tsconfig.json"
	TsLintJSONPath             = "./config/tslint.json"
	TsLintJSONRootPath         = "./tslint.json"
	WriteManifestsJSONPath     = "./config/write-manifests.json"
	YoRcJSONPath               = "./.yo-rc.json"
	GulpfilePath               = "./gulpfile.js"
	VsCodeSettingsPath         = "./.vscode/settings.json"
	VsCodeExtensionsPath       = "./.vscode/extensions.json"
	VsCodeLaunchPath           = "./.vscode/launch.json"
)

// Project is a read-only snapshot of an SPFx project directory. Every optional
// document is nil when its file is missing or could not be parsed.
type Project struct {
	Path string

	ConfigJSON             *JSONFile
	CopyAssetsJSON         *JSONFile
	DeployAzureStorageJSON *JSONFile
	PackageJSON            *JSONFile
	PackageSolutionJSON    *JSONFile
	ServeJSON              *JSONFile
	TsConfigJSON           *JSONFile
	TsLintJSON             *JSONFile
	TsLintJSONRoot         *JSONFile
	WriteManifestsJSON     *JSONFile
	YoRcJSON               *JSONFile

	Package  *PackageManifest
	Gulpfile *Gulpfile
	VsCode   *VsCode

	Manifests []Manifest
	TsFiles   []*TsFile

	// Files holds the ./-prefixed relative path of every file in the project,
	// excluding build output and dependency folders.
	Files map[string]struct{}

	// Issues lists files that exist but could not be read or parsed.
	Issues []LoadIssue
}

// LoadIssue records an optional project file that was skipped.
type LoadIssue struct {
	File string
	Err  error
}

// PackageManifest is the typed part of package.json the analyzer relies on.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Gulpfile holds the raw source of gulpfile.js.
type Gulpfile struct {
	Path   string
	Source string
}

// VsCode groups the editor configuration files under .vscode.
type VsCode struct {
	Settings   *JSONFile
	Extensions *JSONFile
	Launch     *JSONFile
}

// Manifest is a parsed SPFx component manifest.
type Manifest struct {
	// Path is the absolute location of the manifest, RelPath the ./-prefixed
	// path relative to the project root.
	Path    string
	RelPath string
	Data    map[string]interface{}
	ManifestInfo
}

// ManifestInfo holds the typed manifest fields decoded from Data.
type ManifestInfo struct {
	ID                   string   `mapstructure:"id"`
	Alias                string   `mapstructure:"alias"`
	ComponentType        string   `mapstructure:"componentType"`
	ExtensionType        string   `mapstructure:"extensionType"`
	ManifestVersion      int      `mapstructure:"manifestVersion"`
	Version              string   `mapstructure:"version"`
	RequiresCustomScript *bool    `mapstructure:"requiresCustomScript"`
	SupportedHosts       []string `mapstructure:"supportedHosts"`
}

// HasFile reports whether the ./-prefixed relative path exists in the project.
func (p *Project) HasFile(relPath string) bool {
	if p == nil || p.Files == nil {
		return false
	}
	_, ok := p.Files[relPath]
	return ok
}

// FileList returns the file inventory in lexical order.
func (p *Project) FileList() []string {
	if p == nil {
		return nil
	}
	list := make([]string, 0, len(p.Files))
	for f := range p.Files {
		list = append(list, f)
	}
	sort.Strings(list)
	return list
}

// Dependency returns the declared version of a runtime dependency.
func (p *Project) Dependency(name string) (string, bool) {
	if p == nil || p.Package == nil {
		return "", false
	}
	v, ok := p.Package.Dependencies[name]
	return v, ok
}

// DevDependency returns the declared version of a development dependency.
func (p *Project) DevDependency(name string) (string, bool) {
	if p == nil || p.Package == nil {
		return "", false
	}
	v, ok := p.Package.DevDependencies[name]
	return v, ok
}

// Document returns the JSON document stored at one of the known relative
// paths, or nil when the path is unknown or the document is absent.
func (p *Project) Document(relPath string) *JSONFile {
	if p == nil {
		return nil
	}
	switch relPath {
	case ConfigJSONPath:
		return p.ConfigJSON
	case CopyAssetsJSONPath:
		return p.CopyAssetsJSON
	case DeployAzureStorageJSONPath:
		return p.DeployAzureStorageJSON
	case PackageJSONPath:
		return p.PackageJSON
	case PackageSolutionJSONPath:
		return p.PackageSolutionJSON
	case ServeJSONPath:
		return p.ServeJSON
	case TsConfigJSONPath:
		return p.TsConfigJSON
	case TsLintJSONPath:
		return p.TsLintJSON
	case TsLintJSONRootPath:
		return p.TsLintJSONRoot
	case WriteManifestsJSONPath:
		return p.WriteManifestsJSON
	case YoRcJSONPath:
		return p.YoRcJSON
	}
	if p.VsCode == nil {
		return nil
	}
	switch relPath {
	case VsCodeSettingsPath:
		return p.VsCode.Settings
	case VsCodeExtensionsPath:
		return p.VsCode.Extensions
	case VsCodeLaunchPath:
		return p.VsCode.Launch
	}
	return nil
}

package upgrade

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/o365cli/o365/internal/spfx/project"
)

// SupportedVersions lists the SharePoint Framework releases in release order.
// Ordering between versions is positional, not semver.
var SupportedVersions = []string{
	"1.0.0",
	"1.0.1",
	"1.0.2",
	"1.1.0",
	"1.1.1",
	"1.1.3",
	"1.2.0",
	"1.3.0",
	"1.3.1",
	"1.3.2",
	"1.3.4",
	"1.4.0",
	"1.4.1",
	"1.5.0",
	"1.5.1",
	"1.6.0",
	"1.7.0",
	"1.7.1",
	"1.8.0",
	"1.8.1",
	"1.8.2",
}

// Exit codes of the upgrade command.
const (
	CodeProjectRootNotFound = 1
	CodeUnsupportedTarget   = 2
	CodeVersionUndetectable = 3
	CodeUnsupportedSource   = 4
	CodeDowngrade           = 5
	CodeUpToDate            = 6
	CodeRuleFailed          = 7
)

const (
	cliName            = "o365"
	coreLibraryPackage = "@microsoft/sp-core-library"
	generatorPackage   = "@microsoft/generator-sharepoint"
)

var nonVersionChars = regexp.MustCompile(`[^0-9.]`)

// GateError is returned when a project cannot be upgraded to the requested version.
type GateError struct {
	Code    int
	Message string
}

func (e *GateError) Error() string {
	return e.Message
}

// LatestVersion returns the newest supported version.
func LatestVersion() string {
	return SupportedVersions[len(SupportedVersions)-1]
}

func versionIndex(v string) int {
	for i, supported := range SupportedVersions {
		if supported == v {
			return i
		}
	}
	return -1
}

// CheckTargetVersion verifies the requested version is supported.
func CheckTargetVersion(to string) error {
	if versionIndex(to) < 0 {
		return &GateError{
			Code:    CodeUnsupportedTarget,
			Message: fmt.Sprintf("%s doesn't support upgrading SharePoint Framework projects to version %s. Supported versions are %s",
				cliName, to, strings.Join(SupportedVersions, ", ")),
		}
	}
	return nil
}

// DetectProjectVersion returns the SharePoint Framework version of the
// project, read from .yo-rc.json or derived from the sp-core-library
// dependency. It is empty when neither is available.
func DetectProjectVersion(p *project.Project) string {
	if p == nil {
		return ""
	}
	if v := p.YoRcJSON.String(generatorPackage, "version"); v != "" {
		return v
	}
	if declared, ok := p.Dependency(coreLibraryPackage); ok {
		return nonVersionChars.ReplaceAllString(declared, "")
	}
	return ""
}

// ResolveRange validates an upgrade from one version to another and returns
// the versions whose rules apply: those after from, up to and including to,
// newest first.
func ResolveRange(from, to string) ([]string, error) {
	if err := CheckTargetVersion(to); err != nil {
		return nil, err
	}
	if from == "" {
		return nil, &GateError{
			Code:    CodeVersionUndetectable,
			Message: "Unable to determine the version of the current SharePoint Framework project",
		}
	}

	fromIndex := versionIndex(from)
	if fromIndex < 0 {
		return nil, &GateError{
			Code:    CodeUnsupportedSource,
			Message: fmt.Sprintf("%s doesn't support upgrading projects built on SharePoint Framework v%s", cliName, from),
		}
	}

	toIndex := versionIndex(to)
	switch {
	case fromIndex > toIndex:
		return nil, &GateError{Code: CodeDowngrade, Message: "You cannot downgrade a project"}
	case fromIndex == toIndex:
		return nil, &GateError{Code: CodeUpToDate, Message: "Project doesn't need to be upgraded"}
	}

	versions := make([]string, 0, toIndex-fromIndex)
	for i := toIndex; i > fromIndex; i-- {
		versions = append(versions, SupportedVersions[i])
	}
	return versions, nil
}

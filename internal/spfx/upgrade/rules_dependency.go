package upgrade

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/o365cli/o365/internal/spfx/project"
)

// DependencyRule checks one package.json dependency. Depending on its flags it
// upgrades an outdated package, installs a missing one or removes it.
type DependencyRule struct {
	ruleInfo
	packageName string
	version     string
	dev         bool
	optional    bool
	remove      bool
}

// NewDependencyRule upgrades packageName to packageVersion, installing it when missing.
func NewDependencyRule(id, packageName, packageVersion string) *DependencyRule {
	return newDependencyRule(id, packageName, packageVersion, false, false, false)
}

// NewOptionalDependencyRule upgrades packageName only when the project uses it.
func NewOptionalDependencyRule(id, packageName, packageVersion string) *DependencyRule {
	return newDependencyRule(id, packageName, packageVersion, false, true, false)
}

// NewDevDependencyRule is NewDependencyRule for devDependencies.
func NewDevDependencyRule(id, packageName, packageVersion string) *DependencyRule {
	return newDependencyRule(id, packageName, packageVersion, true, false, false)
}

// NewOptionalDevDependencyRule is NewOptionalDependencyRule for devDependencies.
func NewOptionalDevDependencyRule(id, packageName, packageVersion string) *DependencyRule {
	return newDependencyRule(id, packageName, packageVersion, true, true, false)
}

// NewRemoveDependencyRule uninstalls packageName when the project uses it.
func NewRemoveDependencyRule(id, packageName string, dev bool) *DependencyRule {
	return newDependencyRule(id, packageName, "", dev, true, true)
}

func newDependencyRule(id, packageName, packageVersion string, dev, optional, remove bool) *DependencyRule {
	kind := "dependency"
	if dev {
		kind = "dev dependency"
	}
	action := "Upgrade"
	if remove {
		action = "Remove"
	}
	severity := SeverityRequired
	if optional && !remove {
		severity = SeverityOptional
	}

	return &DependencyRule{
		ruleInfo: ruleInfo{
			id:          id,
			title:       packageName,
			description: fmt.Sprintf("%s SharePoint Framework %s package %s", action, kind, packageName),
			severity:    severity,
		},
		packageName: packageName,
		version:     packageVersion,
		dev:         dev,
		optional:    optional,
		remove:      remove,
	}
}

func (r *DependencyRule) Visit(p *project.Project) []Finding {
	if p.Package == nil {
		return nil
	}

	var current string
	var present bool
	if r.dev {
		current, present = p.DevDependency(r.packageName)
	} else {
		current, present = p.Dependency(r.packageName)
	}

	if r.remove {
		if !present {
			return nil
		}
		return r.occurrence(r.verb() + " " + r.packageName)
	}

	if !present && r.optional {
		return nil
	}
	if present && !isOutdated(current, r.version) {
		return nil
	}

	info := r.ruleInfo
	if !present {
		info.description = strings.Replace(info.description, "Upgrade", "Install", 1)
	}
	return info.finding(ResolutionCmd, Occurrence{
		File:       project.PackageJSONPath,
		Resolution: fmt.Sprintf("%s %s@%s", r.verb(), r.packageName, r.version),
	})
}

func (r *DependencyRule) occurrence(resolution string) []Finding {
	return r.finding(ResolutionCmd, Occurrence{File: project.PackageJSONPath, Resolution: resolution})
}

// verb returns the package manager neutral token of this rule.
func (r *DependencyRule) verb() string {
	switch {
	case r.remove && r.dev:
		return TokenUninstallDev
	case r.remove:
		return TokenUninstall
	case r.dev:
		return TokenInstallDev
	default:
		return TokenInstall
	}
}

// isOutdated reports whether the declared version is older than target.
// Ranges are reduced to their version (~1.4.1 is 1.4.1). Declarations that
// are not versions, like tags or urls, are outdated unless they equal target.
func isOutdated(declared, target string) bool {
	cleaned := strings.TrimLeft(strings.TrimSpace(declared), "^~=<>v ")
	current, err := version.NewVersion(cleaned)
	if err != nil {
		return declared != target
	}
	wanted, err := version.NewVersion(target)
	if err != nil {
		return declared != target
	}
	return current.LessThan(wanted)
}

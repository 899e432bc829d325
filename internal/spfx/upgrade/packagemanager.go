package upgrade

import (
	"fmt"
	"strings"
)

// Package manager neutral verbs used at the start of command resolutions.
const (
	TokenInstall      = "install"
	TokenInstallDev   = "installDev"
	TokenUninstall    = "uninstall"
	TokenUninstallDev = "uninstallDev"
)

// PackageManager holds the concrete commands of one package manager.
type PackageManager struct {
	Name         string
	Install      string
	InstallDev   string
	Uninstall    string
	UninstallDev string
}

var (
	NPM = PackageManager{
		Name:         "npm",
		Install:      "npm i -SE",
		InstallDev:   "npm i -DE",
		Uninstall:    "npm un -S",
		UninstallDev: "npm un -D",
	}
	PNPM = PackageManager{
		Name:         "pnpm",
		Install:      "pnpm i -E",
		InstallDev:   "pnpm i -DE",
		Uninstall:    "pnpm un",
		UninstallDev: "pnpm un",
	}
	Yarn = PackageManager{
		Name:         "yarn",
		Install:      "yarn add -E",
		InstallDev:   "yarn add -DE",
		Uninstall:    "yarn remove",
		UninstallDev: "yarn remove",
	}

	// PackageManagers lists the supported package managers in display order.
	PackageManagers = []PackageManager{NPM, PNPM, Yarn}
)

// LookupPackageManager returns the package manager called name.
func LookupPackageManager(name string) (PackageManager, error) {
	for _, pm := range PackageManagers {
		if pm.Name == name {
			return pm, nil
		}
	}
	return PackageManager{}, fmt.Errorf("%s is not a supported package manager. Supported package managers are npm, pnpm and yarn", name)
}

// verbCommand pairs a neutral verb with its concrete command.
type verbCommand struct {
	verb    string
	command string
}

// commands returns the verbs in matching order. uninstallDev and installDev
// come before their prefixes uninstall and install.
func (pm PackageManager) commands() []verbCommand {
	return []verbCommand{
		{TokenUninstallDev, pm.UninstallDev},
		{TokenInstallDev, pm.InstallDev},
		{TokenUninstall, pm.Uninstall},
		{TokenInstall, pm.Install},
	}
}

// ResolveCommand replaces the verb a resolution starts with by the concrete
// command. Resolutions without a verb are returned unchanged.
func (pm PackageManager) ResolveCommand(resolution string) string {
	for _, c := range pm.commands() {
		if hasWordPrefix(resolution, c.verb) {
			return c.command + resolution[len(c.verb):]
		}
	}
	return resolution
}

// ParseCommand splits a concrete command produced by ResolveCommand into its
// verb and package arguments. ok is false for commands of other tools.
func (pm PackageManager) ParseCommand(command string) (verb string, packages []string, ok bool) {
	for _, c := range pm.commands() {
		if strings.HasPrefix(command, c.command+" ") {
			return c.verb, strings.Fields(command[len(c.command):]), true
		}
	}
	return "", nil, false
}

// Command joins the concrete command for verb with packages.
func (pm PackageManager) Command(verb string, packages []string) string {
	for _, c := range pm.commands() {
		if c.verb == verb {
			return strings.Join(append([]string{c.command}, packages...), " ")
		}
	}
	return ""
}

func hasWordPrefix(s, word string) bool {
	return s == word || strings.HasPrefix(s, word+" ")
}

package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPackageManager(t *testing.T) {
	for _, name := range []string{"npm", "pnpm", "yarn"} {
		pm, err := LookupPackageManager(name)
		require.NoError(t, err)
		assert.Equal(t, name, pm.Name)
	}

	_, err := LookupPackageManager("bower")
	assert.EqualError(t, err, "bower is not a supported package manager. Supported package managers are npm, pnpm and yarn")
}

func TestResolveCommandNeedsWholeVerb(t *testing.T) {
	assert.Equal(t, "installer foo", NPM.ResolveCommand("installer foo"))
	assert.Equal(t, "npm i -SE", NPM.ResolveCommand("install"))
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		pm       PackageManager
		command  string
		verb     string
		packages []string
		ok       bool
	}{
		{NPM, "npm i -SE a@1.0.0 b@1.0.0", TokenInstall, []string{"a@1.0.0", "b@1.0.0"}, true},
		{NPM, "npm i -DE a@1.0.0", TokenInstallDev, []string{"a@1.0.0"}, true},
		{NPM, "npm un -S a", TokenUninstall, []string{"a"}, true},
		{NPM, "npm un -D a", TokenUninstallDev, []string{"a"}, true},
		{NPM, "npm dedupe", "", nil, false},
		{Yarn, "yarn add -DE a@1.0.0", TokenInstallDev, []string{"a@1.0.0"}, true},
		{Yarn, "yarn remove a", TokenUninstallDev, []string{"a"}, true},
		{PNPM, "rm config/tslint.json", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			verb, packages, ok := tt.pm.ParseCommand(tt.command)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.verb, verb)
			assert.Equal(t, tt.packages, packages)
		})
	}
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "npm i -SE a@1.0.0 b@1.0.0", NPM.Command(TokenInstall, []string{"a@1.0.0", "b@1.0.0"}))
	assert.Equal(t, "pnpm un a", PNPM.Command(TokenUninstallDev, []string{"a"}))
	assert.Equal(t, "", NPM.Command("link", nil))
}

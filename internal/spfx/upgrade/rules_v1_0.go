package upgrade

import (
	"github.com/o365cli/o365/internal/spfx/project"
)

func rulesV101() []Rule {
	return []Rule{
		spCoreLibrary("1.0.1"),
		spWebPartBase("1.0.1"),
		yoRcVersion("1.0.1"),
	}
}

func rulesV102() []Rule {
	return frameworkPackages("1.0.2")
}

const vsCodeExtensions = `{
  "recommendations": [
    "msjsdiag.debugger-for-chrome"
  ]
}`

func rulesV110() []Rule {
	return append(frameworkPackages("1.1.0"),
		typesWebpackEnv("1.12.1"),
		typesES6Promise("0.0.32"),
		NewManifestRule("FN011001", "", "requiresCustomScript", false, PropertyPresent, SeverityRequired,
			"Add requiresCustomScript to the component manifest"),
		tsConfigContains("FN012005", "compilerOptions.types", []string{"es6-promise", "webpack-env"},
			"Add es6-promise and webpack-env type definitions in tsconfig.json"),
		NewJSONPropertyRule("FN014001", project.VsCodeExtensionsPath, "recommendations",
			[]string{"msjsdiag.debugger-for-chrome"}, PropertyContains, SeverityRecommended,
			"Recommend installing the Debugger for Chrome extension in .vscode/extensions.json"),
		NewAddFileRule("FN015001", project.VsCodeExtensionsPath, ResolutionJSON, vsCodeExtensions, SeverityRecommended),
	)
}

func rulesV111() []Rule {
	return frameworkPackages("1.1.1")
}

func rulesV113() []Rule {
	return frameworkPackages("1.1.3")
}

func rulesV120() []Rule {
	return append(frameworkPackages("1.2.0"),
		schema("FN003001", project.ConfigJSONPath, "https://dev.office.com/json-schemas/spfx-build/config.2.0.schema.json"),
		NewJSONPropertyRule("FN003002", project.ConfigJSONPath, "version", "2.0", PropertySet, SeverityRequired,
			"Update version in config/config.json"),
		schema("FN004001", project.CopyAssetsJSONPath, "https://dev.office.com/json-schemas/spfx-build/copy-assets.schema.json"),
		schema("FN005001", project.DeployAzureStorageJSONPath, "https://dev.office.com/json-schemas/spfx-build/deploy-azure-storage.schema.json"),
		schema("FN006001", project.PackageSolutionJSONPath, "https://dev.office.com/json-schemas/spfx-build/package-solution.schema.json"),
		schema("FN007001", project.ServeJSONPath, "https://dev.office.com/json-schemas/core-build/serve.schema.json"),
		schema("FN008001", project.TsLintJSONPath, "https://dev.office.com/json-schemas/core-build/tslint.schema.json"),
		NewJSONPropertyRule("FN008002", project.TsLintJSONPath, "removeExistingRules", true, PropertySet, SeverityRequired,
			"Update removeExistingRules in config/tslint.json"),
		NewJSONPropertyRule("FN008003", project.TsLintJSONPath, "displayAsWarning", true, PropertySet, SeverityRecommended,
			"Report tslint issues as warnings in config/tslint.json"),
		schema("FN009001", project.WriteManifestsJSONPath, "https://dev.office.com/json-schemas/spfx-build/write-manifests.schema.json"),
	)
}

package upgrade

import (
	"github.com/o365cli/o365/internal/spfx/project"
)

const vsCodeLaunch = `{
  "version": "0.2.0",
  "configurations": [
    {
      "name": "Local workbench",
      "type": "chrome",
      "request": "launch",
      "url": "https://localhost:4321/temp/workbench.html",
      "webRoot": "${workspaceRoot}",
      "sourceMaps": true,
      "sourceMapPathOverrides": {
        "webpack:///../../../src/*": "${webRoot}/src/*",
        "webpack:///../../../../src/*": "${webRoot}/src/*",
        "webpack:///../../../../../src/*": "${webRoot}/src/*"
      },
      "runtimeArgs": [
        "--remote-debugging-port=9222"
      ]
    },
    {
      "name": "Hosted workbench",
      "type": "chrome",
      "request": "launch",
      "url": "https://enter-your-SharePoint-site/_layouts/workbench.aspx",
      "webRoot": "${workspaceRoot}",
      "sourceMaps": true,
      "sourceMapPathOverrides": {
        "webpack:///../../../src/*": "${webRoot}/src/*",
        "webpack:///../../../../src/*": "${webRoot}/src/*",
        "webpack:///../../../../../src/*": "${webRoot}/src/*"
      },
      "runtimeArgs": [
        "--remote-debugging-port=9222",
        "-incognito"
      ]
    }
  ]
}`

func rulesV130() []Rule {
	rules := append(frameworkPackages("1.3.0"), extensionPackages("1.3.0")...)
	return append(rules,
		NewAddFileRule("FN015002", project.VsCodeLaunchPath, ResolutionJSON, vsCodeLaunch, SeverityRecommended),
	)
}

func rulesV131() []Rule {
	return append(frameworkPackages("1.3.1"), extensionPackages("1.3.1")...)
}

func rulesV132() []Rule {
	return append(frameworkPackages("1.3.2"), extensionPackages("1.3.2")...)
}

func rulesV134() []Rule {
	return append(frameworkPackages("1.3.4"), extensionPackages("1.3.4")...)
}

func rulesV140() []Rule {
	rules := append(frameworkPackages("1.4.0"), extensionPackages("1.4.0")...)
	return append(rules,
		spLodashSubset("1.4.0"),
		spOfficeUIFabricCore("1.4.0"),
		ajv("5.2.2"),
		NewJSONPropertyRule("FN006002", project.PackageSolutionJSONPath, "solution.includeClientSideAssets", true,
			PropertySet, SeverityRequired, "Package client-side assets with the solution in config/package-solution.json"),
		NewJSONPropertyRule("FN007002", project.ServeJSONPath, "initialPage", "https://localhost:5432/workbench",
			PropertySet, SeverityRequired, "Update initialPage in config/serve.json"),
		tsConfigValue("FN012003", "compilerOptions.skipLibCheck", true, "Skip type checking of declaration files in tsconfig.json"),
		tsConfigContains("FN012006", "compilerOptions.lib", []string{"es5", "dom", "es2015.collection"},
			"Add es5, dom and es2015.collection libs in tsconfig.json"),
	)
}

func rulesV141() []Rule {
	rules := append(frameworkPackages("1.4.1"), extensionPackages("1.4.1")...)
	return append(rules,
		spLodashSubset("1.4.1"),
		spOfficeUIFabricCore("1.4.1"),
		typesReact("15.6.6"),
		typesReactDom("15.5.6"),
		react("15.6.2"),
		reactDom("15.6.2"),
		NewJSONPropertyRule("FN010002", project.YoRcJSONPath, "@microsoft/generator-sharepoint.environment", "spo",
			PropertyPresent, SeverityRecommended, "Set the target environment in .yo-rc.json"),
	)
}

func rulesV150() []Rule {
	rules := append(frameworkPackages("1.5.0"), extensionPackages("1.5.0")...)
	return append(rules,
		spLodashSubset("1.5.0"),
		spOfficeUIFabricCore("1.5.0"),
		tsConfigValue("FN012001", "compilerOptions.module", "esnext", "Update module type in tsconfig.json"),
		tsConfigValue("FN012002", "compilerOptions.moduleResolution", "node", "Update moduleResolution in tsconfig.json"),
		tsConfigContains("FN012004", "compilerOptions.typeRoots", []string{"./node_modules/@types", "./node_modules/@microsoft"},
			"Add type roots in tsconfig.json"),
	)
}

func rulesV151() []Rule {
	rules := append(frameworkPackages("1.5.1"), extensionPackages("1.5.1")...)
	return append(rules,
		spLodashSubset("1.5.1"),
		spOfficeUIFabricCore("1.5.1"),
	)
}

package upgrade

import (
	"github.com/o365cli/o365/internal/spfx/project"
)

const (
	msGraphClientUsage = `this.context.msGraphClientFactory
  .getClient()
  .then((client: MSGraphClient): void => {
  });`

	aadHttpClientUsage = `this.context.aadHttpClientFactory
  .getClient('https://contoso.azurewebsites.net')
  .then((client: AadHttpClient): void => {
  });`

	sassGridSuppression = "build.addSuppression(`Warning - [sass] The local CSS class 'ms-Grid' is not camelCase and will not be type-safe.`);"
)

func rulesV160() []Rule {
	rules := append(frameworkPackages("1.6.0"), extensionPackages("1.6.0")...)
	return append(rules,
		spLodashSubset("1.6.0"),
		spOfficeUIFabricCore("1.6.0"),
		tsConfigValue("FN012010", "compilerOptions.experimentalDecorators", true, "Enable experimental decorators in tsconfig.json"),
		tsConfigValue("FN012011", "compilerOptions.outDir", "lib", "Set the output directory in tsconfig.json"),
		tsConfigValue("FN012012", "include", []string{"src/**/*.ts"}, "Include the project sources in tsconfig.json"),
		tsConfigValue("FN012013", "exclude", []string{"node_modules", "lib"}, "Exclude build output and packages in tsconfig.json"),
		tsConfigValue("FN012014", "compilerOptions.inlineSources", false, "Disable inline sources in tsconfig.json"),
		tsConfigValue("FN012015", "compilerOptions.strictNullChecks", false, "Disable strict null checks in tsconfig.json"),
		tsConfigValue("FN012016", "compilerOptions.noUnusedLocals", false, "Disable the unused locals check in tsconfig.json"),
		NewSourceRule("FN016001", "MSGraphClient import",
			ImportedFrom("MSGraphClient", "@microsoft/sp-client-preview"),
			"import { MSGraphClient } from '@microsoft/sp-http';",
			SeverityRequired,
			"MSGraphClient is now part of @microsoft/sp-http. Import it from there instead of @microsoft/sp-client-preview"),
		NewSourceRule("FN016002", "MSGraphClient instance",
			NodeContaining("call_expression", "serviceScope.consume(MSGraphClient.serviceKey)"),
			msGraphClientUsage,
			SeverityRequired,
			"Get MSGraphClient from the msGraphClientFactory of the web part context instead of the service scope"),
		NewSourceRule("FN016003", "AadHttpClient instance",
			NodeContaining("new_expression", "new AadHttpClient("),
			aadHttpClientUsage,
			SeverityRequired,
			"Get AadHttpClient from the aadHttpClientFactory of the web part context instead of creating it"),
	)
}

func rulesV170() []Rule {
	rules := append(frameworkPackages("1.7.0"), extensionPackages("1.7.0")...)
	return append(rules,
		spLodashSubset("1.7.0"),
		spOfficeUIFabricCore("1.7.0"),
		react("16.3.2"),
		reactDom("16.3.2"),
		typesReact("16.4.2"),
		typesReactDom("16.0.5"),
		tsConfigContains("FN012017", "compilerOptions.lib", []string{"es2015.promise"}, "Add es2015.promise lib in tsconfig.json"),
		NewGulpfileRule("FN013001", "gulpfile.js ms-Grid sass suppression", sassGridSuppression, SeverityRecommended,
			"Suppress the ms-Grid sass warning in gulpfile.js"),
	)
}

func rulesV171() []Rule {
	rules := append(frameworkPackages("1.7.1"), extensionPackages("1.7.1")...)
	return append(rules,
		spLodashSubset("1.7.1"),
		spOfficeUIFabricCore("1.7.1"),
	)
}

const rootTsLint = `{
  "extends": "@microsoft/sp-tslint-rules/base-tslint.json",
  "rules": {
    "class-name": false,
    "export-name": false,
    "forin": false,
    "label-position": false,
    "member-access": true,
    "no-arg": false,
    "no-console": false,
    "no-construct": false,
    "no-duplicate-variable": true,
    "no-eval": false,
    "no-function-expression": true,
    "no-internal-module": true,
    "no-shadowed-variable": true,
    "no-switch-case-fall-through": true,
    "no-unnecessary-semicolons": true,
    "no-unused-expression": true,
    "no-use-before-declare": true,
    "no-with-statement": true,
    "semicolon": true,
    "trailing-comma": false,
    "typedef": false,
    "typedef-whitespace": false,
    "use-named-parameter": true,
    "variable-name": false,
    "whitespace": false
  }
}`

func rulesV180() []Rule {
	rules := append(frameworkPackages("1.8.0"), extensionPackages("1.8.0")...)
	return append(rules,
		spLodashSubset("1.8.0"),
		spOfficeUIFabricCore("1.8.0"),
		tslintMicrosoftContrib("5.0.0"),
		spTslintRules("1.8.0"),
		rushStackCompiler27("0.4.0"),
		tsConfigValue("FN012008", "extends", "./node_modules/@microsoft/rush-stack-compiler-2.7/includes/tsconfig-web.json",
			"Extend the rush stack compiler configuration in tsconfig.json"),
		NewRemoveFileRule("FN015003", project.TsLintJSONPath, SeverityRequired, "FN008001", "FN008002", "FN008003"),
		NewAddFileRule("FN015004", project.TsLintJSONRootPath, ResolutionJSON, rootTsLint, SeverityRequired),
		NewJSONPropertyRule("FN019001", project.TsLintJSONRootPath, "extends", "@microsoft/sp-tslint-rules/base-tslint.json",
			PropertySet, SeverityRequired, "Extend the SharePoint Framework tslint rules in tslint.json"),
		NewManifestRule("FN011002", "WebPart", "supportedHosts", []string{"SharePointWebPart"}, PropertyContains,
			SeverityRequired, "Add SharePointWebPart to the hosts supported by the web part"),
	)
}

func rulesV181() []Rule {
	rules := append(frameworkPackages("1.8.1"), extensionPackages("1.8.1")...)
	return append(rules,
		spLodashSubset("1.8.1"),
		spOfficeUIFabricCore("1.8.1"),
	)
}

func rulesV182() []Rule {
	rules := append(frameworkPackages("1.8.2"), extensionPackages("1.8.2")...)
	return append(rules,
		spLodashSubset("1.8.2"),
		spOfficeUIFabricCore("1.8.2"),
	)
}

package upgrade

import (
	"strings"

	"github.com/o365cli/o365/internal/spfx/project"
)

// Rules shared by several releases. A finding id always means the same check,
// whichever release reports it, so dedup can drop repeats.

func spCoreLibrary(v string) Rule {
	return NewDependencyRule("FN001001", "@microsoft/sp-core-library", v)
}

func spLodashSubset(v string) Rule {
	return NewOptionalDependencyRule("FN001002", "@microsoft/sp-lodash-subset", v)
}

func spOfficeUIFabricCore(v string) Rule {
	return NewOptionalDependencyRule("FN001003", "@microsoft/sp-office-ui-fabric-core", v)
}

func spWebPartBase(v string) Rule {
	return NewOptionalDependencyRule("FN001004", "@microsoft/sp-webpart-base", v)
}

func typesReact(v string) Rule {
	return NewOptionalDependencyRule("FN001005", "@types/react", v)
}

func typesReactDom(v string) Rule {
	return NewOptionalDependencyRule("FN001006", "@types/react-dom", v)
}

func typesWebpackEnv(v string) Rule {
	return NewDependencyRule("FN001007", "@types/webpack-env", v)
}

func react(v string) Rule {
	return NewOptionalDependencyRule("FN001008", "react", v)
}

func reactDom(v string) Rule {
	return NewOptionalDependencyRule("FN001009", "react-dom", v)
}

func typesES6Promise(v string) Rule {
	return NewDependencyRule("FN001010", "@types/es6-promise", v)
}

func spDialog(v string) Rule {
	return NewOptionalDependencyRule("FN001011", "@microsoft/sp-dialog", v)
}

func spApplicationBase(v string) Rule {
	return NewOptionalDependencyRule("FN001012", "@microsoft/sp-application-base", v)
}

func decorators(v string) Rule {
	return NewOptionalDependencyRule("FN001013", "@microsoft/decorators", v)
}

func spListViewExtensibility(v string) Rule {
	return NewOptionalDependencyRule("FN001014", "@microsoft/sp-listview-extensibility", v)
}

func spBuildWeb(v string) Rule {
	return NewDevDependencyRule("FN002001", "@microsoft/sp-build-web", v)
}

func spModuleInterfaces(v string) Rule {
	return NewDevDependencyRule("FN002002", "@microsoft/sp-module-interfaces", v)
}

func spWebPartWorkbench(v string) Rule {
	return NewDevDependencyRule("FN002003", "@microsoft/sp-webpart-workbench", v)
}

func ajv(v string) Rule {
	return NewDevDependencyRule("FN002004", "ajv", v)
}

func tslintMicrosoftContrib(v string) Rule {
	return NewDevDependencyRule("FN002005", "tslint-microsoft-contrib", v)
}

func spTslintRules(v string) Rule {
	return NewDevDependencyRule("FN002006", "@microsoft/sp-tslint-rules", v)
}

func rushStackCompiler27(v string) Rule {
	return NewDevDependencyRule("FN002007", "@microsoft/rush-stack-compiler-2.7", v)
}

func yoRcVersion(v string) Rule {
	return NewYoRcVersionRule("FN010001", v)
}

// frameworkPackages bumps the packages every project depends on.
func frameworkPackages(v string) []Rule {
	return []Rule{
		spCoreLibrary(v),
		spWebPartBase(v),
		spBuildWeb(v),
		spModuleInterfaces(v),
		spWebPartWorkbench(v),
		yoRcVersion(v),
	}
}

// extensionPackages bumps the packages used by extensions, available since 1.3.0.
func extensionPackages(v string) []Rule {
	return []Rule{
		spDialog(v),
		spApplicationBase(v),
		decorators(v),
		spListViewExtensibility(v),
	}
}

func tsConfigValue(id, property string, value interface{}, description string) Rule {
	return NewJSONPropertyRule(id, project.TsConfigJSONPath, property, value, PropertySet, SeverityRequired, description)
}

func tsConfigContains(id, property string, values []string, description string) Rule {
	return NewJSONPropertyRule(id, project.TsConfigJSONPath, property, values, PropertyContains, SeverityRequired, description)
}

func schema(id, file, url string) Rule {
	return NewJSONPropertyRule(id, file, "$schema", url, PropertySet, SeverityRecommended, "Update $schema in "+strings.TrimPrefix(file, "./"))
}

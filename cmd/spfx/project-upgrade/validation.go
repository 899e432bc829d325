package projectupgrade

import (
	"fmt"
	"os"
	"strings"

	"github.com/o365cli/o365/internal/spfx/upgrade"
	"github.com/o365cli/o365/pkg/shared/config"
)

// Supported output types.
const (
	OutputJSON     = "json"
	OutputMarkdown = "md"
	OutputText     = "text"
	OutputSARIF    = "sarif"
)

var supportedOutputs = []string{OutputJSON, OutputMarkdown, OutputText, OutputSARIF}

// applyDefaults fills the options not given on the command line from the
// config file, falling back to npm and text.
func applyDefaults(options *RunOptions, cfg *config.Config) {
	if options.PackageManager == "" && cfg != nil {
		options.PackageManager = cfg.SPFx.PackageManager
	}
	if options.Output == "" && cfg != nil {
		options.Output = cfg.SPFx.Output
	}
	options.PackageManager = config.SetThen(options.PackageManager, upgrade.NPM.Name)
	options.Output = config.SetThen(options.Output, OutputText)
}

// validate checks the options of the project upgrade command. The target
// version is checked by the analysis, after the project root is found.
func validate(options *RunOptions) error {
	if _, err := upgrade.LookupPackageManager(options.PackageManager); err != nil {
		return err
	}

	supported := false
	for _, output := range supportedOutputs {
		if options.Output == output {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%s is not a supported output type. Supported output types are %s and %s",
			options.Output, strings.Join(supportedOutputs[:len(supportedOutputs)-1], ", "), supportedOutputs[len(supportedOutputs)-1])
	}

	if options.Path != "" {
		info, err := os.Stat(options.Path)
		if err != nil {
			return fmt.Errorf("the path does not exist: %v", options.Path)
		}
		if !info.IsDir() {
			return fmt.Errorf("the path %q is not a directory", options.Path)
		}
	}

	return nil
}

package projectupgrade

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/o365cli/o365/internal/spfx/report"
	"github.com/o365cli/o365/internal/spfx/upgrade"
	"github.com/o365cli/o365/pkg/shared/config"
	"github.com/o365cli/o365/pkg/shared/errors"
	"github.com/o365cli/o365/pkg/shared/files"
	"github.com/o365cli/o365/pkg/shared/logger"
)

// RunOptions holds the arguments for the project upgrade command.
type RunOptions struct {
	ToVersion      string `json:"to_version,omitempty"`
	PackageManager string `json:"package_manager,omitempty"`
	Output         string `json:"output,omitempty"`
	Path           string `json:"path,omitempty"`
	OutputFile     string `json:"output_file,omitempty"`
}

var (
	AppConfig    *config.Config
	opts         RunOptions
	exampleUsage = `  # Get instructions to upgrade the project in the current folder to the latest version
  o365 spfx project upgrade

  # Get instructions to upgrade the project to a specific version
  o365 spfx project upgrade --toVersion 1.6.0

  # Use yarn commands and render the report as markdown
  o365 spfx project upgrade --packageManager yarn --output md

  # Analyse a project in another folder and save the report as SARIF
  o365 spfx project upgrade --path /path/to/spfx-project --output sarif --output-file /path/to/reports`

	// ProjectUpgradeCmd represents the spfx project upgrade command.
	ProjectUpgradeCmd = &cobra.Command{
		Use:                   "upgrade [--toVersion VERSION] [--packageManager npm|pnpm|yarn] [--output json|md|text|sarif] [--path PATH] [--output-file PATH]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Example:               exampleUsage,
		Short:                 "Shows the steps to upgrade a SharePoint Framework project to a newer version",
		Long: `Shows the steps to upgrade a SharePoint Framework project to a newer version.

The project is analysed without modifying it. The report lists the packages to install,
the commands to run and the code to change in every file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := logger.NewLogger(AppConfig, "spfx-project-upgrade")
			return run(cmd.OutOrStdout(), opts, lg)
		},
	}
)

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// run analyses the project and writes the report to w or to the output file.
func run(w io.Writer, options RunOptions, lg hclog.Logger) error {
	applyDefaults(&options, AppConfig)

	if err := validate(&options); err != nil {
		lg.Error("invalid project upgrade arguments", "error", err)
		return errors.NewCommandError(options, nil, err, 1)
	}

	pm, err := upgrade.LookupPackageManager(options.PackageManager)
	if err != nil {
		return errors.NewCommandError(options, nil, err, 1)
	}

	startDir := options.Path
	if startDir == "" {
		if startDir, err = os.Getwd(); err != nil {
			return errors.NewCommandError(options, nil, fmt.Errorf("failed to determine the working directory: %w", err), 1)
		}
	}

	analysis, err := upgrade.Analyze(startDir, options.ToVersion, pm, options.Output, upgrade.DefaultRegistry, lg)
	if err != nil {
		lg.Debug("project upgrade analysis failed", "error", err)
		return errors.NewCommandError(options, nil, err, exitCode(err))
	}

	out, err := render(analysis, collectMeta(analysis, lg))
	if err != nil {
		lg.Error("failed to render report", "error", err)
		return errors.NewCommandError(options, nil, err, 1)
	}

	if options.OutputFile == "" {
		fmt.Fprintln(w, out)
		return nil
	}

	outputFile, folder, err := files.DetermineFileFullPath(options.OutputFile, reportFileName(options.Output))
	if err != nil {
		return errors.NewCommandError(options, nil, err, 1)
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return errors.NewCommandError(options, nil, err, 1)
	}
	if err := files.WriteFile(outputFile, []byte(out+"\n")); err != nil {
		return errors.NewCommandError(options, nil, fmt.Errorf("failed to write report: %w", err), 1)
	}

	lg.Info("report saved", "path", outputFile, "findings", len(analysis.Rows))
	return nil
}

func render(analysis *upgrade.Analysis, meta report.ReportMeta) (string, error) {
	rows := analysis.Rows
	pm := analysis.Context.PackageManager

	switch analysis.Context.Output {
	case OutputJSON:
		return report.RenderJSON(rows)
	case OutputMarkdown:
		return report.RenderMarkdown(rows, report.BuildReportData(rows, pm), meta)
	case OutputSARIF:
		return report.RenderSARIF(rows, meta)
	default:
		return report.RenderText(report.BuildReportData(rows, pm)), nil
	}
}

func init() {
	ProjectUpgradeCmd.Flags().SetNormalizeFunc(normalizeFlagName)
	ProjectUpgradeCmd.Flags().StringVar(&opts.ToVersion, "toVersion", "", "SharePoint Framework version to upgrade the project to. Defaults to the latest supported version.")
	ProjectUpgradeCmd.Flags().StringVar(&opts.PackageManager, "packageManager", "", "Package manager used in the project: npm, pnpm or yarn. Defaults to npm.")
	ProjectUpgradeCmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output type: json, md, text or sarif. Defaults to text.")
	ProjectUpgradeCmd.Flags().StringVarP(&opts.Path, "path", "p", "", "Folder inside the project to analyse. Defaults to the current folder.")
	ProjectUpgradeCmd.Flags().StringVar(&opts.OutputFile, "output-file", "", "Path to the file or folder to save the report to instead of printing it.")
	ProjectUpgradeCmd.Flags().BoolP("help", "h", false, "Show help for the upgrade command.")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/o365cli/o365/cmd/spfx"
	"github.com/o365cli/o365/cmd/version"
	"github.com/o365cli/o365/pkg/shared/config"
	"github.com/o365cli/o365/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "o365 [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "o365 helps you manage Microsoft 365 development projects.",
		Long: `o365 helps you manage Microsoft 365 development projects from the command line,
	including analysing SharePoint Framework projects for the changes required to upgrade them.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.o365/config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(spfx.SPFxCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return errors.ExitCode(err)
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config file: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	version.Init(AppConfig)
	spfx.Init(AppConfig)
}

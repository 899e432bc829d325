package spfx

import (
	"github.com/spf13/cobra"

	projectupgrade "github.com/o365cli/o365/cmd/spfx/project-upgrade"
	"github.com/o365cli/o365/pkg/shared/config"
)

var (
	// SPFxCmd groups the SharePoint Framework commands.
	SPFxCmd = &cobra.Command{
		Use:                   "spfx [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Work with SharePoint Framework projects",
	}

	projectCmd = &cobra.Command{
		Use:                   "project [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Manage SharePoint Framework projects",
	}
)

// Init wires config into the spfx commands.
func Init(cfg *config.Config) {
	projectupgrade.Init(cfg)
}

func init() {
	projectCmd.AddCommand(projectupgrade.ProjectUpgradeCmd)
	SPFxCmd.AddCommand(projectCmd)
}

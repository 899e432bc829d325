package version

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/o365cli/o365/internal/spfx/upgrade"
	"github.com/o365cli/o365/pkg/shared"
	"github.com/o365cli/o365/pkg/shared/config"
)

var (
	AppConfig     *config.Config
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// CoreVersions holds version information for the application and the
// SharePoint Framework releases it can upgrade projects to.
type CoreVersions struct {
	Versions     shared.Versions `json:"versions"`
	SPFxVersions []string        `json:"spfx_versions"`
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application",
		Run: func(cmd *cobra.Command, args []string) {
			version := CoreVersions{
				Versions: shared.Versions{
					Version:       CoreVersion,
					GolangVersion: GolangVersion,
					BuildTime:     BuildTime,
				},
				SPFxVersions: upgrade.SupportedVersions,
			}

			printVersionInfo(cmd.OutOrStdout(), &version)
		},
	}
}

// printVersionInfo prints the version information of the application.
func printVersionInfo(w io.Writer, versions *CoreVersions) {
	fmt.Fprintf(w, "Core Version: v%s\n", versions.Versions.Version)
	fmt.Fprintf(w, "Go Version: %s\n", versions.Versions.GolangVersion)
	fmt.Fprintf(w, "Build Time: %s\n", versions.Versions.BuildTime)
	fmt.Fprintf(w, "SharePoint Framework Versions: %s\n", strings.Join(versions.SPFxVersions, ", "))
}

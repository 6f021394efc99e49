package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the repofolio build version",
	Long: `Print the repofolio build version together with the Go toolchain and
platform it was built for. Release builds set the version with
-ldflags "-X github.com/custodia-labs/repofolio/internal/adapters/driving/cli.version=<tag>".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("repofolio version %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

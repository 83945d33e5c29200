package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		displayVersion(cmd.OutOrStdout())
	},
}

var (
	appVersion = ""
	appCommit  = ""
	appDate    = ""
	appBuiltBy = ""
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

func setApp(version, commit, date, builtBy string) {
	appVersion = version
	appCommit = commit
	appDate = date
	appBuiltBy = builtBy
}

func displayVersion(w io.Writer) {
	fmt.Fprintf(w, "mailwatch %s compiled with %s on %s/%s\n", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if appCommit != "" {
		fmt.Fprintf(w, "commit %s built on %s by %s\n", appCommit, appDate, appBuiltBy)
	}
}

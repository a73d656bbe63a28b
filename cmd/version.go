package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdepot/taskdepot/internal/conf"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf(`Version: %s
Built At: %s
Git Commit: %s
Git Author: %s
`, conf.Version, conf.BuiltAt, conf.GitCommit, conf.GitAuthor)
	},
}

func init() {
	RootCmd.AddCommand(VersionCmd)
}

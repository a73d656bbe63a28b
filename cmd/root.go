package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdepot/taskdepot/internal/conf"
)

var RootCmd = &cobra.Command{
	Use:   "taskdepot",
	Short: "Task tracking service with file attachments",
	Long: `A self-hosted task tracking REST service.
Tasks live in a SQL store, attachment content in an object store (local disk or S3).`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&conf.ConfigFile, "config", "data/config.json", "config file")
}

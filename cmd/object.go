// Handles the "oss object" command. This command exists solely to contain
// object-level subcommands (get, put, rm, head).

package cmd

import (
	"github.com/spf13/cobra"
)

// objectCmd represents the object command
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Object interaction",
	Long:  `Commands for uploading, downloading and inspecting single objects.`,
}

func init() {
	rootCmd.AddCommand(objectCmd)
}

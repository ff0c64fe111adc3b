// Handles the "oss bucket" command. This command exists solely to contain
// bucket-level subcommands (ls, create, rm).

package cmd

import (
	"github.com/spf13/cobra"
)

// bucketCmd represents the bucket command
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Bucket interaction",
	Long:  `Commands for creating, removing and listing buckets.`,
}

func init() {
	rootCmd.AddCommand(bucketCmd)
}

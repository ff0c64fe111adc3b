// Handles the "oss bucket rm" command

package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var bucketRemoveCmd = &cobra.Command{
	Use:   "rm <bucket>",
	Short: "Delete an empty bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mgr.Client.DeleteBucket(context.Background(), args[0]); err != nil {
			return errors.Wrap(err, "Remove command failed")
		}
		mgr.Logger.Infof("Deleted bucket %s", args[0])
		return nil
	},
}

func init() {
	bucketCmd.AddCommand(bucketRemoveCmd)
}

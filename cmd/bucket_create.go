// Handles the "oss bucket create" command

package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var bucketCreateCmd = &cobra.Command{
	Use:   "create <bucket>",
	Short: "Create a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mgr.Client.CreateBucket(context.Background(), args[0]); err != nil {
			return errors.Wrap(err, "Create command failed")
		}
		mgr.Logger.Infof("Created bucket %s", args[0])
		return nil
	},
}

func init() {
	bucketCmd.AddCommand(bucketCreateCmd)
}

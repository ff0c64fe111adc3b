// Handles the "oss object rm" command

package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var objectRemoveCmdConfig struct {
	bucket string
	key    string
}

var objectRemoveCmd = &cobra.Command{
	Use:   "rm",
	Short: "Delete an object",
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket(objectRemoveCmdConfig.bucket)
		if err != nil {
			return err
		}

		if err := mgr.Client.DeleteObject(context.Background(), bucket, objectRemoveCmdConfig.key); err != nil {
			return errors.Wrap(err, "Remove command failed")
		}
		mgr.Logger.Infof("Deleted %s/%s", bucket, objectRemoveCmdConfig.key)
		return nil
	},
}

func init() {
	objectCmd.AddCommand(objectRemoveCmd)
	objectRemoveCmd.Flags().StringVarP(&objectRemoveCmdConfig.bucket, "bucket", "b", "", "bucket holding the object")
	objectRemoveCmd.Flags().StringVarP(&objectRemoveCmdConfig.key, "key", "k", "", "object key")
	objectRemoveCmd.MarkFlagRequired("key")
}

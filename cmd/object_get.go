// Handles the "oss object get" command

package cmd

import (
	"context"
	"io/ioutil"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var objectGetCmdConfig struct {
	bucket string
	key    string
	output string
}

var objectGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Download an object",
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket(objectGetCmdConfig.bucket)
		if err != nil {
			return err
		}

		raw, err := mgr.Client.GetObject(context.Background(), bucket, objectGetCmdConfig.key)
		if err != nil {
			return errors.Wrap(err, "Get command failed")
		}

		output := objectGetCmdConfig.output
		if output == "" {
			output = path.Base(objectGetCmdConfig.key)
		}
		if output == "-" {
			_, err = os.Stdout.Write(raw)
			return err
		}
		if err := ioutil.WriteFile(output, raw, 0644); err != nil {
			return errors.Wrap(err, "Failed to write output file")
		}
		mgr.Logger.Infof("Downloaded %s/%s to %s", bucket, objectGetCmdConfig.key, output)
		return nil
	},
}

func init() {
	objectCmd.AddCommand(objectGetCmd)
	objectGetCmd.Flags().StringVarP(&objectGetCmdConfig.bucket, "bucket", "b", "", "bucket holding the object")
	objectGetCmd.Flags().StringVarP(&objectGetCmdConfig.key, "key", "k", "", "object key")
	objectGetCmd.Flags().StringVarP(&objectGetCmdConfig.output, "output", "o", "", "output file ('-' for stdout, default is the key basename)")
	objectGetCmd.MarkFlagRequired("key")
}

// Handles the "oss object put" command

package cmd

import (
	"context"
	"io/ioutil"
	"mime"
	"path"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var objectPutCmdConfig struct {
	bucket      string
	key         string
	file        string
	contentType string
}

var objectPutCmd = &cobra.Command{
	Use:   "put",
	Short: "Upload a file as an object",
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket(objectPutCmdConfig.bucket)
		if err != nil {
			return err
		}

		raw, err := ioutil.ReadFile(objectPutCmdConfig.file)
		if err != nil {
			return errors.Wrap(err, "Failed to read input file")
		}

		key := objectPutCmdConfig.key
		if key == "" {
			key = path.Base(objectPutCmdConfig.file)
		}
		contentType := objectPutCmdConfig.contentType
		if contentType == "" {
			contentType = mime.TypeByExtension(path.Ext(objectPutCmdConfig.file))
		}

		if err := mgr.Client.PutObject(context.Background(), bucket, key, raw, contentType); err != nil {
			return errors.Wrap(err, "Put command failed")
		}
		mgr.Logger.Infof("Uploaded %s to %s/%s", objectPutCmdConfig.file, bucket, key)
		return nil
	},
}

func init() {
	objectCmd.AddCommand(objectPutCmd)
	objectPutCmd.Flags().StringVarP(&objectPutCmdConfig.bucket, "bucket", "b", "", "destination bucket")
	objectPutCmd.Flags().StringVarP(&objectPutCmdConfig.key, "key", "k", "", "object key (default is the file basename)")
	objectPutCmd.Flags().StringVarP(&objectPutCmdConfig.file, "file", "f", "", "file to upload")
	objectPutCmd.Flags().StringVarP(&objectPutCmdConfig.contentType, "content-type", "t", "", "content type (default is derived from the file extension)")
	objectPutCmd.MarkFlagRequired("file")
}

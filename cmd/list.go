// Handles the "oss list" command

package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vip30/aliyun-oss/pkg/oss"
	"github.com/vip30/aliyun-oss/pkg/response"
)

var listCmdConfig struct {
	bucket    string
	prefix    string
	marker    string
	delimiter string
	maxKeys   int
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the objects in a bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket(listCmdConfig.bucket)
		if err != nil {
			return err
		}

		doc, err := mgr.Client.ListObjects(context.Background(), bucket, oss.ListOptions{
			Prefix:    listCmdConfig.prefix,
			Marker:    listCmdConfig.marker,
			Delimiter: listCmdConfig.delimiter,
			MaxKeys:   listCmdConfig.maxKeys,
		})
		if err != nil {
			return errors.Wrap(err, "List command failed")
		}

		result, _ := doc["ListBucketResult"].(response.Map)
		for _, entry := range asList(result["Contents"]) {
			if fields, ok := entry.(response.Map); ok {
				fmt.Printf("%s\t%s\t%s\n", fields["LastModified"], fields["Size"], fields["Key"])
			}
		}
		if truncated, _ := result["IsTruncated"].(bool); truncated {
			fmt.Println("(truncated, rerun with --marker set to the last key)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listCmdConfig.bucket, "bucket", "b", "", "bucket to list")
	listCmd.Flags().StringVarP(&listCmdConfig.prefix, "prefix", "p", "", "only keys with this prefix")
	listCmd.Flags().StringVarP(&listCmdConfig.marker, "marker", "m", "", "start listing after this key")
	listCmd.Flags().StringVarP(&listCmdConfig.delimiter, "delimiter", "d", "", "group keys by this delimiter")
	listCmd.Flags().IntVarP(&listCmdConfig.maxKeys, "max-keys", "n", 0, "cap on returned keys (service default when 0)")
}

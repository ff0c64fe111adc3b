// Handles the "oss object head" command

package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var objectHeadCmdConfig struct {
	bucket string
	key    string
}

var objectHeadCmd = &cobra.Command{
	Use:   "head",
	Short: "Print the metadata headers of an object",
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket(objectHeadCmdConfig.bucket)
		if err != nil {
			return err
		}

		header, err := mgr.Client.HeadObject(context.Background(), bucket, objectHeadCmdConfig.key)
		if err != nil {
			return errors.Wrap(err, "Head command failed")
		}

		names := make([]string, 0, len(header))
		for name := range header {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s: %s\n", name, header.Get(name))
		}
		return nil
	},
}

func init() {
	objectCmd.AddCommand(objectHeadCmd)
	objectHeadCmd.Flags().StringVarP(&objectHeadCmdConfig.bucket, "bucket", "b", "", "bucket holding the object")
	objectHeadCmd.Flags().StringVarP(&objectHeadCmdConfig.key, "key", "k", "", "object key")
	objectHeadCmd.MarkFlagRequired("key")
}

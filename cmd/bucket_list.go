// Handles the "oss bucket ls" command

package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vip30/aliyun-oss/pkg/response"
)

var bucketListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the buckets owned by the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := mgr.Client.ListBuckets(context.Background())
		if err != nil {
			return errors.Wrap(err, "List command failed")
		}

		result, _ := doc["ListAllMyBucketsResult"].(response.Map)
		buckets, _ := result["Buckets"].(response.Map)
		for _, bucket := range asList(buckets["Bucket"]) {
			if fields, ok := bucket.(response.Map); ok {
				fmt.Printf("%s\t%s\n", fields["CreationDate"], fields["Name"])
			}
		}
		return nil
	},
}

// asList normalizes the single-child case, where the decoder yields a bare
// Map instead of a one-element List.
func asList(node interface{}) response.List {
	switch v := node.(type) {
	case response.List:
		return v
	case nil:
		return nil
	default:
		return response.List{v}
	}
}

func init() {
	bucketCmd.AddCommand(bucketListCmd)
}

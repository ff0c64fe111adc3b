// Handles the "oss presign" command

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var presignCmdConfig struct {
	bucket    string
	key       string
	expiresIn time.Duration
}

var presignCmd = &cobra.Command{
	Use:   "presign",
	Short: "Generate a pre-signed URL for an object",
	Long: `Builds a URL carrying an embedded expiry and signature so the object
can be fetched without credentials until the expiry passes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket(presignCmdConfig.bucket)
		if err != nil {
			return err
		}

		expires := time.Now().Add(presignCmdConfig.expiresIn)
		fmt.Println(mgr.Client.SignURL(bucket, presignCmdConfig.key, expires))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presignCmd)
	presignCmd.Flags().StringVarP(&presignCmdConfig.bucket, "bucket", "b", "", "bucket holding the object")
	presignCmd.Flags().StringVarP(&presignCmdConfig.key, "key", "k", "", "object key")
	presignCmd.Flags().DurationVarP(&presignCmdConfig.expiresIn, "expires-in", "e", time.Hour, "how long the URL stays valid")
	presignCmd.MarkFlagRequired("key")
}

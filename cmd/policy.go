// Handles the "oss policy" command

package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vip30/aliyun-oss/pkg/sign"
)

var policyCmdConfig struct {
	file string
}

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Sign an upload policy for browser-based form uploads",
	Long: `Reads a JSON policy document, Base64-encodes it and signs the encoded
text. The printed policy and signature embed directly into a multipart
upload form. The JSON is signed byte for byte as found in the file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := ioutil.ReadFile(policyCmdConfig.file)
		if err != nil {
			return errors.Wrap(err, "Failed to read policy document")
		}

		encoded, signature := sign.SignPolicyJSON(raw, mgr.Cfg.GetString("access-key-secret"))
		fmt.Println("policy: " + encoded)
		fmt.Println("signature: " + signature)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(policyCmd)
	policyCmd.Flags().StringVarP(&policyCmdConfig.file, "file", "f", "", "path to the JSON policy document")
	policyCmd.MarkFlagRequired("file")
}

// Helpers shared by the subcommands.
package cmd

import "github.com/pkg/errors"

// requireBucket resolves the bucket to operate on: the flag wins, then the
// configured default.
func requireBucket(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if bucket := mgr.DefaultBucket(); bucket != "" {
		return bucket, nil
	}
	return "", errors.New("no bucket given and none configured")
}

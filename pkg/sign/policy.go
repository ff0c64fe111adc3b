package sign

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// PostPolicy is the upload-conditions document signed for browser-based
// form uploads. The service enforces no fixed condition vocabulary here;
// conditions keep whatever shape and order the caller built.
type PostPolicy struct {
	Conditions []interface{} `json:"conditions"`
	Expiration string        `json:"expiration"`
}

// SignPolicy serializes policy to JSON, Base64-encodes that text, and signs
// the encoded form. Both results embed directly in a multipart upload form.
func SignPolicy(policy PostPolicy, secret string) (encoded, signature string, err error) {
	raw, err := json.Marshal(policy)
	if err != nil {
		return "", "", errors.Wrap(err, "serializing post policy")
	}
	encoded, signature = SignPolicyJSON(raw, secret)
	return encoded, signature, nil
}

// SignPolicyJSON signs an already-serialized policy document. The JSON text
// is used byte for byte; no keys are re-sorted. The signature covers the
// Base64-encoded text, not the raw JSON.
func SignPolicyJSON(raw []byte, secret string) (encoded, signature string) {
	encoded = base64.StdEncoding.EncodeToString(raw)
	signature = Sign(secret, encoded)
	return encoded, signature
}

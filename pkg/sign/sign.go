package sign

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"strconv"
)

// Sign computes Base64(HMAC-SHA1(secret, msg)). It is total over any byte
// inputs and has no state; identical arguments always produce the same
// signature.
func Sign(secret, msg string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(msg))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Authorization builds the value of the Authorization header for a signed
// request.
func Authorization(keyID, secret string, req Request) string {
	return "OSS " + keyID + ":" + Sign(secret, CanonicalString(req))
}

// URL builds a pre-signed GET URL granting time-limited access to an
// object. expires is an absolute unix timestamp; it rides in the Date slot
// of the canonical string as decimal ASCII, not as an RFC date. The
// signature is percent-encoded in the query, including '/' and '+'.
func URL(keyID, secret, scheme, host, bucket, object string, expires int64) string {
	exp := strconv.FormatInt(expires, 10)
	canonical := CanonicalString(Request{
		Verb:     "GET",
		Resource: "/" + bucket + "/" + object,
		Headers:  map[string]string{"Date": exp},
	})

	query := url.Values{}
	query.Set("Expires", exp)
	query.Set("OSSAccessKeyId", keyID)
	query.Set("Signature", Sign(secret, canonical))

	signed := url.URL{
		Scheme:   scheme,
		Host:     bucket + "." + host,
		Path:     "/" + object,
		RawQuery: query.Encode(),
	}
	return signed.String()
}

package oss

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/vip30/aliyun-oss/pkg/sign"
)

// GetObject fetches the full contents of bucket/key.
func (c *Client) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	resp, err := c.do(ctx, c.objectRequest(http.MethodGet, bucket, key, nil, nil))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s/%s", bucket, key)
	}
	return raw, nil
}

// PutObject uploads body to bucket/key. The Content-MD5 header is always
// set so the service verifies the payload end to end.
func (c *Client) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	req := c.objectRequest(http.MethodPut, bucket, key, nil, body)
	sum := md5.Sum(body)
	req.Headers["Content-MD5"] = base64.StdEncoding.EncodeToString(sum[:])
	if contentType != "" {
		req.Headers["Content-Type"] = contentType
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// HeadObject returns the response headers for bucket/key without fetching
// the body.
func (c *Client) HeadObject(ctx context.Context, bucket, key string) (http.Header, error) {
	resp, err := c.do(ctx, c.objectRequest(http.MethodHead, bucket, key, nil, nil))
	if err != nil {
		return nil, err
	}
	resp.Body.Close()
	return resp.Header, nil
}

// DeleteObject removes bucket/key. Deleting a missing key is not an error
// on the service side.
func (c *Client) DeleteObject(ctx context.Context, bucket, key string) error {
	resp, err := c.do(ctx, c.objectRequest(http.MethodDelete, bucket, key, nil, nil))
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// SignURL returns a pre-signed URL for anonymous, time-limited GET access
// to bucket/key.
func (c *Client) SignURL(bucket, key string, expires time.Time) string {
	return sign.URL(c.creds.AccessKeyID, c.creds.AccessKeySecret,
		c.scheme, c.host, bucket, key, expires.Unix())
}

// SignPostPolicy signs an upload policy for browser-based form uploads to
// this account.
func (c *Client) SignPostPolicy(policy sign.PostPolicy) (encoded, signature string, err error) {
	return sign.SignPolicy(policy, c.creds.AccessKeySecret)
}

func (c *Client) objectRequest(verb, bucket, key string, sub map[string]string, body []byte) sign.Request {
	// Path stays unescaped here; url.URL escapes it exactly once when the
	// wire request is built.
	return sign.Request{
		Verb:         verb,
		Host:         c.bucketHost(bucket),
		Path:         "/" + key,
		Resource:     "/" + bucket + "/" + key,
		Headers:      map[string]string{},
		SubResources: sub,
		Body:         body,
	}
}

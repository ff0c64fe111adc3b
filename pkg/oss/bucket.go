package oss

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vip30/aliyun-oss/pkg/response"
	"github.com/vip30/aliyun-oss/pkg/sign"
)

// ListOptions narrow an object listing. Zero values are omitted from the
// request.
type ListOptions struct {
	Prefix    string
	Marker    string
	Delimiter string
	MaxKeys   int
}

// ListObjects lists the contents of a bucket. The result is the decoded
// ListBucketResult document with the documented field types applied, so
// doc["ListBucketResult"].(response.Map)["IsTruncated"] is a bool and
// "MaxKeys" an int64.
func (c *Client) ListObjects(ctx context.Context, bucket string, opt ListOptions) (response.Map, error) {
	params := map[string]string{}
	if opt.Prefix != "" {
		params["prefix"] = opt.Prefix
	}
	if opt.Marker != "" {
		params["marker"] = opt.Marker
	}
	if opt.Delimiter != "" {
		params["delimiter"] = opt.Delimiter
	}
	if opt.MaxKeys > 0 {
		params["max-keys"] = strconv.Itoa(opt.MaxKeys)
	}

	req := c.bucketRequest(http.MethodGet, bucket, nil)
	req.Params = params

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

// ListBuckets lists the buckets owned by the account.
func (c *Client) ListBuckets(ctx context.Context) (response.Map, error) {
	resp, err := c.do(ctx, sign.Request{
		Verb:     http.MethodGet,
		Host:     c.host,
		Path:     "/",
		Resource: "/",
		Headers:  map[string]string{},
	})
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

// CreateBucket creates a bucket on this endpoint.
func (c *Client) CreateBucket(ctx context.Context, bucket string) error {
	resp, err := c.do(ctx, c.bucketRequest(http.MethodPut, bucket, nil))
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// DeleteBucket removes an empty bucket.
func (c *Client) DeleteBucket(ctx context.Context, bucket string) error {
	resp, err := c.do(ctx, c.bucketRequest(http.MethodDelete, bucket, nil))
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// BucketACL fetches the access control document of a bucket via the acl
// sub-resource.
func (c *Client) BucketACL(ctx context.Context, bucket string) (response.Map, error) {
	sub := map[string]string{"acl": ""}
	resp, err := c.do(ctx, c.bucketRequest(http.MethodGet, bucket, sub))
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

func (c *Client) bucketRequest(verb, bucket string, sub map[string]string) sign.Request {
	return sign.Request{
		Verb:         verb,
		Host:         c.bucketHost(bucket),
		Path:         "/",
		Resource:     "/" + bucket + "/",
		Headers:      map[string]string{},
		SubResources: sub,
	}
}

// Package oss is a client for the Aliyun OSS object-storage HTTP API.
// Requests are signed with the header auth scheme from pkg/sign and XML
// responses decode through pkg/response. The client keeps no state beyond
// its endpoint and credentials; operations are safe to call concurrently.
package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vip30/aliyun-oss/pkg/response"
	"github.com/vip30/aliyun-oss/pkg/sign"
)

// Credentials identify the account every request is signed for.
type Credentials struct {
	AccessKeyID     string
	AccessKeySecret string
}

type Client struct {
	scheme string
	host   string
	creds  Credentials
	http   *http.Client
	log    logrus.FieldLogger
}

// New builds a client for an endpoint such as
// "oss-cn-hangzhou.aliyuncs.com" or "https://oss-cn-hangzhou.aliyuncs.com".
// Endpoint and credentials are injected here once; nothing in the client
// reads process-wide configuration. A nil logger falls back to the logrus
// standard logger.
func New(endpoint string, creds Credentials, logger logrus.FieldLogger) (*Client, error) {
	scheme, host, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", endpoint)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		scheme: scheme,
		host:   host,
		creds:  creds,
		http:   &http.Client{},
		log:    logger,
	}, nil
}

// parseEndpoint accepts a bare host or an http(s) URL with no path, query
// or fragment. A bare host defaults to https.
func parseEndpoint(endpoint string) (scheme, host string, err error) {
	raw := strings.TrimSpace(endpoint)
	if raw == "" {
		return "", "", errors.New("empty endpoint")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	scheme = strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", "", errors.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", "", errors.New("missing host")
	}
	if parsed.Path != "" && parsed.Path != "/" {
		return "", "", errors.New("endpoint should not contain a path")
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", "", errors.New("endpoint should not contain a query or fragment")
	}
	return scheme, parsed.Host, nil
}

// do signs req, sends it, and returns the raw response. Responses with a
// non-2xx status are drained and converted to a *ServiceError.
func (c *Client) do(ctx context.Context, req sign.Request) (*http.Response, error) {
	if req.Headers == nil {
		req.Headers = map[string]string{}
	}
	req.Headers["Date"] = time.Now().UTC().Format(http.TimeFormat)

	target := url.URL{
		Scheme:   c.scheme,
		Host:     req.Host,
		Path:     req.Path,
		RawQuery: buildQuery(req.Params, req.SubResources),
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequest(req.Verb, target.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "building HTTP request")
	}
	httpReq = httpReq.WithContext(ctx)

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}
	httpReq.Header.Set("Authorization",
		sign.Authorization(c.creds.AccessKeyID, c.creds.AccessKeySecret, req))

	c.log.WithFields(logrus.Fields{
		"verb":     req.Verb,
		"resource": req.Resource,
	}).Debugf("string to sign:\n%s", sign.CanonicalString(req))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Verb, req.Resource)
	}
	if resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, newServiceError(resp)
	}
	return resp, nil
}

// buildQuery renders params and sub-resources as the wire query string.
// Sub-resources with no value stay bare keys (?acl, not ?acl=).
func buildQuery(params, sub map[string]string) string {
	keys := make([]string, 0, len(params)+len(sub))
	values := make(map[string]string, len(params)+len(sub))
	for key, value := range params {
		keys = append(keys, key)
		values[key] = value
	}
	for key, value := range sub {
		keys = append(keys, key)
		values[key] = value
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if value := values[key]; value != "" {
			parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
		} else {
			parts = append(parts, url.QueryEscape(key))
		}
	}
	return strings.Join(parts, "&")
}

// bucketHost returns the virtual-host form used for bucket and object
// requests.
func (c *Client) bucketHost(bucket string) string {
	return bucket + "." + c.host
}

// decodeBody runs a response body through the decode and cast pipeline.
func decodeBody(resp *http.Response) (response.Map, error) {
	defer resp.Body.Close()
	doc, err := response.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return response.Cast(doc), nil
}

// A ServiceError is the typed form of the service's XML error body.
type ServiceError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("oss: %s: %s (status %d, request %s)",
		e.Code, e.Message, e.Status, e.RequestID)
}

func newServiceError(resp *http.Response) error {
	serr := &ServiceError{Status: resp.StatusCode}

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return serr
	}
	doc, err := response.DecodeBytes(raw)
	if err != nil {
		// Not the documented error shape; keep the status code.
		return serr
	}
	if body, ok := doc["Error"].(response.Map); ok {
		serr.Code, _ = body["Code"].(string)
		serr.Message, _ = body["Message"].(string)
		serr.RequestID, _ = body["RequestId"].(string)
	}
	return serr
}

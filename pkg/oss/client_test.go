package oss

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vip30/aliyun-oss/pkg/response"
	"github.com/vip30/aliyun-oss/pkg/sign"
)

const (
	testKeyID  = "44CF9590006BF252F707"
	testSecret = "OtxrzxIsfpFjA7SwPzILwy8Bw21TLhquhboDYROV"
)

// rewriteHost sends every request to the test server regardless of the
// virtual-host bucket address the client built.
type rewriteHost struct {
	host string
}

func (rt rewriteHost) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Host == "" {
		req.Host = req.URL.Host // keep the virtual-host form on the wire
	}
	req.URL.Scheme = "http"
	req.URL.Host = rt.host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)

	c, err := New("http://oss-test.example.com", Credentials{
		AccessKeyID:     testKeyID,
		AccessKeySecret: testSecret,
	}, logger)
	require.NoError(t, err)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)
	c.http = &http.Client{Transport: rewriteHost{host: target.Host}}
	return c
}

// wireAuth recomputes the expected Authorization value from what actually
// arrived on the wire.
func wireAuth(r *http.Request, req sign.Request) string {
	if req.Headers == nil {
		req.Headers = map[string]string{}
	}
	req.Headers["Date"] = r.Header.Get("Date")
	if md5 := r.Header.Get("Content-MD5"); md5 != "" {
		req.Headers["Content-MD5"] = md5
	}
	if ctype := r.Header.Get("Content-Type"); ctype != "" {
		req.Headers["Content-Type"] = ctype
	}
	return sign.Authorization(testKeyID, testSecret, req)
}

func TestGetObject(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movie.avi", r.URL.Path)
		assert.Equal(t, "my-bucket.oss-test.example.com", r.Host)
		assert.Equal(t, wireAuth(r, sign.Request{
			Verb:     http.MethodGet,
			Resource: "/my-bucket/movie.avi",
		}), r.Header.Get("Authorization"))

		w.Write([]byte("movie bytes"))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	raw, err := c.GetObject(context.Background(), "my-bucket", "movie.avi")
	require.NoError(t, err)
	assert.Equal(t, []byte("movie bytes"), raw)
}

func TestGetObjectNestedKey(t *testing.T) {

	// Keys with slashes and spaces must arrive escaped exactly once: the
	// decoded wire path is the key itself, and the raw path never carries
	// a re-escaped percent sign.
	for key, rawPath := range map[string]string{
		"fun/movie/001.avi": "/fun/movie/001.avi",
		"my movie.avi":      "/my%20movie.avi",
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/"+key, r.URL.Path)
			assert.Equal(t, rawPath, r.URL.EscapedPath())
			assert.NotContains(t, r.RequestURI, "%25")
			assert.Equal(t, wireAuth(r, sign.Request{
				Verb:     http.MethodGet,
				Resource: "/my-bucket/" + key,
			}), r.Header.Get("Authorization"))

			w.Write([]byte("ok"))
		}))

		c := newTestClient(t, server)
		raw, err := c.GetObject(context.Background(), "my-bucket", key)
		require.NoError(t, err, key)
		assert.Equal(t, []byte("ok"), raw, key)
		server.Close()
	}
}

func TestPutObjectSignsContentHeaders(t *testing.T) {

	body := []byte("hello object store")
	sum := md5.Sum(body)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, base64.StdEncoding.EncodeToString(sum[:]), r.Header.Get("Content-MD5"))
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		assert.Equal(t, wireAuth(r, sign.Request{
			Verb:     http.MethodPut,
			Resource: "/my-bucket/hello.txt",
		}), r.Header.Get("Authorization"))

		got, err := ioutil.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, body, got)
	}))
	defer server.Close()

	c := newTestClient(t, server)
	err := c.PutObject(context.Background(), "my-bucket", "hello.txt", body, "text/plain")
	require.NoError(t, err)
}

func TestListObjectsDecodesAndCasts(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fun/", r.URL.Query().Get("prefix"))
		assert.Equal(t, "10", r.URL.Query().Get("max-keys"))

		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult>
  <Name>my-bucket</Name>
  <Prefix>fun/</Prefix>
  <MaxKeys>10</MaxKeys>
  <IsTruncated>true</IsTruncated>
  <Contents><Key>fun/movie/001.avi</Key></Contents>
  <Contents><Key>fun/movie/007.avi</Key></Contents>
</ListBucketResult>`))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	doc, err := c.ListObjects(context.Background(), "my-bucket", ListOptions{
		Prefix:  "fun/",
		MaxKeys: 10,
	})
	require.NoError(t, err)

	result, ok := doc["ListBucketResult"].(response.Map)
	require.True(t, ok)
	assert.Equal(t, true, result["IsTruncated"])
	assert.Equal(t, int64(10), result["MaxKeys"])
	assert.Equal(t, "fun/", result["Prefix"])

	contents, ok := result["Contents"].(response.List)
	require.True(t, ok)
	assert.Len(t, contents, 2)
}

func TestBucketACLUsesSubResource(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "acl", r.URL.RawQuery)
		assert.Equal(t, wireAuth(r, sign.Request{
			Verb:         http.MethodGet,
			Resource:     "/my-bucket/",
			SubResources: map[string]string{"acl": ""},
		}), r.Header.Get("Authorization"))

		w.Write([]byte(`<AccessControlPolicy><AccessControlList><Grant>private</Grant></AccessControlList></AccessControlPolicy>`))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	doc, err := c.BucketACL(context.Background(), "my-bucket")
	require.NoError(t, err)
	assert.NotNil(t, doc["AccessControlPolicy"])
}

func TestServiceErrorMapping(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>NoSuchKey</Code>
  <Message>The specified key does not exist.</Message>
  <RequestId>5C3D9175B6FC201293AD4D28</RequestId>
</Error>`))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	_, err := c.GetObject(context.Background(), "my-bucket", "missing.txt")
	require.Error(t, err)

	serr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, serr.Status)
	assert.Equal(t, "NoSuchKey", serr.Code)
	assert.Equal(t, "The specified key does not exist.", serr.Message)
	assert.Equal(t, "5C3D9175B6FC201293AD4D28", serr.RequestID)
}

func TestParseEndpoint(t *testing.T) {

	scheme, host, err := parseEndpoint("oss-cn-hangzhou.aliyuncs.com")
	require.NoError(t, err)
	assert.Equal(t, "https", scheme)
	assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", host)

	scheme, host, err = parseEndpoint("http://127.0.0.1:9000")
	require.NoError(t, err)
	assert.Equal(t, "http", scheme)
	assert.Equal(t, "127.0.0.1:9000", host)

	for _, bad := range []string{
		"",
		"ftp://example.com",
		"https://example.com/path",
		"https://example.com?x=1",
	} {
		_, _, err := parseEndpoint(bad)
		assert.Error(t, err, bad)
	}
}

package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vip30/aliyun-oss/pkg/response"
)

const listBody = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult>
  <Name>my-bucket</Name>
  <Prefix></Prefix>
  <Marker></Marker>
  <MaxKeys>100</MaxKeys>
  <IsTruncated>false</IsTruncated>
  <Contents>
    <Key>fun/movie/001.avi</Key>
    <Size>344606</Size>
    <Owner>
      <ID>0022012</ID>
      <DisplayName>user-example</DisplayName>
    </Owner>
  </Contents>
  <Contents>
    <Key>fun/movie/007.avi</Key>
    <Size>259</Size>
    <Owner>
      <ID>0022012</ID>
      <DisplayName>user-example</DisplayName>
    </Owner>
  </Contents>
</ListBucketResult>`

func TestDecodeListing(t *testing.T) {

	doc, err := response.DecodeBytes([]byte(listBody))
	require.NoError(t, err)

	result, ok := doc["ListBucketResult"].(response.Map)
	require.True(t, ok)

	// Text-only elements are strings, no type inference at decode time.
	assert.Equal(t, "my-bucket", result["Name"])
	assert.Equal(t, "100", result["MaxKeys"])
	assert.Equal(t, "false", result["IsTruncated"])
	assert.Equal(t, "", result["Prefix"])

	// Repeated siblings collect into a List in document order.
	contents, ok := result["Contents"].(response.List)
	require.True(t, ok)
	require.Len(t, contents, 2)

	first, ok := contents[0].(response.Map)
	require.True(t, ok)
	assert.Equal(t, "fun/movie/001.avi", first["Key"])

	owner, ok := first["Owner"].(response.Map)
	require.True(t, ok)
	assert.Equal(t, "user-example", owner["DisplayName"])

	second, ok := contents[1].(response.Map)
	require.True(t, ok)
	assert.Equal(t, "fun/movie/007.avi", second["Key"])
}

func TestDecodeErrorBody(t *testing.T) {

	body := `<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>NoSuchKey</Code>
  <Message>The specified key does not exist.</Message>
  <RequestId>5C3D9175B6FC201293AD4D28</RequestId>
</Error>`

	doc, err := response.DecodeBytes([]byte(body))
	require.NoError(t, err)

	// The error document is reachable with a single fixed key lookup.
	serr, ok := doc["Error"].(response.Map)
	require.True(t, ok)
	assert.Equal(t, "NoSuchKey", serr["Code"])
	assert.Equal(t, "The specified key does not exist.", serr["Message"])
}

func TestDecodeMalformed(t *testing.T) {

	cases := map[string]string{
		"truncated":    `<ListBucketResult><Name>my-bu`,
		"unclosed tag": `<ListBucketResult><Name>my-bucket</ListBucketResult>`,
		"empty":        ``,
		"text only":    `not xml at all`,
	}

	for name, body := range cases {
		doc, err := response.DecodeBytes([]byte(body))
		assert.Error(t, err, name)
		// Never partial data alongside an error.
		assert.Nil(t, doc, name)
	}
}

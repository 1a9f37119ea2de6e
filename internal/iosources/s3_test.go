package iosources

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/datablock/pkg/sources"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockS3 serves ListObjectsV2 and GetObject for path-style requests of a
// single bucket. Listing returns one key per page to exercise pagination.
type mockS3 struct {
	bucket  string
	objects map[string]string
}

func (m *mockS3) RoundTrip(req *http.Request) (*http.Response, error) {
	bucket, key, _ := strings.Cut(strings.TrimPrefix(req.URL.Path, "/"), "/")
	if bucket != m.bucket {
		return response(404, "<Error><Code>NoSuchBucket</Code></Error>"), nil
	}

	q := req.URL.Query()
	if req.Method == http.MethodGet && q.Get("list-type") == "2" {
		return m.list(q.Get("prefix"), q.Get("continuation-token")), nil
	}

	if req.Method == http.MethodGet {
		body, ok := m.objects[key]
		if !ok {
			return response(404, "<Error><Code>NoSuchKey</Code></Error>"), nil
		}
		return response(200, body), nil
	}
	return response(501, ""), nil
}

func (m *mockS3) list(prefix, token string) *http.Response {
	var keys []string
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := 0
	if token != "" {
		fmt.Sscanf(token, "page-%d", &start)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult>`)
	if start+1 < len(keys) {
		fmt.Fprintf(&b, "<IsTruncated>true</IsTruncated>"+
			"<NextContinuationToken>page-%d</NextContinuationToken>", start+1)
	} else {
		b.WriteString("<IsTruncated>false</IsTruncated>")
	}
	if start < len(keys) {
		k := keys[start]
		fmt.Fprintf(&b, "<Contents><Key>%s</Key><Size>%d</Size>"+
			"<LastModified>2025-06-01T00:00:00Z</LastModified></Contents>",
			k, len(m.objects[k]))
	}
	b.WriteString("</ListBucketResult>")
	return response(200, b.String())
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header: http.Header{
			"Content-Type":   {"application/xml"},
			"Content-Length": {fmt.Sprintf("%d", len(body))},
		},
		Body:          io.NopCloser(bytes.NewReader([]byte(body))),
		ContentLength: int64(len(body)),
	}
}

func newMockReader(t *testing.T, objects map[string]string) *reader {
	t.Helper()
	rt := &mockS3{bucket: "datablocks", objects: objects}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("AKIA", "SECRET", ""),
		),
	)
	require.NoError(t, err)

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String("https://mock.s3.local")
		o.HTTPClient = &http.Client{Transport: rt}
		o.UsePathStyle = true
	})
	return &reader{cfg: config.New(), client: client}
}

func TestS3Expand(t *testing.T) {
	assert := assert.New(t)
	r := newMockReader(t, map[string]string{
		"2025-06/b_events.json":      `{"organization":{"duns":"2"}}`,
		"2025-06/a_companyinfo.json": `{"organization":{"duns":"1"}}`,
		"2025-06/readme.txt":         "skip me",
		"2025-05/old.json":           "{}",
	})
	ctx := context.Background()

	res, err := r.Expand(ctx, []sources.Input{
		{Name: "s3://datablocks/2025-06/", Category: "eventsfilings"},
		{Name: "s3://datablocks/2025-05/old.json"},
	})
	require.NoError(t, err)
	assert.Equal([]sources.Input{
		{Name: "s3://datablocks/2025-06/a_companyinfo.json", Category: "eventsfilings"},
		{Name: "s3://datablocks/2025-06/b_events.json", Category: "eventsfilings"},
		{Name: "s3://datablocks/2025-05/old.json"},
	}, res)

	_, err = r.Expand(ctx, sources.NewInputs([]string{"s3://datablocks/2024/"}, ""))
	require.Error(t, err)
	assert.Equal(errcode.SourceNoInputError, err.(*gn.Error).Code)
}

func TestS3Read(t *testing.T) {
	assert := assert.New(t)
	r := newMockReader(t, map[string]string{
		"2025-06/a.json": `{"organization":{"duns":"540924028"}}`,
	})
	ctx := context.Background()

	data, err := r.Read(ctx, sources.Input{Name: "s3://datablocks/2025-06/a.json"})
	require.NoError(t, err)
	assert.JSONEq(`{"organization":{"duns":"540924028"}}`, string(data))

	_, err = r.Read(ctx, sources.Input{Name: "s3://datablocks/2025-06/none.json"})
	require.Error(t, err)
	assert.Equal(errcode.SourceS3Error, err.(*gn.Error).Code)

	_, err = r.Read(ctx, sources.Input{Name: "s3://other/a.json"})
	assert.Error(err)
}

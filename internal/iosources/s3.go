package iosources

import (
	"context"
	"io"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/sources"
)

// newS3Client builds a client from the standard AWS credential chain and
// the s3 section of the configuration.
func newS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	res := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return res, nil
}

func (r *reader) s3Client(ctx context.Context) (*s3.Client, error) {
	r.once.Do(func() {
		if r.client != nil {
			return
		}
		r.client, r.clientErr = newS3Client(ctx, r.cfg.S3)
	})
	return r.client, r.clientErr
}

// expandS3 lists all *.json objects under a prefix. A key that is not a
// prefix is returned unchanged without a request.
func (r *reader) expandS3(ctx context.Context, name string) ([]string, error) {
	bucket, key, err := sources.ParseS3(name)
	if err != nil {
		return nil, OpenError(name, err)
	}
	if !sources.IsPrefix(key) {
		return []string{name}, nil
	}

	client, err := r.s3Client(ctx)
	if err != nil {
		return nil, S3Error(name, err)
	}

	var res []string
	p := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(key),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, S3Error(name, err)
		}
		for _, obj := range page.Contents {
			k := aws.ToString(obj.Key)
			if sources.IsJSON(k) {
				res = append(res, "s3://"+bucket+"/"+k)
			}
		}
	}
	sort.Strings(res)
	return res, nil
}

func (r *reader) readS3(ctx context.Context, name string) ([]byte, error) {
	bucket, key, err := sources.ParseS3(name)
	if err != nil {
		return nil, OpenError(name, err)
	}

	client, err := r.s3Client(ctx)
	if err != nil {
		return nil, S3Error(name, err)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, S3Error(name, err)
	}
	defer out.Body.Close()

	res, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, S3Error(name, err)
	}
	return res, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/mep-tools/bracket-tool/internal/logger"
)

const s3Scheme = "s3://"

// s3API is the subset of the S3 client used by [s3PDFStore].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3PDFStore keeps reports as objects in one bucket. Recorded paths have
// the form s3://bucket/key.
type s3PDFStore struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3PDFStore builds an S3 client from the default AWS credential chain.
// A non-empty endpoint targets an S3-compatible service with path-style
// addressing (MinIO, Ceph).
func NewS3PDFStore(ctx context.Context, bucket, region, endpoint string, log *logger.Logger) (PDFStore, error) {
	opts := []func(*awscfg.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awscfg.WithRegion(region))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3PDFStore").Msg("error loading aws configuration")
		return nil, fmt.Errorf("error loading aws configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().Str("bucket", bucket).Str("endpoint", endpoint).Msg("creating s3 pdf store")
	return newS3PDFStore(client, bucket, log), nil
}

func newS3PDFStore(client s3API, bucket string, log *logger.Logger) *s3PDFStore {
	return &s3PDFStore{client: client, bucket: bucket, logger: log}
}

func (s *s3PDFStore) Path(fileName string) (string, error) {
	if fileName == "" || strings.ContainsAny(fileName, "/\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPDFPath, fileName)
	}
	return s3Scheme + s.bucket + "/" + fileName, nil
}

func (s *s3PDFStore) Save(ctx context.Context, fileName string, content []byte) (string, error) {
	path, err := s.Path(fileName)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(fileName),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String("application/pdf"),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "s3PDFStore.Save").
			Str("key", fileName).
			Msg("error uploading pdf")
		return "", fmt.Errorf("error uploading pdf: %w", err)
	}

	return path, nil
}

func (s *s3PDFStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(path, s3Scheme), "/")
	if !strings.HasPrefix(path, s3Scheme) || !ok || bucket != s.bucket || key == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPDFPath, path)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrPDFNotFound
		}
		return nil, fmt.Errorf("error downloading pdf: %w", err)
	}

	return out.Body, nil
}

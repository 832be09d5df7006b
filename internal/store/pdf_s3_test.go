package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mep-tools/bracket-tool/internal/logger"
)

type fakeS3 struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func TestS3PDFStore_SaveAndOpen(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := newS3PDFStore(fake, "reports", logger.Nop())

	ctx := context.Background()
	path, err := store.Save(ctx, "BKT001_P01_abc.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "s3://reports/BKT001_P01_abc.pdf", path)

	rc, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content))
}

func TestS3PDFStore_OpenMissing(t *testing.T) {
	store := newS3PDFStore(&fakeS3{objects: map[string][]byte{}}, "reports", logger.Nop())

	_, err := store.Open(context.Background(), "s3://reports/none.pdf")
	assert.ErrorIs(t, err, ErrPDFNotFound)
}

func TestS3PDFStore_OpenForeignPath(t *testing.T) {
	store := newS3PDFStore(&fakeS3{objects: map[string][]byte{}}, "reports", logger.Nop())

	for _, path := range []string{"/data/pdfs/a.pdf", "s3://other/a.pdf", "s3://reports/", "s3://reports"} {
		_, err := store.Open(context.Background(), path)
		assert.ErrorIs(t, err, ErrInvalidPDFPath, "path %q", path)
	}
}

func TestS3PDFStore_SaveError(t *testing.T) {
	store := newS3PDFStore(&fakeS3{objects: map[string][]byte{}, putErr: errors.New("denied")}, "reports", logger.Nop())

	_, err := store.Save(context.Background(), "a.pdf", []byte("x"))
	assert.Error(t, err)

	_, err = store.Save(context.Background(), "a/b.pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidPDFPath)
}

func TestS3PDFStore_Path(t *testing.T) {
	store := newS3PDFStore(&fakeS3{objects: map[string][]byte{}}, "reports", logger.Nop())

	path, err := store.Path("a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "s3://reports/a.pdf", path)

	_, err = store.Path("nested/a.pdf")
	assert.True(t, errors.Is(err, ErrInvalidPDFPath))
}

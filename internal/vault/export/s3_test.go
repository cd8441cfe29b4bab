package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault_export_test.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))
	return path
}

func TestUpload(t *testing.T) {
	var gotInput *s3.PutObjectInput

	origPut := putObject
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotInput = in
		return &s3.PutObjectOutput{}, nil
	}
	t.Cleanup(func() { putObject = origPut })

	u := NewS3Uploader(S3Config{
		Bucket:       "vault",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000/",
		RootUser:     "admin",
		RootPassword: "secretpassword",
	})

	key, err := u.Upload(context.Background(), writeTempExport(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "exports/"))
	assert.True(t, strings.HasSuffix(key, "-vault_export_test.json"))

	require.NotNil(t, gotInput)
	assert.Equal(t, "vault", aws.ToString(gotInput.Bucket))
	assert.Equal(t, key, aws.ToString(gotInput.Key))
	assert.NotNil(t, gotInput.Body)
}

func TestUpload_MissingFile(t *testing.T) {
	u := NewS3Uploader(S3Config{Bucket: "vault"})

	_, err := u.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestUpload_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("bad credentials")
	}
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	u := NewS3Uploader(S3Config{Bucket: "vault"})

	_, err := u.Upload(context.Background(), writeTempExport(t))
	require.Error(t, err)
}

func TestUpload_PutError(t *testing.T) {
	origPut := putObject
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("access denied")
	}
	t.Cleanup(func() { putObject = origPut })

	u := NewS3Uploader(S3Config{Bucket: "vault"})

	_, err := u.Upload(context.Background(), writeTempExport(t))
	require.Error(t, err)
}

func TestStorageKey_DatePartitioned(t *testing.T) {
	frozenNow(t)

	key := storageKey("export.csv")
	assert.True(t, strings.HasPrefix(key, "exports/2025/6/2/"))
	assert.True(t, strings.HasSuffix(key, "-export.csv"))
}

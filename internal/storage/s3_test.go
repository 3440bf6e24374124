package storage

import (
	"context"
	"fitmanager/routine-service/internal/config"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		BucketName:      "exercise-media",
	}
}

func TestNewS3Storage_Disabled(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := NewS3Storage(context.Background(), config.S3Config{}, log)
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestGeneratePresignedUploadURL(t *testing.T) {
	log, _ := test.NewNullLogger()
	fs, err := NewS3Storage(context.Background(), testS3Config(), log)
	require.NoError(t, err)

	raw, err := fs.GeneratePresignedUploadURL(context.Background(), "exercises/images/abc.png", "image/png", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/exercise-media/exercises/images/abc.png", u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
}

func TestPublicURL(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	fs, err := NewS3Storage(context.Background(), testS3Config(), log)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/exercise-media/a/b.mp4", fs.PublicURL("a/b.mp4"))

	cfg := testS3Config()
	cfg.PublicBaseURL = "https://cdn.example.com/media"
	fs, err = NewS3Storage(context.Background(), cfg, log)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/a/b.mp4", fs.PublicURL("/a/b.mp4"))
}

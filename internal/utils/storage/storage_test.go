package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	ref, err := s.Save(context.Background(), "lime-1.png", "image/png", bytes.NewReader([]byte("pngdata")))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/lime-1.png", ref)

	got, err := os.ReadFile(filepath.Join(dir, "lime-1.png"))
	require.NoError(t, err)
	assert.Equal(t, "pngdata", string(got))

	// No temp files left behind.
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestLocalStorageRejectsPaths(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "../escape.png", "image/png", bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, IsAllowed("image/png", AllowImage...))
	assert.True(t, IsAllowed("image/jpeg", AllowImage...))
	assert.False(t, IsAllowed("image/gif", AllowImage...))
	assert.False(t, IsAllowed("", AllowImage...))
}

func TestAwsS3Save(t *testing.T) {
	var (
		mu          sync.Mutex
		gotPath     string
		gotBody     []byte
		contentType string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotPath = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("key", "secret", ""),
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
	})
	store := newAwsS3(client, S3Config{Bucket: "cocktails", Region: "us-east-1", Endpoint: srv.URL})

	ref, err := store.Save(context.Background(), "mojito-1.jpg", "image/jpeg", bytes.NewReader([]byte("jpegdata")))
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/cocktails/uploads/mojito-1.jpg", ref)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/cocktails/uploads/mojito-1.jpg", gotPath)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Contains(t, string(gotBody), "jpegdata")
}

func TestAwsS3PublicURL(t *testing.T) {
	s := newAwsS3(nil, S3Config{Bucket: "b", Region: "eu-west-1"})
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/uploads/x.png", s.GetPublicLinkKey("uploads/x.png"))

	s = newAwsS3(nil, S3Config{Bucket: "b", PublicURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com/uploads/x.png", s.GetPublicLinkKey("uploads/x.png"))
}

func TestNewAwsS3RequiresBucket(t *testing.T) {
	_, err := NewAwsS3(context.Background(), S3Config{Region: "us-east-1"})
	assert.Error(t, err)
}

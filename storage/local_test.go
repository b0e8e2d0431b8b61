package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		invalid bool
	}{
		{in: "index.html", want: "index.html"},
		{in: "/assets/app.js", want: "assets/app.js"},
		{in: "assets//app.js", want: "assets/app.js"},
		{in: "./assets/./app.js", want: "assets/app.js"},
		{in: `assets\app.js`, want: "assets/app.js"},
		{in: "../secret", invalid: true},
		{in: "assets/../../secret", invalid: true},
		{in: "", invalid: true},
		{in: "/", invalid: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := CleanKey(tc.in)
			if tc.invalid {
				require.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestContentType(t *testing.T) {
	require.Equal(t, "text/html; charset=utf-8", ContentType("index.html"))
	require.Equal(t, "text/javascript; charset=utf-8", ContentType("assets/APP.JS"))
	require.Equal(t, "image/svg+xml", ContentType("logo.svg"))
	require.Equal(t, "application/octet-stream", ContentType("LICENSE"))
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Upload(ctx, "/assets/app.js", strings.NewReader("v1")))
	require.NoError(t, s.Upload(ctx, "assets/app.js", strings.NewReader("v2")))
	require.FileExists(t, filepath.Join(dir, "assets", "app.js"))

	r, err := s.Open(ctx, "assets/app.js")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, r.Close())
	require.NoError(t, err)
	require.Equal(t, "v2", string(data))

	require.NoError(t, s.Delete(ctx, "assets/app.js"))
	_, err = s.Open(ctx, "assets/app.js")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, "assets/app.js"))
}

func TestLocalStorage_OpenErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0755))
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = s.Open(ctx, "missing.html")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Open(ctx, "assets")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Open(ctx, "../outside.txt")
	require.ErrorIs(t, err, ErrInvalidKey)

	require.ErrorIs(t, s.Upload(ctx, "../outside.txt", strings.NewReader("x")), ErrInvalidKey)
}

func TestNewStorageFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_TYPE", "local")
	t.Setenv("STORAGE_LOCAL_PATH", dir)

	s, err := NewStorageFromEnv()
	require.NoError(t, err)
	require.IsType(t, &LocalStorage{}, s)

	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("AWS_S3_BUCKET", "")
	_, err = NewStorageFromEnv()
	require.Error(t, err)

	t.Setenv("STORAGE_TYPE", "ftp")
	_, err = NewStorageFromEnv()
	require.Error(t, err)
}

func TestLocalStorage_UploadFromOwnFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)
	require.NoError(t, s.Upload(ctx, "index.html", strings.NewReader("<html>hello</html>")))

	src, err := s.Open(ctx, "index.html")
	require.NoError(t, err)
	require.NoError(t, s.Upload(ctx, "index.html", src))
	require.NoError(t, src.Close())

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	require.Equal(t, "<html>hello</html>", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files left behind")
}

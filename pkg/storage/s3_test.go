package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/questx-lab/nftdrop/config"
	"github.com/stretchr/testify/require"
)

func Test_S3Storage_Upload(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		var err error
		gotBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	storage, err := NewS3Storage(config.S3Configs{
		Region:         "us-east-1",
		Endpoint:       server.URL,
		PublicEndpoint: "https://cdn.example.com",
		AccessKey:      "access",
		SecretKey:      "secret",
		SSLDisabled:    true,
	})
	require.NoError(t, err)

	resp, err := storage.Upload(context.Background(), &UploadObject{
		Bucket:   "reports",
		Prefix:   "nftdrop",
		FileName: "run.csv",
		Mime:     "text/csv",
		Data:     []byte("address,success\n"),
	})
	require.NoError(t, err)
	require.Equal(t, "nftdrop/run.csv", resp.FileName)
	require.Equal(t, "https://cdn.example.com/reports/nftdrop/run.csv", resp.Url)

	require.Equal(t, "/reports/nftdrop/run.csv", gotPath)
	require.Equal(t, "text/csv", gotContentType)
	require.Equal(t, "address,success\n", string(gotBody))
}

func Test_S3Storage_UploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	storage, err := NewS3Storage(config.S3Configs{
		Region:   "us-east-1",
		Endpoint: server.URL,
	})
	require.NoError(t, err)

	_, err = storage.Upload(context.Background(), &UploadObject{
		Bucket:   "reports",
		FileName: "run.csv",
		Data:     []byte("x"),
	})
	require.Error(t, err)
}

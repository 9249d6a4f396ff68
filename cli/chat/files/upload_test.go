package files

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchat/finchat/cli/chat/types"
	"github.com/finchat/finchat/internal/api"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestUploadAggregatesResults(t *testing.T) {
	var uploadedNames []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		uploadedNames = append(uploadedNames, header.Filename)
		assert.Equal(t, "finance", r.FormValue("category"))
		json.NewEncoder(w).Encode(&api.UploadedFile{FileID: "f", OriginalFilename: header.Filename})
	}))
	defer server.Close()

	dir := t.TempDir()
	good := writeTempFile(t, dir, "numbers.csv", "a,b,c")
	alsoGood := writeTempFile(t, dir, "report.xlsx", "cells")

	client := api.New(server.URL, time.Second)
	result := Upload(context.Background(), client, "finance", "", []string{
		good,
		filepath.Join(dir, "notes.txt"), // wrong extension, never sent
		alsoGood,
		filepath.Join(dir, "missing.csv"), // right extension but unreadable
	})

	assert.Equal(t, 2, result.Uploaded)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Failed)
	assert.Error(t, result.Err)
	assert.Equal(t, []string{"numbers.csv", "report.xlsx"}, uploadedNames)
}

func TestUploadValidatesBeforeNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := api.New(server.URL, time.Second)
	result := Upload(context.Background(), client, "other", "", []string{"a.txt", "b.pdf"})

	assert.Zero(t, requests)
	assert.Equal(t, types.UploadResult{Skipped: 2}, result)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "nothing to upload", summarize(types.UploadResult{}))
	assert.Equal(t, "2 uploaded", summarize(types.UploadResult{Uploaded: 2}))
	assert.Equal(t,
		"1 uploaded, 2 skipped (bad extension), 1 failed",
		summarize(types.UploadResult{Uploaded: 1, Skipped: 2, Failed: 1}),
	)
}

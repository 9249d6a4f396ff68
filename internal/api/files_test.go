package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/files/upload-category", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "finance", r.FormValue("category"))
		assert.Equal(t, "Q3 numbers", r.FormValue("description"))

		uploaded, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer uploaded.Close()
		assert.Equal(t, "report.xlsx", header.Filename)
		content, err := io.ReadAll(uploaded)
		require.NoError(t, err)
		assert.Equal(t, "cells", string(content))

		json.NewEncoder(w).Encode(&UploadedFile{
			FileID:           "file-1",
			OriginalFilename: "report.xlsx",
			Category:         "finance",
			FileSize:         5,
		})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	uploaded, err := client.UploadFile(context.Background(), &UploadFileRequest{
		Filename:    "report.xlsx",
		Content:     strings.NewReader("cells"),
		Category:    "finance",
		Description: "Q3 numbers",
	})
	require.NoError(t, err)
	assert.Equal(t, "file-1", uploaded.FileID)
	assert.Equal(t, "finance", uploaded.Category)
}

func TestListFilesByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/list-by-category", r.URL.Path)
		assert.Equal(t, "hr", r.URL.Query().Get("category"))
		json.NewEncoder(w).Encode(&FileList{
			Files:    []*UploadedFile{{FileID: "file-1", OriginalFilename: "people.csv"}},
			Total:    1,
			Category: "hr",
		})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	list, err := client.ListFilesByCategory(context.Background(), "hr")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Files, 1)
	assert.Equal(t, "people.csv", list.Files[0].OriginalFilename)
}

func TestDeleteFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/files/delete-category/file-1", r.URL.Path)
		json.NewEncoder(w).Encode(&Ack{Success: true})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	require.NoError(t, client.DeleteFile(context.Background(), "file-1"))
}

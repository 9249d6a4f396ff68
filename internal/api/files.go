package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// UploadFileRequest uploads one document into a category.
type UploadFileRequest struct {
	Filename    string
	Content     io.Reader
	Category    string
	Description string
}

// UploadFile uploads a document as multipart form data.
func (c *Client) UploadFile(ctx context.Context, request *UploadFileRequest) (*UploadedFile, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", request.Filename)
	if err != nil {
		return nil, errors.Wrap(err, "creating form file")
	}
	if _, err := io.Copy(part, request.Content); err != nil {
		return nil, errors.Wrap(err, "copying file content")
	}
	if err := writer.WriteField("category", request.Category); err != nil {
		return nil, errors.Wrap(err, "writing category field")
	}
	if request.Description != "" {
		if err := writer.WriteField("description", request.Description); err != nil {
			return nil, errors.Wrap(err, "writing description field")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "closing multipart writer")
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/upload-category", &body)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	httpRequest.Header.Set("Content-Type", writer.FormDataContentType())

	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer response.Body.Close()

	if err := checkStatus(response); err != nil {
		return nil, err
	}

	uploaded := &UploadedFile{}
	if err := json.NewDecoder(response.Body).Decode(uploaded); err != nil {
		return nil, errors.Wrap(err, "decoding response")
	}
	return uploaded, nil
}

// ListFilesByCategory lists the documents stored under a category.
func (c *Client) ListFilesByCategory(ctx context.Context, category string) (*FileList, error) {
	list := &FileList{}
	path := "/files/list-by-category?category=" + url.QueryEscape(category)
	if err := c.do(ctx, http.MethodGet, path, nil, list); err != nil {
		return nil, errors.Wrap(err, "listing files")
	}
	return list, nil
}

// DeleteFile removes a stored document.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if err := c.do(ctx, http.MethodDelete, "/files/delete-category/"+url.PathEscape(fileID), nil, nil); err != nil {
		return errors.Wrap(err, "deleting file")
	}
	return nil
}

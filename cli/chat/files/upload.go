package files

import (
	"context"
	"os"
	"path/filepath"

	"github.com/finchat/finchat/cli/chat/types"
	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/debug"
	"github.com/finchat/finchat/internal/file"
)

var log = debug.GetLogger()

// Upload validates candidate paths by extension, then uploads the
// survivors one at a time. Validation happens before any network call so
// a batch of bad files never reaches the backend.
func Upload(ctx context.Context, client *api.Client, category, description string, paths []string) types.UploadResult {
	accepted, skipped := file.SplitUploadPaths(paths)
	result := types.UploadResult{Skipped: skipped}

	for _, path := range accepted {
		if err := uploadOne(ctx, client, category, description, path); err != nil {
			log.Error("uploading file", "path", path, "error", err)
			result.Failed++
			if result.Err == nil {
				result.Err = err
			}
			continue
		}
		result.Uploaded++
	}
	return result
}

func uploadOne(ctx context.Context, client *api.Client, category, description, path string) error {
	expanded, err := file.ExpandPath(path)
	if err != nil {
		return err
	}
	f, err := os.Open(expanded)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = client.UploadFile(ctx, &api.UploadFileRequest{
		Filename:    filepath.Base(expanded),
		Content:     f,
		Category:    category,
		Description: description,
	})
	return err
}

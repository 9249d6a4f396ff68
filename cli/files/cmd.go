// Package files holds the document management commands: upload, list and
// remove, scoped by category.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/finchat/finchat/internal/api"
	"github.com/finchat/finchat/internal/cli"
	"github.com/finchat/finchat/internal/configuration"
	"github.com/finchat/finchat/internal/file"
)

// NewCmd instantiates and returns the files command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage uploaded documents",
	}
	cmd.AddCommand(newUploadCmd(config, client))
	cmd.AddCommand(newListCmd(config, client))
	cmd.AddCommand(newRemoveCmd(client))
	return cmd
}

// newUploadCmd instantiates and returns the files upload command.
func newUploadCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	var opts struct {
		Category    string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "upload <path>...",
		Short: "Upload spreadsheet documents to a category",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			category, err := resolveCategory(opts.Category, config)
			cobra.CheckErr(err)

			accepted, skipped := file.SplitUploadPaths(args)
			if skipped > 0 {
				cli.Error("%d file(s) skipped: only .xlsx, .xls and .csv are accepted\n", skipped)
			}
			if len(accepted) == 0 {
				cobra.CheckErr(fmt.Errorf("no uploadable files"))
			}

			for _, path := range accepted {
				uploaded, err := uploadOne(cmd, client, category, opts.Description, path)
				if err != nil {
					cli.Error("uploading %s: %v\n", path, err)
					continue
				}
				cli.FileEntry("%s\n", uploaded.OriginalFilename)
				cli.Detail("  id %s, category %s\n", uploaded.FileID, uploaded.Category)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Document category (prompted when omitted)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Optional description stored with each file")
	return cmd
}

// newListCmd instantiates and returns the files list command.
func newListCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	var opts struct {
		Category string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents in a category",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			category, err := resolveCategory(opts.Category, config)
			cobra.CheckErr(err)

			list, err := client.ListFilesByCategory(cmd.Context(), category)
			cobra.CheckErr(err)

			cli.Title("FINCHAT FILES - %s", list.Category)
			if len(list.Files) == 0 {
				cli.Detail("no documents\n")
				return
			}
			for _, f := range list.Files {
				cli.FileEntry("%s (%s)\n", f.OriginalFilename, f.FileID)
				cli.Detail("  %d bytes, uploaded %s\n", f.FileSize, f.UploadedAt)
			}
			cli.Separator()
			cli.Detail("%d document(s)\n", list.Total)
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Document category (prompted when omitted)")
	return cmd
}

// newRemoveCmd instantiates and returns the files rm command.
func newRemoveCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Force bool
	}

	cmd := &cobra.Command{
		Use:   "rm <file-id>",
		Short: "Delete an uploaded document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fileID := args[0]
			if !opts.Force && !cli.QueryUser(fmt.Sprintf("Delete file %s?", fileID)) {
				return
			}
			cobra.CheckErr(client.DeleteFile(cmd.Context(), fileID))
			cli.Detail("deleted %s\n", fileID)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

// resolveCategory validates an explicit category or prompts for one.
func resolveCategory(category string, config *configuration.Config) (string, error) {
	if category != "" {
		for _, known := range api.Categories {
			if known == category {
				return category, nil
			}
		}
		return "", errors.Errorf("unknown category %q", category)
	}

	defaultCategory := ""
	if config.Files != nil {
		defaultCategory = config.Files.DefaultCategory
	}
	return cli.SelectCategory(api.Categories, defaultCategory)
}

func uploadOne(cmd *cobra.Command, client *api.Client, category, description, path string) (*api.UploadedFile, error) {
	expanded, err := file.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	return client.UploadFile(cmd.Context(), &api.UploadFileRequest{
		Filename:    filepath.Base(expanded),
		Content:     f,
		Category:    category,
		Description: description,
	})
}

package client

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/coursekit/course-api/internal/schema"
)

// Multipart field names of POST /files.
const (
	FieldFilename   = "filename"
	FieldDirectory  = "directory"
	FieldUploadFile = "upload_file"
)

// FilesClient calls the /files endpoints.
type FilesClient struct {
	api *APIClient
	fs  afero.Fs
}

// NewFilesClient wraps an authenticated client. Upload paths are read from
// fs; nil means the OS filesystem.
func NewFilesClient(api *APIClient, fs afero.Fs) *FilesClient {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FilesClient{api: api, fs: fs}
}

// CreateFileAPI uploads req.UploadFile with POST /files. An empty
// UploadFile sends the form without a file part.
func (c *FilesClient) CreateFileAPI(ctx context.Context, req schema.CreateFileRequest) (*Response, error) {
	ctx = withRoute(ctx, Routes.Files)
	fields := map[string]string{
		FieldFilename:  req.Filename,
		FieldDirectory: req.Directory,
	}

	files := map[string]UploadFile{}
	if req.UploadFile != "" {
		f, err := c.fs.Open(req.UploadFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open upload file: %w", err)
		}
		defer func() { _ = f.Close() }()

		files[FieldUploadFile] = UploadFile{
			Filename:    filepath.Base(req.UploadFile),
			ContentType: mime.TypeByExtension(filepath.Ext(req.UploadFile)),
			Content:     f,
		}
	}

	return c.api.PostMultipart(ctx, Routes.Files, fields, files)
}

// GetFileAPI sends GET /files/{file_id}.
func (c *FilesClient) GetFileAPI(ctx context.Context, fileID string) (*Response, error) {
	ctx = withRoute(ctx, Routes.FileByID)
	return c.api.Get(ctx, entityPath(Routes.Files, fileID), nil)
}

// DeleteFileAPI sends DELETE /files/{file_id}.
func (c *FilesClient) DeleteFileAPI(ctx context.Context, fileID string) (*Response, error) {
	ctx = withRoute(ctx, Routes.FileByID)
	return c.api.Delete(ctx, entityPath(Routes.Files, fileID))
}

// CreateFile uploads a file and returns its metadata.
func (c *FilesClient) CreateFile(ctx context.Context, req schema.CreateFileRequest) (*schema.CreateFileResponse, error) {
	return decode[schema.CreateFileResponse](c.CreateFileAPI(ctx, req))
}

// GetFile returns the metadata of a file.
func (c *FilesClient) GetFile(ctx context.Context, fileID string) (*schema.GetFileResponse, error) {
	return decode[schema.GetFileResponse](c.GetFileAPI(ctx, fileID))
}

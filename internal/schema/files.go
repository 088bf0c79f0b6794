package schema

import "github.com/coursekit/course-api/internal/fakers"

// DefaultTestDirectory keeps files uploaded by tests in one place.
const DefaultTestDirectory = "tests"

// File describes an uploaded file.
type File struct {
	ID        string `json:"id"        validate:"required,uuid"`
	URL       string `json:"url"       validate:"required,url"`
	Filename  string `json:"filename"  validate:"required"`
	Directory string `json:"directory" validate:"required"`
}

// CreateFileRequest describes a multipart upload to POST /files.
// UploadFile is the local path of the content to send.
type CreateFileRequest struct {
	Filename   string `json:"filename"`
	Directory  string `json:"directory"`
	UploadFile string `json:"-"`
}

// NewCreateFileRequest returns a request for a randomly named PNG file in
// the test directory.
func NewCreateFileRequest(uploadFile string) CreateFileRequest {
	return CreateFileRequest{
		Filename:   fakers.Default.UUID() + ".png",
		Directory:  DefaultTestDirectory,
		UploadFile: uploadFile,
	}
}

// FileResponse wraps a single file.
type FileResponse struct {
	File File `json:"file" validate:"required"`
}

// Response bodies of the file endpoints.
type (
	CreateFileResponse = FileResponse
	GetFileResponse    = FileResponse
)

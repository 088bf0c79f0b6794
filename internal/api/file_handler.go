package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coursekit/course-api/internal/api/shared"
	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/schema"
	"github.com/coursekit/course-api/internal/service"
)

// Multipart field names of POST /files.
const (
	FormFilename   = "filename"
	FormDirectory  = "directory"
	FormUploadFile = "upload_file"
)

// MaxUploadSize bounds the body of POST /files.
const MaxUploadSize = 32 << 20

// FileHandler serves the /files endpoints.
type FileHandler struct {
	files         service.FileService
	publicBaseURL string
}

// NewFileHandler creates a new FileHandler. publicBaseURL prefixes the URLs
// of stored files and must end with a slash.
func NewFileHandler(files service.FileService, publicBaseURL string) *FileHandler {
	return &FileHandler{files: files, publicBaseURL: publicBaseURL}
}

// CreateFile handles the multipart upload POST /files.
func (h *FileHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("invalid multipart body",
			"error", err)
		HandleAPIError(w, r, domain.NewValidationError(domain.FieldError{
			Location: []string{"body"},
			Type:     domain.ErrTypeValueError,
			Message:  "Expected a multipart form body",
			Context:  map[string]any{"error": "invalid multipart form"},
		}))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	ve := &domain.ValidationError{}
	filename := formValue(ve, r, FormFilename)
	directory := formValue(ve, r, FormDirectory)
	upload, _, err := r.FormFile(FormUploadFile)
	if err != nil {
		ve.Add(domain.MissingField(nil, "body", FormUploadFile))
	}
	if err := ve.OrNil(); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	defer func() { _ = upload.Close() }()

	file, err := h.files.CreateFile(r.Context(), filename, directory, upload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.CreateFileResponse{File: fileView(h.publicBaseURL, file)})
}

// GetFile handles GET /files/{file_id}.
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	fileID, ok := pathID(w, r, "file_id")
	if !ok {
		return
	}
	file, err := h.files.GetFile(r.Context(), fileID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.GetFileResponse{File: fileView(h.publicBaseURL, file)})
}

// DeleteFile handles DELETE /files/{file_id}.
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	fileID, ok := pathID(w, r, "file_id")
	if !ok {
		return
	}
	if err := h.files.DeleteFile(r.Context(), fileID); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	respondOK(w)
}

func formValue(ve *domain.ValidationError, r *http.Request, name string) string {
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		ve.Add(domain.MissingField(nil, "body", name))
		return ""
	}
	return values[0]
}

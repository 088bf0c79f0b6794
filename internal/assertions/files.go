package assertions

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursekit/course-api/internal/schema"
)

// Messages and inputs of the expected file errors.
const (
	FileNotFoundMessage  = "File not found"
	IncorrectFileID      = "incorrect-file-id"
	incorrectFileIDCause = "invalid character: expected an optional prefix of `urn:uuid:` followed by [0-9a-fA-F-], found `i` at 1"
)

// FileURL is the public URL of a stored file under baseURL.
func FileURL(baseURL, directory, filename string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + "static/" + directory + "/" + filename
}

// CreateFileResponse checks the metadata of an uploaded file. baseURL is the
// server root the file URL is expected under.
func CreateFileResponse(t testing.TB, request schema.CreateFileRequest, response schema.CreateFileResponse, baseURL string) bool {
	t.Helper()
	step("Check create file response")
	ok := Equal(t, response.File.URL, FileURL(baseURL, request.Directory, request.Filename), "url")
	ok = Equal(t, response.File.Filename, request.Filename, "filename") && ok
	ok = Equal(t, response.File.Directory, request.Directory, "directory") && ok
	return ok
}

// FileIsAccessible checks that url answers 200 to a GET with httpClient.
func FileIsAccessible(t testing.TB, httpClient *http.Client, url string) bool {
	t.Helper()
	step("Check file is accessible")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Get(url)
	if !assert.NoErrorf(t, err, "File is not accessible at URL: %s", url) {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return assert.Equalf(t, http.StatusOK, resp.StatusCode, "File is not accessible at URL: %s", url)
}

// File compares two files field by field.
func File(t testing.TB, actual, expected schema.File) bool {
	t.Helper()
	step("Check file")
	ok := Equal(t, actual.ID, expected.ID, "id")
	ok = Equal(t, actual.URL, expected.URL, "url") && ok
	ok = Equal(t, actual.Filename, expected.Filename, "filename") && ok
	ok = Equal(t, actual.Directory, expected.Directory, "directory") && ok
	return ok
}

// GetFileResponse checks a fetched file against the created one.
func GetFileResponse(t testing.TB, getResponse schema.GetFileResponse, createResponse schema.CreateFileResponse) bool {
	t.Helper()
	step("Check get file response")
	return File(t, getResponse.File, createResponse.File)
}

// CreateFileWithEmptyFilenameResponse checks the 422 for an empty filename.
func CreateFileWithEmptyFilenameResponse(t testing.TB, actual schema.ValidationErrorResponse) bool {
	t.Helper()
	step("Check create file with empty filename response")
	return ValidationErrorResponse(t, actual, emptyStringError("filename"))
}

// CreateFileWithEmptyDirectoryResponse checks the 422 for an empty
// directory.
func CreateFileWithEmptyDirectoryResponse(t testing.TB, actual schema.ValidationErrorResponse) bool {
	t.Helper()
	step("Check create file with empty directory response")
	return ValidationErrorResponse(t, actual, emptyStringError("directory"))
}

// GetFileWithIncorrectFileIDResponse checks the 422 for a file ID that is
// not a UUID.
func GetFileWithIncorrectFileIDResponse(t testing.TB, actual schema.ValidationErrorResponse) bool {
	t.Helper()
	step("Check get file with incorrect file id response")
	expected := schema.ValidationErrorResponse{Details: []schema.ValidationError{{
		Type:     "uuid_parsing",
		Input:    IncorrectFileID,
		Context:  map[string]any{"error": incorrectFileIDCause},
		Message:  "Input should be a valid UUID, " + incorrectFileIDCause,
		Location: []string{"path", "file_id"},
	}}}
	return ValidationErrorResponse(t, actual, expected)
}

// FileNotFoundResponse checks the 404 for a missing file.
func FileNotFoundResponse(t testing.TB, actual schema.InternalErrorResponse) bool {
	t.Helper()
	step("Check file not found response")
	return InternalErrorResponse(t, actual, schema.InternalErrorResponse{Details: FileNotFoundMessage})
}

func emptyStringError(field string) schema.ValidationErrorResponse {
	return schema.ValidationErrorResponse{Details: []schema.ValidationError{{
		Type:     "string_too_short",
		Input:    "",
		Context:  map[string]any{"min_length": 1},
		Message:  "String should have at least 1 character",
		Location: []string{"body", field},
	}}}
}

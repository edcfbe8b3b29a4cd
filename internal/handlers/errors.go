package handlers

import (
	"errors"
	"net/http"
)

// Request outcomes other than success. Each maps to a fixed client message.
var (
	ErrNoFilePart         = errors.New("request has no file part")
	ErrNoSelectedFile     = errors.New("file part has an empty filename")
	ErrDisallowedFileType = errors.New("file extension is not allowed")
	ErrFileTooLarge       = errors.New("upload exceeds size limit")
	ErrPreprocessing      = errors.New("image processing failed")
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = []struct {
	err error
	errorResponse
}{
	{ErrNoFilePart, errorResponse{http.StatusBadRequest, "No file part"}},
	{ErrNoSelectedFile, errorResponse{http.StatusBadRequest, "No selected file"}},
	{ErrDisallowedFileType, errorResponse{http.StatusBadRequest, "Invalid file type"}},
	{ErrFileTooLarge, errorResponse{http.StatusRequestEntityTooLarge, "File too large"}},
	{ErrPreprocessing, errorResponse{http.StatusInternalServerError, "Image processing failed"}},
}

// responseFor maps err onto a status code and client message. Unknown errors
// are reported as processing failures.
func responseFor(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, "Image processing failed"}
}

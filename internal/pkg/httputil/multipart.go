// Package httputil contains helpers for reading and building multipart uploads.
package httputil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the largest file accepted by any upload endpoint (10 MB)
const MaxUploadSize int64 = 10 << 20

var (
	// ErrMissingFile is returned when the expected form file is absent
	ErrMissingFile = errors.New("no file provided")
	// ErrEmptyFile is returned for zero-byte uploads
	ErrEmptyFile = errors.New("file is empty")
	// ErrFileTooLarge is returned when an upload exceeds the size limit
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
)

// UploadedFile is a fully read multipart file
type UploadedFile struct {
	FileName    string
	Extension   string
	ContentType string
	Size        int64
	Data        []byte
}

// FormFile returns the first file stored under field in form.
func FormFile(form *multipart.Form, field string) (*multipart.FileHeader, error) {
	if form == nil || len(form.File[field]) == 0 {
		return nil, fmt.Errorf("%w in field '%s'", ErrMissingFile, field)
	}
	return form.File[field][0], nil
}

// FormValue returns the first value stored under key in form, or "".
func FormValue(form *multipart.Form, key string) string {
	if form == nil || len(form.Value[key]) == 0 {
		return ""
	}
	return strings.TrimSpace(form.Value[key][0])
}

// ReadFile reads fh into memory, enforcing maxSize and detecting the content type.
func ReadFile(fh *multipart.FileHeader, maxSize int64) (*UploadedFile, error) {
	if fh == nil {
		return nil, ErrMissingFile
	}
	if fh.Size > maxSize {
		return nil, fmt.Errorf("%w: %d bytes > %d bytes", ErrFileTooLarge, fh.Size, maxSize)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", fh.Filename, err)
	}
	defer file.Close()

	// read one byte past the limit so an understated header size is still caught
	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", fh.Filename, err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, maxSize)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	return &UploadedFile{
		FileName:    filepath.Base(fh.Filename),
		Extension:   strings.ToLower(filepath.Ext(fh.Filename)),
		ContentType: detectContentType(fh, data),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

// detectContentType prefers the declared part header and falls back to sniffing.
func detectContentType(fh *multipart.FileHeader, data []byte) string {
	declared := fh.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(data)
}

// CreateForm builds a parsed multipart form holding one file under field plus the given values.
func CreateForm(field, fileName, contentType string, content []byte, values map[string]string) (*multipart.Form, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range values {
		if err := writer.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write field '%s': %w", k, err)
		}
	}

	if fileName != "" {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, fileName)}
		if contentType != "" {
			header["Content-Type"] = []string{contentType}
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write file content: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		return nil, fmt.Errorf("failed to read form: %w", err)
	}
	return form, nil
}

//go:build unit
// +build unit

package httputil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormAndReadFile(t *testing.T) {
	content := []byte("%PDF-1.4 curriculum vitae")
	form, err := CreateForm("cv", "Jane Doe CV.PDF", "application/pdf", content, map[string]string{
		"full_name": " Jane Doe ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", FormValue(form, "full_name"))
	assert.Equal(t, "", FormValue(form, "missing"))

	fh, err := FormFile(form, "cv")
	require.NoError(t, err)

	file, err := ReadFile(fh, MaxUploadSize)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe CV.PDF", file.FileName)
	assert.Equal(t, ".pdf", file.Extension)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, int64(len(content)), file.Size)
	assert.Equal(t, content, file.Data)
}

func TestReadFile_SniffsContentType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	form, err := CreateForm("image", "pic.png", "", png, nil)
	require.NoError(t, err)

	fh, err := FormFile(form, "image")
	require.NoError(t, err)

	file, err := ReadFile(fh, MaxUploadSize)
	require.NoError(t, err)
	assert.Equal(t, "image/png", file.ContentType)
}

func TestReadFile_Errors(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		form, err := CreateForm("cv", "", "", nil, map[string]string{"a": "b"})
		require.NoError(t, err)

		_, err = FormFile(form, "cv")
		assert.ErrorIs(t, err, ErrMissingFile)
	})

	t.Run("nil header", func(t *testing.T) {
		_, err := ReadFile(nil, MaxUploadSize)
		assert.ErrorIs(t, err, ErrMissingFile)
	})

	t.Run("too large", func(t *testing.T) {
		form, err := CreateForm("file", "big.bin", "", bytes.Repeat([]byte("a"), 64), nil)
		require.NoError(t, err)
		fh, err := FormFile(form, "file")
		require.NoError(t, err)

		_, err = ReadFile(fh, 16)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("empty", func(t *testing.T) {
		form, err := CreateForm("file", "empty.txt", "text/plain", []byte{}, nil)
		require.NoError(t, err)
		fh, err := FormFile(form, "file")
		require.NoError(t, err)

		_, err = ReadFile(fh, MaxUploadSize)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}

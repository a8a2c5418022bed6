package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateMultipartRequest builds a request carrying one file under field plus the given values.
func CreateMultipartRequest(t *testing.T, method, url, field, fileName string, content []byte, values map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range values {
		require.NoError(t, writer.WriteField(k, v))
	}

	if fileName != "" {
		part, err := writer.CreateFormFile(field, fileName)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

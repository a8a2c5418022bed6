// Package content defines the headless content backend that mirrors selected submissions.
package content

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the no-op connector
var ErrDisabled = errors.New("content backend is not configured")

// Connector creates schema-less documents in the content backend
type Connector interface {
	// CreateDocument creates a document of docType and returns its id.
	CreateDocument(ctx context.Context, docType string, fields map[string]interface{}) (string, error)
	// Enabled reports whether documents are actually written.
	Enabled() bool
}

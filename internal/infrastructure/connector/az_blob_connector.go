package connector

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// azureBlobConnector is a struct that holds the Azure Blob storage client and implements the media.BlobConnector interface
type azureBlobConnector struct {
	client        *azblob.Client
	containerName string
	publicBaseURL string
	logger        logger.Logger
}

// NewAzureBlobConnector creates a new azureBlobConnector instance using a connection string.
// It returns the connector and any error encountered during the initialization.
func NewAzureBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (media.BlobConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create Azure container %s: %w", settings.ContainerName, err)
	}

	return &azureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		publicBaseURL: strings.TrimRight(settings.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload writes data as a block blob named blobName
func (abc *azureBlobConnector) Upload(ctx context.Context, data []byte, blobName, contentType string) (*media.StoredObject, error) {
	if blobName == "" {
		return nil, fmt.Errorf("blob name is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("refusing to upload empty blob %s", blobName)
	}

	opts := &azblob.UploadBufferOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)}
	}

	if _, err := abc.client.UploadBuffer(ctx, abc.containerName, blobName, data, opts); err != nil {
		return nil, fmt.Errorf("failed to upload blob '%s': %w", blobName, err)
	}

	abc.logger.Info("Blob uploaded", "blob", blobName, "size", len(data))

	return &media.StoredObject{
		BlobName:    blobName,
		URL:         abc.URL(blobName),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

// Delete removes blobName. A blob that is already gone is not an error.
func (abc *azureBlobConnector) Delete(ctx context.Context, blobName string) error {
	_, err := abc.client.DeleteBlob(ctx, abc.containerName, blobName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			abc.logger.Warn("Blob already deleted", "blob", blobName)
			return nil
		}
		return fmt.Errorf("failed to delete blob '%s': %w", blobName, err)
	}

	abc.logger.Info("Blob deleted", "blob", blobName)
	return nil
}

// URL returns the public URL of blobName
func (abc *azureBlobConnector) URL(blobName string) string {
	escaped := escapeBlobName(blobName)
	if abc.publicBaseURL != "" {
		return abc.publicBaseURL + "/" + escaped
	}
	return strings.TrimRight(abc.client.URL(), "/") + "/" + abc.containerName + "/" + escaped
}

func escapeBlobName(blobName string) string {
	segments := strings.Split(blobName, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

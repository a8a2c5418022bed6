//go:build integration
// +build integration

package connector

import (
	"context"
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AzureBlobConnectorTest struct {
	blobConnector media.BlobConnector
}

func NewAzureBlobConnectorTest(t *testing.T, cloudProvider, connectionString, containerName string) *AzureBlobConnectorTest {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	blobConnectorSettings := &config.BlobConnectorSettings{
		CloudProvider:    cloudProvider,
		ConnectionString: connectionString,
		ContainerName:    containerName,
	}

	ctx := context.Background()
	blobConnector, err := NewAzureBlobConnector(ctx, blobConnectorSettings, logger)
	require.NoError(t, err)

	return &AzureBlobConnectorTest{
		blobConnector: blobConnector,
	}
}

func TestAzureBlobConnector_Upload(t *testing.T) {
	abct := NewAzureBlobConnectorTest(t, TestCloudProvider, TestConnectionString, TestContainerName)

	content := []byte("%PDF-1.4 test cv")
	blobName := media.GalleryBlobPrefix + "/" + uuid.NewString() + ".pdf"
	ctx := context.Background()

	stored, err := abct.blobConnector.Upload(ctx, content, blobName, "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, blobName, stored.BlobName)
	assert.Equal(t, int64(len(content)), stored.Size)
	assert.Equal(t, "application/pdf", stored.ContentType)
	assert.Contains(t, stored.URL, TestContainerName+"/"+blobName)

	err = abct.blobConnector.Delete(ctx, blobName)
	require.NoError(t, err)
}

func TestAzureBlobConnector_Upload_EmptyData(t *testing.T) {
	abct := NewAzureBlobConnectorTest(t, TestCloudProvider, TestConnectionString, TestContainerName)

	_, err := abct.blobConnector.Upload(context.Background(), nil, "empty.txt", "text/plain")
	require.Error(t, err)
}

func TestAzureBlobConnector_Delete_Missing(t *testing.T) {
	abct := NewAzureBlobConnectorTest(t, TestCloudProvider, TestConnectionString, TestContainerName)

	err := abct.blobConnector.Delete(context.Background(), "missing/"+uuid.NewString())
	require.NoError(t, err)
}

func TestNewAzureBlobConnector_InvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewAzureBlobConnector(context.Background(), &config.BlobConnectorSettings{CloudProvider: TestCloudProvider}, logger)
	require.Error(t, err)
}

//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/pkg/httputil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/testutil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header, enough for content sniffing
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

const testMediaURL = "https://storage.example.com/media/gallery/stored.png"

func TestGalleryService_Upload(t *testing.T) {
	repo := new(MockGalleryRepository)
	blobs := new(MockBlobConnector)
	service, err := NewGalleryService(repo, blobs, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	form, err := httputil.CreateForm(ImageFormField, "sports-day.png", "", pngBytes, map[string]string{
		"title":    "Sports Day 2026",
		"caption":  "<script>alert(1)</script>Relay final",
		"category": "sports",
	})
	require.NoError(t, err)

	blobs.On("URL", mock.AnythingOfType("string")).Return(testMediaURL)
	blobs.On("Upload", ctx, pngBytes, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, media.GalleryBlobPrefix+"/") && strings.HasSuffix(name, ".png")
	}), "image/png").Return(&media.StoredObject{URL: testMediaURL, ContentType: "image/png", Size: int64(len(pngBytes))}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*media.GalleryImage")).Return(nil)

	image, err := service.Upload(ctx, form)
	require.NoError(t, err)

	assert.Equal(t, "Sports Day 2026", image.Title)
	assert.Equal(t, "Relay final", image.Caption)
	assert.Equal(t, "sports", image.Category)
	assert.Equal(t, "image/png", image.ContentType)
	assert.Equal(t, testMediaURL, image.URL)
	repo.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

func TestGalleryService_Upload_RejectsNonImages(t *testing.T) {
	repo := new(MockGalleryRepository)
	blobs := new(MockBlobConnector)
	service, err := NewGalleryService(repo, blobs, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	form, err := httputil.CreateForm(ImageFormField, "notes.txt", "text/plain", []byte("hello"), nil)
	require.NoError(t, err)

	_, err = service.Upload(context.Background(), form)
	require.ErrorIs(t, err, validators.ErrValidation)
	blobs.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGalleryService_Upload_FileNameTitleIsSanitized(t *testing.T) {
	repo := new(MockGalleryRepository)
	blobs := new(MockBlobConnector)
	service, err := NewGalleryService(repo, blobs, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	form, err := httputil.CreateForm(ImageFormField, "<img src=x onerror=alert(1)>gym.png", "", pngBytes, nil)
	require.NoError(t, err)

	blobs.On("URL", mock.AnythingOfType("string")).Return(testMediaURL)
	blobs.On("Upload", ctx, pngBytes, mock.AnythingOfType("string"), "image/png").Return(&media.StoredObject{URL: testMediaURL}, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(image *media.GalleryImage) bool {
		return image.Title == "gym.png"
	})).Return(nil).Once()

	image, err := service.Upload(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "gym.png", image.Title)
	repo.AssertExpectations(t)
}

func TestGalleryService_DeleteByID(t *testing.T) {
	repo := new(MockGalleryRepository)
	blobs := new(MockBlobConnector)
	service, err := NewGalleryService(repo, blobs, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("GetByID", ctx, "img-1").Return(&media.GalleryImage{ID: "img-1", BlobName: "gallery/a.png"}, nil)
	blobs.On("Delete", ctx, "gallery/a.png").Return(nil)
	repo.On("DeleteByID", ctx, "img-1").Return(nil)
	require.NoError(t, service.DeleteByID(ctx, "img-1"))

	repo.On("GetByID", ctx, "missing").Return(nil, media.ErrImageNotFound)
	require.ErrorIs(t, service.DeleteByID(ctx, "missing"), media.ErrImageNotFound)

	repo.On("GetByID", ctx, "img-2").Return(&media.GalleryImage{ID: "img-2", BlobName: "gallery/b.png"}, nil)
	blobs.On("Delete", ctx, "gallery/b.png").Return(errors.New("storage unavailable"))
	require.Error(t, service.DeleteByID(ctx, "img-2"))
	repo.AssertNotCalled(t, "DeleteByID", ctx, "img-2")
}

func TestResourceService_Upload(t *testing.T) {
	repo := new(MockResourceRepository)
	blobs := new(MockBlobConnector)
	service, err := NewResourceService(repo, blobs, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()
	content := []byte("%PDF-1.4 term dates")

	form, err := httputil.CreateForm(ResourceFormField, "term-dates.pdf", "application/pdf", content, map[string]string{"category": "calendar"})
	require.NoError(t, err)

	blobs.On("URL", mock.AnythingOfType("string")).Return("https://storage.example.com/media/resources/stored.pdf")
	blobs.On("Upload", ctx, content, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, media.ResourceBlobPrefix+"/")
	}), "application/pdf").Return(&media.StoredObject{URL: "https://storage.example.com/media/resources/stored.pdf"}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*media.Resource")).Return(nil)

	resource, err := service.Upload(ctx, form)
	require.NoError(t, err)

	// title falls back to the file name
	assert.Equal(t, "term-dates.pdf", resource.Title)
	assert.Equal(t, "term-dates.pdf", resource.FileName)
	assert.Equal(t, int64(len(content)), resource.Size)
	repo.AssertExpectations(t)
}

func TestResourceService_Upload_FileNameTitleIsSanitized(t *testing.T) {
	repo := new(MockResourceRepository)
	blobs := new(MockBlobConnector)
	service, err := NewResourceService(repo, blobs, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()
	content := []byte("%PDF-1.4 fees")

	form, err := httputil.CreateForm(ResourceFormField, "<b onclick=alert(1)>fees.pdf", "application/pdf", content, nil)
	require.NoError(t, err)

	blobs.On("URL", mock.AnythingOfType("string")).Return("https://storage.example.com/media/resources/stored.pdf")
	blobs.On("Upload", ctx, content, mock.AnythingOfType("string"), "application/pdf").Return(&media.StoredObject{URL: "https://storage.example.com/media/resources/stored.pdf"}, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(resource *media.Resource) bool {
		return resource.Title == "fees.pdf" && resource.FileName == "fees.pdf"
	})).Return(nil).Once()

	resource, err := service.Upload(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "fees.pdf", resource.Title)
	assert.Equal(t, "fees.pdf", resource.FileName)
	repo.AssertExpectations(t)
}

func TestResourceService_Upload_TooLarge(t *testing.T) {
	repo := new(MockResourceRepository)
	blobs := new(MockBlobConnector)
	service, err := NewResourceService(repo, blobs, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	content := make([]byte, httputil.MaxUploadSize+1)
	form, err := httputil.CreateForm(ResourceFormField, "huge.pdf", "application/pdf", content, nil)
	require.NoError(t, err)

	_, err = service.Upload(context.Background(), form)
	require.ErrorIs(t, err, validators.ErrValidation)
	require.ErrorIs(t, err, httputil.ErrFileTooLarge)
}

func TestResourceService_List(t *testing.T) {
	repo := new(MockResourceRepository)
	service, err := NewResourceService(repo, new(MockBlobConnector), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("List", ctx, mock.MatchedBy(func(q *media.MediaQuery) bool { return q.Category == "calendar" })).Return([]*media.Resource{{ID: "r-1"}}, nil)

	query := media.NewMediaQuery()
	query.Category = "calendar"
	list, err := service.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormJobApplicationRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	job := &careers.JobApplication{
		ID:         uuid.NewString(),
		FullName:   "Peter Kamau",
		Email:      "peter@example.com",
		Phone:      "0712345678",
		Position:   "Mathematics Teacher",
		CVURL:      "http://127.0.0.1:10000/devstoreaccount1/portal/careers/cv/a.pdf",
		CVBlobName: "careers/cv/a.pdf",
		Status:     careers.StatusReceived,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, tc.JobApplicationRepo.Create(ctx, job))

	query := careers.NewJobApplicationQuery()
	query.Position = "Mathematics"
	list, err := tc.JobApplicationRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)

	job.Status = careers.StatusShortlisted
	require.NoError(t, tc.JobApplicationRepo.Update(ctx, job))

	got, err := tc.JobApplicationRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, careers.StatusShortlisted, got.Status)
	assert.Equal(t, job.CVBlobName, got.CVBlobName)

	require.NoError(t, tc.JobApplicationRepo.DeleteByID(ctx, job.ID))
	_, err = tc.JobApplicationRepo.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, careers.ErrNotFound)
}

func TestGormMessageRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	msg := &messages.Message{
		ID:        uuid.NewString(),
		Name:      "Wanjiru",
		Email:     "wanjiru@example.com",
		Subject:   "Transport",
		Body:      "Is there a school bus from Kileleshwa?",
		Status:    messages.StatusUnread,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, tc.MessageRepo.Create(ctx, msg))

	require.NoError(t, tc.MessageRepo.UpdateStatus(ctx, msg.ID, messages.StatusRead))

	err := tc.MessageRepo.UpdateStatus(ctx, msg.ID, "spam")
	assert.ErrorIs(t, err, validators.ErrValidation)

	query := messages.NewMessageQuery()
	query.Status = messages.StatusRead
	list, err := tc.MessageRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, msg.Body, list[0].Body)

	require.NoError(t, tc.MessageRepo.DeleteByID(ctx, msg.ID))
	assert.ErrorIs(t, tc.MessageRepo.DeleteByID(ctx, msg.ID), messages.ErrNotFound)
	assert.ErrorIs(t, tc.MessageRepo.UpdateStatus(ctx, msg.ID, messages.StatusArchived), messages.ErrNotFound)
}

func TestGormMediaRepositories(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	img := &media.GalleryImage{
		ID:          uuid.NewString(),
		Title:       "Science fair",
		Category:    "academics",
		BlobName:    "gallery/a.png",
		URL:         "https://cdn.example.com/gallery/a.png",
		ContentType: "image/png",
		Size:        10,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, tc.GalleryRepo.Create(ctx, img))

	query := media.NewMediaQuery()
	query.Category = "sports"
	list, err := tc.GalleryRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, list)

	query.Category = "academics"
	list, err = tc.GalleryRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, tc.GalleryRepo.DeleteByID(ctx, img.ID))
	_, err = tc.GalleryRepo.GetByID(ctx, img.ID)
	assert.ErrorIs(t, err, media.ErrImageNotFound)

	res := &media.Resource{
		ID:          uuid.NewString(),
		Title:       "Fee structure 2027",
		BlobName:    "resources/b.pdf",
		URL:         "https://cdn.example.com/resources/b.pdf",
		FileName:    "fees-2027.pdf",
		ContentType: "application/pdf",
		Size:        2048,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, tc.ResourceRepo.Create(ctx, res))

	got, err := tc.ResourceRepo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "fees-2027.pdf", got.FileName)

	resources, err := tc.ResourceRepo.List(ctx, media.NewMediaQuery())
	require.NoError(t, err)
	assert.Len(t, resources, 1)

	require.NoError(t, tc.ResourceRepo.DeleteByID(ctx, res.ID))
	assert.ErrorIs(t, tc.ResourceRepo.DeleteByID(ctx, res.ID), media.ErrResourceNotFound)
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryAddListRemove(t *testing.T) {
	svc := NewGalleryService(newTestDB(t))
	ctx := context.Background()

	first, err := svc.AddImage(ctx, "https://cdn.example.com/run.jpg", "5k run")
	require.NoError(t, err)
	second, err := svc.AddImage(ctx, "https://cdn.example.com/yoga.jpg", "")
	require.NoError(t, err)

	images, err := svc.ListImages(ctx)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, first.ID, images[0].ID)
	assert.Equal(t, second.ID, images[1].ID)

	require.NoError(t, svc.RemoveImage(ctx, first.ID))
	images, err = svc.ListImages(ctx)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, second.ID, images[0].ID)
}

func TestRemoveImageNotFound(t *testing.T) {
	svc := NewGalleryService(newTestDB(t))

	err := svc.RemoveImage(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrImageNotFound)
}

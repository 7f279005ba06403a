package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientStorageService_ComputeUsage_ContentBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sealer := newTestSealer(t)
	svc := NewClientStorageService(mockAdapter, sealer, "", logger.Nop())

	usage, err := svc.ComputeUsage(context.Background(), testSession, []models.Note{{Content: seal(t, sealer, "abcd")}})

	require.NoError(t, err)
	assert.Equal(t, int64(4), usage.UsedBytes)
	assert.Equal(t, DefaultQuotaBytes, usage.QuotaBytes)
	assert.False(t, usage.Unlimited)
}

func TestClientStorageService_ComputeUsage_UTF8AndAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientStorageService(mockAdapter, newTestSealer(t), "", logger.Nop())

	notes := []models.Note{
		{Content: "é", ImageRef: strPtr("cat.png")},
		{Content: "", ImageRef: strPtr("gone.png")},
	}
	mockAdapter.EXPECT().AttachmentInfo(gomock.Any(), models.BucketImages, "cat.png").
		Return(models.AttachmentInfo{SizeBytes: 1000}, nil)
	mockAdapter.EXPECT().AttachmentInfo(gomock.Any(), models.BucketImages, "gone.png").
		Return(models.AttachmentInfo{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, "attachment was not found"))

	usage, err := svc.ComputeUsage(context.Background(), testSession, notes)

	require.NoError(t, err)
	assert.Equal(t, int64(1002), usage.UsedBytes)
}

func TestClientStorageService_ComputeUsage_UnlimitedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientStorageService(mockAdapter, newTestSealer(t), "USER@example.com", logger.Nop())

	usage, err := svc.ComputeUsage(context.Background(), testSession, []models.Note{{Content: "abc"}})

	require.NoError(t, err)
	assert.True(t, usage.Unlimited)
	assert.Equal(t, int64(3), usage.UsedBytes, "usage is still tracked")
}

func TestClientStorageService_ComputeUsage_MetadataFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientStorageService(mockAdapter, newTestSealer(t), "", logger.Nop())
	mockAdapter.EXPECT().AttachmentInfo(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AttachmentInfo{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "x"))

	_, err := svc.ComputeUsage(context.Background(), testSession, []models.Note{{ImageRef: strPtr("a.png")}})

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

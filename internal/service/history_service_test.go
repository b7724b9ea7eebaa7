package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kvtranslate/backend/internal/model"
	"kvtranslate/backend/internal/repository/mock"
	"kvtranslate/backend/internal/service"
)

func TestHistoryService_List_DefaultAndCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batches := mock.NewMockBatchRepository(ctrl)
	svc := service.NewHistoryService(batches)
	ctx := context.Background()

	batches.EXPECT().List(ctx, 50).Return([]model.BatchSummary{{ID: "a"}}, nil)
	got, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	batches.EXPECT().List(ctx, 500).Return([]model.BatchSummary{}, nil)
	_, err = svc.List(ctx, 10000)
	require.NoError(t, err)

	_, err = svc.List(ctx, -1)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestHistoryService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batches := mock.NewMockBatchRepository(ctrl)
	svc := service.NewHistoryService(batches)
	ctx := context.Background()

	batches.EXPECT().GetByID(ctx, "b1").Return(model.BatchSummary{ID: "b1", DocumentCount: 1}, nil)
	batches.EXPECT().ListDocuments(ctx, "b1").Return([]model.BatchDocument{{ID: 7, BatchID: "b1"}}, nil)

	detail, err := svc.Get(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "b1", detail.ID)
	require.Len(t, detail.Documents, 1)
}

func TestHistoryService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batches := mock.NewMockBatchRepository(ctrl)
	svc := service.NewHistoryService(batches)
	ctx := context.Background()

	batches.EXPECT().GetByID(ctx, "missing").Return(model.BatchSummary{}, sql.ErrNoRows)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, service.ErrNotFound)

	batches.EXPECT().GetByID(ctx, "broken").Return(model.BatchSummary{}, errors.New("disk I/O error"))
	_, err = svc.Get(ctx, "broken")
	require.Error(t, err)
	require.NotErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Get(ctx, "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

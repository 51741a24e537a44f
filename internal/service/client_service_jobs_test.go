package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/mock"
	"github.com/mitchellbreust/client-crawler/models"
)

func newTestJobService(t *testing.T) (JobService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewJobService(mockAdapter, logger.Nop()), mockAdapter
}

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims fields", func(t *testing.T) {
		svc, mockAdapter := newTestJobService(t)

		mockAdapter.EXPECT().CreateJob(gomock.Any(), models.Job{BusinessName: "Cafe", BusinessPhone: "0400000000"}).
			Return(models.Job{ID: 1, BusinessName: "Cafe", BusinessPhone: "0400000000", Status: models.JobPending}, nil)

		job, err := svc.Create(ctx, models.Job{BusinessName: "  Cafe ", BusinessPhone: " 0400000000"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), job.ID)
	})

	t.Run("missing name or phone", func(t *testing.T) {
		svc, _ := newTestJobService(t)

		// адаптер не вызывается
		_, err := svc.Create(ctx, models.Job{BusinessName: "Cafe"})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, "Business name and phone are required", UserMessage(err))

		_, err = svc.Create(ctx, models.Job{BusinessPhone: "0400000000"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newTestJobService(t)

		_, err := svc.Create(ctx, models.Job{BusinessName: "Cafe", BusinessPhone: "1", Status: "ghosted"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, mockAdapter := newTestJobService(t)

		mockAdapter.EXPECT().CreateJob(gomock.Any(), gomock.Any()).
			Return(models.Job{}, adapter.NewHTTPError(http.StatusConflict, []byte(`{"message":"Job already exists"}`)))

		_, err := svc.Create(ctx, models.Job{BusinessName: "Cafe", BusinessPhone: "0400000000"})
		assert.ErrorIs(t, err, ErrDuplicateJob)
		assert.ErrorIs(t, err, adapter.ErrConflict)
		assert.Equal(t, MsgDuplicateJob, UserMessage(err))
	})
}

func TestJobService_ListGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc, mockAdapter := newTestJobService(t)

	jobs := []models.Job{{ID: 1, BusinessName: "Cafe"}, {ID: 2, BusinessName: "Bar"}}
	mockAdapter.EXPECT().ListJobs(gomock.Any()).Return(jobs, nil)
	mockAdapter.EXPECT().GetJob(gomock.Any(), int64(2)).Return(jobs[1], nil)
	mockAdapter.EXPECT().UpdateJob(gomock.Any(), int64(2), models.Job{Status: models.JobContacted}).
		Return(models.Job{ID: 2, BusinessName: "Bar", Status: models.JobContacted}, nil)
	mockAdapter.EXPECT().DeleteJob(gomock.Any(), int64(1)).Return(nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, jobs, got)

	job, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Bar", job.BusinessName)

	job, err = svc.Update(ctx, 2, models.Job{Status: models.JobContacted})
	require.NoError(t, err)
	assert.Equal(t, models.JobContacted, job.Status)

	require.NoError(t, svc.Delete(ctx, 1))
}

func TestJobService_DeleteNotFound(t *testing.T) {
	svc, mockAdapter := newTestJobService(t)

	mockAdapter.EXPECT().DeleteJob(gomock.Any(), int64(5)).
		Return(adapter.NewHTTPError(http.StatusNotFound, []byte(`{"message":"Job not found"}`)))

	err := svc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, "Job not found", UserMessage(err))
}

func TestJobService_Filter(t *testing.T) {
	svc, _ := newTestJobService(t)

	jobs := []models.Job{
		{ID: 1, BusinessName: "Bean Cafe", JobType: "Barista", Suburb: "Newtown", Status: models.JobPending},
		{ID: 2, BusinessName: "Hop Bar", JobType: "Bartender", Suburb: "Surry Hills", Status: models.JobContacted, HasConversation: true},
		{ID: 3, BusinessName: "Print Co", JobType: "Designer", Suburb: "Newtown", Status: models.JobContacted},
	}
	yes, no := true, false

	tests := []struct {
		name   string
		filter models.JobFilter
		want   []int64
	}{
		{name: "empty filter keeps all", filter: models.JobFilter{}, want: []int64{1, 2, 3}},
		{name: "query matches name", filter: models.JobFilter{Query: "cafe"}, want: []int64{1}},
		{name: "query matches job type", filter: models.JobFilter{Query: "BAR"}, want: []int64{1, 2}},
		{name: "query matches suburb", filter: models.JobFilter{Query: " newtown "}, want: []int64{1, 3}},
		{name: "status", filter: models.JobFilter{Status: models.JobContacted}, want: []int64{2, 3}},
		{name: "with conversation", filter: models.JobFilter{HasConversation: &yes}, want: []int64{2}},
		{name: "without conversation", filter: models.JobFilter{HasConversation: &no}, want: []int64{1, 3}},
		{name: "combined", filter: models.JobFilter{Query: "newtown", Status: models.JobContacted}, want: []int64{3}},
		{name: "no match", filter: models.JobFilter{Query: "plumber"}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(jobs, tt.filter)
			ids := make([]int64, 0, len(got))
			for _, j := range got {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

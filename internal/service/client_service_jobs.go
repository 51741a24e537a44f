package service

import (
	"context"
	"errors"
	"strings"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/models"
)

var validJobStatuses = map[string]bool{
	models.JobPending:   true,
	models.JobContacted: true,
	models.JobInterview: true,
	models.JobRejected:  true,
	models.JobHired:     true,
}

type jobService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewJobService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) JobService {
	return &jobService{adapter: serverAdapter, logger: logger}
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.adapter.ListJobs(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "jobService.List").Msg("error listing jobs")
		return nil, err
	}
	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, id int64) (models.Job, error) {
	return s.adapter.GetJob(ctx, id)
}

func (s *jobService) Create(ctx context.Context, job models.Job) (models.Job, error) {
	job.BusinessName = strings.TrimSpace(job.BusinessName)
	job.BusinessPhone = strings.TrimSpace(job.BusinessPhone)
	if job.BusinessName == "" || job.BusinessPhone == "" {
		return models.Job{}, newValidationError("Business name and phone are required")
	}
	if err := validateJobStatus(job.Status); err != nil {
		return models.Job{}, err
	}

	created, err := s.adapter.CreateJob(ctx, job)
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			s.logger.Debug().
				Str("func", "jobService.Create").
				Str("business_name", job.BusinessName).
				Msg("duplicate job")
		}
		return models.Job{}, mapAdapterError(err, ErrDuplicateJob)
	}
	return created, nil
}

func (s *jobService) Update(ctx context.Context, id int64, job models.Job) (models.Job, error) {
	if err := validateJobStatus(job.Status); err != nil {
		return models.Job{}, err
	}
	updated, err := s.adapter.UpdateJob(ctx, id, job)
	if err != nil {
		return models.Job{}, mapAdapterError(err, ErrDuplicateJob)
	}
	return updated, nil
}

func (s *jobService) Delete(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteJob(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "jobService.Delete").Int64("job_id", id).Msg("error deleting job")
		return err
	}
	return nil
}

// Filter keeps the jobs matching every set criterion, in input order.
func (s *jobService) Filter(jobs []models.Job, filter models.JobFilter) []models.Job {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		if filter.HasConversation != nil && job.HasConversation != *filter.HasConversation {
			continue
		}
		if query != "" && !matchesQuery(job, query) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func matchesQuery(job models.Job, query string) bool {
	for _, field := range []string{job.BusinessName, job.JobType, job.Suburb} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func validateJobStatus(status string) error {
	if status == "" || validJobStatuses[status] {
		return nil
	}
	return newValidationError("Unknown job status: " + status)
}

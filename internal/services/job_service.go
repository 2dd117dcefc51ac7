package services

import (
	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/logger"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services/dto"
	"seniorwork_backend/pkg/apperrors"
)

type JobService struct {
	jobRepo      repositories.JobRepository
	savedJobRepo repositories.SavedJobRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	savedJobRepo repositories.SavedJobRepository,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		savedJobRepo: savedJobRepo,
	}
}

// List is the public job search. callerID is empty for anonymous requests;
// when present, each row carries whether the caller has saved it.
func (s *JobService) List(callerID string, criteria repositories.JobFilter) ([]dto.JobResponse, dto.Pagination, error) {
	jobs, total, err := s.jobRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	savedSet := map[string]bool{}
	if callerID != "" && len(jobs) > 0 {
		ids := make([]string, 0, len(jobs))
		for i := range jobs {
			ids = append(ids, jobs[i].ID)
		}
		savedSet, err = s.savedJobRepo.SavedSet(callerID, ids)
		if err != nil {
			return nil, dto.Pagination{}, apperrors.InternalError(err)
		}
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i], savedSet[jobs[i].ID]))
	}
	return items, dto.NewPagination(criteria.Page, criteria.PageSize, total), nil
}

// Get returns a single job and counts the view. Employers viewing their own
// posting do not inflate the counter.
func (s *JobService) Get(callerID, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByIDWithEmployer(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if callerID != job.EmployerID {
		if err := s.jobRepo.IncrementViews(jobID); err != nil {
			logger.WithError(err).Warn("failed to increment job views", "job_id", jobID)
		} else {
			job.ViewsCount++
		}
	}

	isSaved := false
	if callerID != "" {
		isSaved, err = s.savedJobRepo.IsSaved(callerID, jobID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	resp := dto.NewJobResponse(job, isSaved)
	return &resp, nil
}

func (s *JobService) Create(caller auth.Caller, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := auth.Authorize(caller, auth.ActionJobCreate); err != nil {
		return nil, err
	}

	if req.AgeMin != nil && req.AgeMax != nil && *req.AgeMin > *req.AgeMax {
		return nil, apperrors.ErrInvalidOperation("job", "age_min must not exceed age_max")
	}

	job := &models.Job{
		EmployerID:  caller.ID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		JobType:     models.JobType(req.JobType),
		Category:    req.Category,
		Description: req.Description,
		Salary:      req.Salary,
		AgeMin:      req.AgeMin,
		AgeMax:      req.AgeMax,
		IsActive:    true,
		Deadline:    req.Deadline,
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobResponse(job, false)
	return &resp, nil
}

func (s *JobService) Update(caller auth.Caller, jobID string, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.AuthorizeOwner(caller, auth.ActionJobUpdate, job.EmployerID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.AgeMin != nil {
		job.AgeMin = req.AgeMin
	}
	if req.AgeMax != nil {
		job.AgeMax = req.AgeMax
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if job.AgeMin != nil && job.AgeMax != nil && *job.AgeMin > *job.AgeMax {
		return nil, apperrors.ErrInvalidOperation("job", "age_min must not exceed age_max")
	}

	if err := s.jobRepo.Update(job); err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobResponse(job, false)
	return &resp, nil
}

func (s *JobService) Delete(caller auth.Caller, jobID string) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := auth.AuthorizeOwner(caller, auth.ActionJobDelete, job.EmployerID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListByEmployer returns the employer's own postings, active or not.
func (s *JobService) ListByEmployer(employerID string, page, pageSize int) ([]dto.JobResponse, dto.Pagination, error) {
	jobs, total, err := s.jobRepo.ListByEmployer(employerID, page, pageSize)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i], false))
	}
	return items, dto.NewPagination(page, pageSize, total), nil
}

func (s *JobService) Save(caller auth.Caller, jobID string) error {
	if err := auth.Authorize(caller, auth.ActionJobSave); err != nil {
		return err
	}

	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.savedJobRepo.Save(caller.ID, jobID); err != nil {
		if err == repositories.ErrJobAlreadySaved {
			return apperrors.ErrAlreadySaved
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobService) Unsave(caller auth.Caller, jobID string) error {
	if err := auth.Authorize(caller, auth.ActionJobSave); err != nil {
		return err
	}

	if err := s.savedJobRepo.Unsave(caller.ID, jobID); err != nil {
		if err == repositories.ErrSavedJobNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobService) ListSaved(caller auth.Caller, page, pageSize int) ([]dto.JobResponse, dto.Pagination, error) {
	if err := auth.Authorize(caller, auth.ActionJobSave); err != nil {
		return nil, dto.Pagination{}, err
	}

	saved, total, err := s.savedJobRepo.ListByUser(caller.ID, page, pageSize)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.JobResponse, 0, len(saved))
	for i := range saved {
		if saved[i].Job == nil {
			continue
		}
		items = append(items, dto.NewJobResponse(saved[i].Job, true))
	}
	return items, dto.NewPagination(page, pageSize, total), nil
}

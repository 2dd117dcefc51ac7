package services

import (
	"time"

	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services/dto"
	"seniorwork_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo     repositories.ApplicationRepository
	jobRepo             repositories.JobRepository
	userRepo            repositories.UserRepository
	notificationService *NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notificationService *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo:     applicationRepo,
		jobRepo:             jobRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// Submit creates an application. The insert, the job counter bump and both
// notifications commit in one transaction, so either the candidate applied
// and everyone was told, or nothing happened at all.
func (s *ApplicationService) Submit(caller auth.Caller, req dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := auth.Authorize(caller, auth.ActionApplicationCreate); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !job.IsActive {
		return nil, apperrors.ErrJobInactive
	}
	if job.Deadline != nil && time.Now().After(*job.Deadline) {
		return nil, apperrors.ErrJobDeadlinePassed
	}
	if job.EmployerID == caller.ID {
		return nil, apperrors.ErrInvalidOperation("application", "You cannot apply to your own job")
	}

	candidate, err := s.userRepo.FindByID(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	app := &models.Application{
		JobID:       req.JobID,
		CandidateID: caller.ID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	}

	notifications := []*models.Notification{
		{
			UserID:     job.EmployerID,
			Type:       models.NotificationTypeInfo,
			Title:      "New application",
			Message:    candidate.Name + " applied to " + job.Title + ".",
			ActionURL:  "/employer/jobs/" + job.ID + "/applications",
			ActionText: "Review application",
		},
		{
			UserID:     caller.ID,
			Type:       models.NotificationTypeSuccess,
			Title:      "Application sent",
			Message:    "Your application for " + job.Title + " at " + job.Company + " was submitted.",
			ActionURL:  "/applications",
			ActionText: "View applications",
		},
	}

	if err := s.applicationRepo.CreateWithFanOut(app, notifications); err != nil {
		if err == repositories.ErrDuplicateApplication {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	app.Job = job
	app.Candidate = candidate
	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationService) Get(caller auth.Caller, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	employerID := ""
	if app.Job != nil {
		employerID = app.Job.EmployerID
	}
	if !auth.IsParticipant(caller, app.CandidateID, employerID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

// List returns the caller's applications: the candidate sees their own,
// the employer sees applications across their jobs.
func (s *ApplicationService) List(caller auth.Caller, query dto.ListApplicationsQuery) ([]dto.ApplicationResponse, dto.Pagination, error) {
	var (
		apps  []models.Application
		total int64
		err   error
	)

	switch caller.Role {
	case models.UserRoleCandidate:
		apps, total, err = s.applicationRepo.ListByCandidate(caller.ID, query.Page, query.PageSize)
	case models.UserRoleEmployer:
		if query.JobID != "" {
			job, jobErr := s.jobRepo.FindByID(query.JobID)
			if jobErr != nil {
				if jobErr == repositories.ErrJobNotFound {
					return nil, dto.Pagination{}, apperrors.ErrNotFound(jobErr)
				}
				return nil, dto.Pagination{}, apperrors.InternalError(jobErr)
			}
			if job.EmployerID != caller.ID {
				return nil, dto.Pagination{}, apperrors.ErrInsufficientPermissions
			}
			apps, total, err = s.applicationRepo.ListByJob(query.JobID, query.Status, query.Page, query.PageSize)
		} else {
			apps, total, err = s.applicationRepo.ListByEmployer(caller.ID, query.Status, query.Page, query.PageSize)
		}
	case models.UserRoleAdmin:
		if query.JobID != "" {
			apps, total, err = s.applicationRepo.ListByJob(query.JobID, query.Status, query.Page, query.PageSize)
		} else {
			return nil, dto.Pagination{}, apperrors.ErrInvalidOperation("application", "job_id is required")
		}
	default:
		return nil, dto.Pagination{}, apperrors.ErrInsufficientPermissions
	}

	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		items = append(items, dto.NewApplicationResponse(&apps[i]))
	}
	return items, dto.NewPagination(query.Page, query.PageSize, total), nil
}

// UpdateStatus moves an application through the employer's review flow. The
// status change and the candidate's notification commit together.
func (s *ApplicationService) UpdateStatus(caller auth.Caller, applicationID string, req dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if err := auth.Authorize(caller, auth.ActionApplicationModerate); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if app.Job == nil || !auth.IsParticipant(caller, app.Job.EmployerID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	newStatus := models.ApplicationStatus(req.Status)
	if !validApplicationTransition(app.Status, newStatus) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	notification := applicationDecisionNotification(app, newStatus)
	if err := s.applicationRepo.UpdateStatus(applicationID, newStatus, req.Rating, notification); err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	app.Status = newStatus
	if req.Rating != nil {
		app.Rating = req.Rating
	}
	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

// Withdraw removes the candidate's own pending application and releases the
// job counter.
func (s *ApplicationService) Withdraw(caller auth.Caller, applicationID string) error {
	if err := auth.Authorize(caller, auth.ActionApplicationWithdraw); err != nil {
		return err
	}

	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if app.CandidateID != caller.ID {
		return apperrors.ErrInsufficientPermissions
	}
	if app.Status == models.ApplicationStatusAccepted {
		return apperrors.ErrInvalidApplicationStatus
	}

	if err := s.applicationRepo.DeleteWithCounter(applicationID, app.JobID); err != nil {
		return apperrors.InternalError(err)
	}

	if app.Job != nil {
		s.notificationService.NotifyUser(app.Job.EmployerID, models.NotificationTypeWarning,
			"Application withdrawn",
			"A candidate withdrew their application for "+app.Job.Title+".",
			"/employer/jobs/"+app.JobID+"/applications", "")
	}
	return nil
}

// pending can move anywhere; reviewed can still be decided; accepted and
// rejected are terminal.
func validApplicationTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.ApplicationStatusPending:
		return to == models.ApplicationStatusReviewed || to == models.ApplicationStatusAccepted || to == models.ApplicationStatusRejected
	case models.ApplicationStatusReviewed:
		return to == models.ApplicationStatusAccepted || to == models.ApplicationStatusRejected
	default:
		return false
	}
}

func applicationDecisionNotification(app *models.Application, status models.ApplicationStatus) *models.Notification {
	jobTitle := "the job"
	if app.Job != nil {
		jobTitle = app.Job.Title
	}

	switch status {
	case models.ApplicationStatusAccepted:
		return &models.Notification{
			UserID:     app.CandidateID,
			Type:       models.NotificationTypeSuccess,
			Title:      "Application accepted",
			Message:    "Congratulations. Your application for " + jobTitle + " was accepted.",
			ActionURL:  "/applications/" + app.ID,
			ActionText: "View application",
		}
	case models.ApplicationStatusRejected:
		return &models.Notification{
			UserID:    app.CandidateID,
			Type:      models.NotificationTypeError,
			Title:     "Application rejected",
			Message:   "Your application for " + jobTitle + " was not successful.",
			ActionURL: "/jobs",
		}
	case models.ApplicationStatusReviewed:
		return &models.Notification{
			UserID:    app.CandidateID,
			Type:      models.NotificationTypeInfo,
			Title:     "Application under review",
			Message:   "Your application for " + jobTitle + " is being reviewed.",
			ActionURL: "/applications/" + app.ID,
		}
	default:
		return nil
	}
}

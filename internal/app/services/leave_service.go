package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/app/models/dto"
	"github.com/bkaya/studentportal/internal/app/repositories"
	"github.com/bkaya/studentportal/internal/pkg/apperrors"
	"github.com/bkaya/studentportal/internal/pkg/helpers"
	"github.com/bkaya/studentportal/internal/pkg/logger"
)

type leaveService struct {
	leaveRepo     repositories.ILeaveRepository
	notifications NotificationService
}

// NewLeaveService creates a new instance of LeaveService
func NewLeaveService(
	leaveRepo repositories.ILeaveRepository,
	notifications NotificationService,
) LeaveService {
	return &leaveService{
		leaveRepo:     leaveRepo,
		notifications: notifications,
	}
}

// Apply submits a leave application and notifies all faculty members. The
// end date must not precede the start date.
func (s *leaveService) Apply(ctx context.Context, applicantID int64, applicantName string, req *dto.ApplyLeaveRequest) (*models.LeaveApplication, error) {
	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.ErrInvalidLeaveDates
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.ErrInvalidLeaveDates
	}
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidLeaveDates
	}

	application := &models.LeaveApplication{
		ApplicantID: applicantID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      models.LeaveStatusPending,
	}

	id, err := s.leaveRepo.Create(ctx, application)
	if err != nil {
		return nil, fmt.Errorf("failed to create leave application: %w", err)
	}
	application.ID = id

	content := fmt.Sprintf("New leave application from %s", applicantName)
	if _, err := s.notifications.NotifyRole(ctx, models.RoleFaculty, content, "/leave/manage"); err != nil {
		logger.Error().Err(err).Int64("leaveId", id).Msg("Failed to notify faculty of leave application")
	}

	return application, nil
}

// ListPending returns all pending applications with applicant names
func (s *leaveService) ListPending(ctx context.Context) ([]dto.PendingLeave, error) {
	return s.leaveRepo.GetPendingWithApplicant(ctx)
}

// Decide approves or rejects a pending application and notifies the
// applicant. The decision is "approve" or "reject"; anything else is
// rejected before touching the database.
func (s *leaveService) Decide(ctx context.Context, leaveID int64, decision string, reviewerID int64) (*models.LeaveApplication, error) {
	var status models.LeaveStatus
	switch decision {
	case "approve":
		status = models.LeaveStatusApproved
	case "reject":
		status = models.LeaveStatusRejected
	default:
		return nil, apperrors.ErrInvalidDecision
	}

	reviewedAt := time.Now()
	if err := s.leaveRepo.Decide(ctx, leaveID, status, reviewerID, reviewedAt); err != nil {
		return nil, err
	}

	application, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf("Your leave application has been %s", status)
	if err := s.notifications.Notify(ctx, application.ApplicantID, content, "/dashboard"); err != nil {
		logger.Error().Err(err).Int64("leaveId", leaveID).Msg("Failed to notify leave applicant")
	}

	return application, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/develeep/llowa-eng/v1/models"
	"github.com/develeep/llowa-eng/v1/store"
	"github.com/google/uuid"
)

// ApplicationService handles responses in both directions: visitors applying
// to invitations, and guides responding to visitor requests.
type ApplicationService struct {
	store store.RecordStore
}

// NewApplicationService creates a new application service
func NewApplicationService(st store.RecordStore) *ApplicationService {
	return &ApplicationService{store: st}
}

// CreateApplication creates a visitor's application to an invitation. The
// target invitation is fetched first so the participant count can be checked
// against its cap; the contact row and the application row are then created
// in a single transaction.
func (s *ApplicationService) CreateApplication(ctx context.Context, invitationID string, req *models.CreateApplicationRequest) (*models.ApplicationResponse, error) {
	var invitation models.Invitation
	if err := s.store.GetByID(ctx, &invitation, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	if err := req.Validate(invitation.MaxParticipants); err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:          uuid.New().String(),
		ContactInfo: req.Contact,
		ContactType: string(models.ContactTypeApplication),
	}
	application := models.Application{
		ID:                 uuid.New().String(),
		InvitationID:       invitation.ID,
		ContactID:          contact.ID,
		Participants:       req.Participants,
		InterestedLocation: req.InterestedLocation,
		PreferredDate:      req.PreferredDate,
		AgeRange:           req.AgeRange,
		Languages:          req.Languages,
	}

	err := s.store.Transaction(ctx, func(tx store.RecordStore) error {
		if err := tx.Create(ctx, &contact); err != nil {
			return fmt.Errorf("failed to create contact: %w", err)
		}
		if err := tx.Create(ctx, &application); err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Application created",
		"applicationID", application.ID,
		"invitationID", invitation.ID,
		"contactID", contact.ID)

	response := application.ToResponse()
	return &response, nil
}

// CreateLocalApplication creates a guide's response to a visitor request.
// The participant count is copied from the parent request rather than taken
// from the submitter.
func (s *ApplicationService) CreateLocalApplication(ctx context.Context, visitorRequestID string, req *models.CreateLocalApplicationRequest) (*models.LocalApplicationResponse, error) {
	var request models.VisitorRequest
	if err := s.store.GetByID(ctx, &request, visitorRequestID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.ErrVisitorRequestNotFound
		}
		return nil, fmt.Errorf("failed to get visitor request: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:          uuid.New().String(),
		ContactInfo: req.Contact,
		ContactType: string(models.ContactTypeApplication),
	}
	application := models.LocalApplication{
		ID:                 uuid.New().String(),
		VisitorRequestID:   request.ID,
		ContactID:          contact.ID,
		Participants:       request.Participants,
		InterestedLocation: req.InterestedLocation,
		Gender:             req.Gender,
		AgeRange:           req.AgeRange,
		Languages:          req.Languages,
	}

	err := s.store.Transaction(ctx, func(tx store.RecordStore) error {
		if err := tx.Create(ctx, &contact); err != nil {
			return fmt.Errorf("failed to create contact: %w", err)
		}
		if err := tx.Create(ctx, &application); err != nil {
			return fmt.Errorf("failed to create local application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Local application created",
		"localApplicationID", application.ID,
		"visitorRequestID", request.ID,
		"contactID", contact.ID)

	response := application.ToResponse()
	return &response, nil
}

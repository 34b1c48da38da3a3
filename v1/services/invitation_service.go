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

// InvitationService handles guide-authored invitations
type InvitationService struct {
	store store.RecordStore
}

// NewInvitationService creates a new invitation service
func NewInvitationService(st store.RecordStore) *InvitationService {
	return &InvitationService{store: st}
}

// CreateInvitation validates the request and creates the contact row and the
// invitation row in a single transaction, so a failed invitation insert never
// leaves an orphaned contact behind.
func (s *InvitationService) CreateInvitation(ctx context.Context, req *models.CreateInvitationRequest) (*models.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:          uuid.New().String(),
		ContactInfo: req.Contact,
		ContactType: string(models.ContactTypeInvitation),
	}
	invitation := models.Invitation{
		ID:                uuid.New().String(),
		Title:             req.Title,
		Time:              req.Time,
		Location:          req.Location,
		Activity:          req.Activity,
		AgeRange:          req.AgeRange,
		Gender:            req.Gender,
		Languages:         req.Languages,
		PreferredGender:   req.PreferredGender,
		PreferredAgeRange: req.PreferredAgeRange,
		MaxParticipants:   req.MaxParticipants,
		ContactID:         contact.ID,
	}

	err := s.store.Transaction(ctx, func(tx store.RecordStore) error {
		if err := tx.Create(ctx, &contact); err != nil {
			return fmt.Errorf("failed to create contact: %w", err)
		}
		if err := tx.Create(ctx, &invitation); err != nil {
			return fmt.Errorf("failed to create invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Invitation created", "invitationID", invitation.ID, "contactID", contact.ID)

	response := invitation.ToResponse()
	return &response, nil
}

// GetInvitations retrieves all invitations, newest first
func (s *InvitationService) GetInvitations(ctx context.Context) ([]models.InvitationResponse, error) {
	var invitations []models.Invitation
	if err := s.store.ListNewestFirst(ctx, &invitations); err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	responses := make([]models.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		responses = append(responses, invitations[i].ToResponse())
	}
	return responses, nil
}

// GetInvitation retrieves a single invitation by id
func (s *InvitationService) GetInvitation(ctx context.Context, invitationID string) (*models.InvitationResponse, error) {
	var invitation models.Invitation
	if err := s.store.GetByID(ctx, &invitation, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	response := invitation.ToResponse()
	return &response, nil
}

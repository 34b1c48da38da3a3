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

// VisitorRequestService handles visitor-authored meetup requests
type VisitorRequestService struct {
	store store.RecordStore
}

// NewVisitorRequestService creates a new visitor request service
func NewVisitorRequestService(st store.RecordStore) *VisitorRequestService {
	return &VisitorRequestService{store: st}
}

// CreateVisitorRequest validates the request and creates the contact row and
// the visitor request row in a single transaction.
func (s *VisitorRequestService) CreateVisitorRequest(ctx context.Context, req *models.CreateVisitorRequestRequest) (*models.VisitorRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:          uuid.New().String(),
		ContactInfo: req.Contact,
		ContactType: string(models.ContactTypeVisitorRequest),
	}
	request := models.VisitorRequest{
		ID:                uuid.New().String(),
		Title:             req.Title,
		Time:              req.Time,
		Location:          req.Location,
		Participants:      req.Participants,
		AgeRange:          req.AgeRange,
		Gender:            req.Gender,
		Languages:         req.Languages,
		PreferredGender:   req.PreferredGender,
		PreferredAgeRange: req.PreferredAgeRange,
		CompanionGenders:  req.CompanionGenders,
		ContactID:         contact.ID,
	}

	err := s.store.Transaction(ctx, func(tx store.RecordStore) error {
		if err := tx.Create(ctx, &contact); err != nil {
			return fmt.Errorf("failed to create contact: %w", err)
		}
		if err := tx.Create(ctx, &request); err != nil {
			return fmt.Errorf("failed to create visitor request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Visitor request created", "visitorRequestID", request.ID, "contactID", contact.ID)

	response := request.ToResponse()
	return &response, nil
}

// GetVisitorRequests retrieves all visitor requests, newest first
func (s *VisitorRequestService) GetVisitorRequests(ctx context.Context) ([]models.VisitorRequestResponse, error) {
	var requests []models.VisitorRequest
	if err := s.store.ListNewestFirst(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to list visitor requests: %w", err)
	}

	responses := make([]models.VisitorRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToResponse())
	}
	return responses, nil
}

// GetVisitorRequest retrieves a single visitor request by id
func (s *VisitorRequestService) GetVisitorRequest(ctx context.Context, requestID string) (*models.VisitorRequestResponse, error) {
	var request models.VisitorRequest
	if err := s.store.GetByID(ctx, &request, requestID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.ErrVisitorRequestNotFound
		}
		return nil, fmt.Errorf("failed to get visitor request: %w", err)
	}

	response := request.ToResponse()
	return &response, nil
}

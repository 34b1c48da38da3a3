package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/develeep/llowa-eng/shared/utils"
	"github.com/develeep/llowa-eng/v1/models"
	"github.com/develeep/llowa-eng/v1/services"
	"github.com/develeep/llowa-eng/v1/store"

	"gorm.io/gorm"
)

// V1Handler handles all V1 API routes
type V1Handler struct {
	invitationService     *services.InvitationService
	visitorRequestService *services.VisitorRequestService
	applicationService    *services.ApplicationService
}

// NewV1Handler creates a new V1 handler
func NewV1Handler(db *gorm.DB) *V1Handler {
	st := store.NewGormStore(db)

	return &V1Handler{
		invitationService:     services.NewInvitationService(st),
		visitorRequestService: services.NewVisitorRequestService(st),
		applicationService:    services.NewApplicationService(st),
	}
}

// SetupV1Routes configures all V1 API routes
func (h *V1Handler) SetupV1Routes(mux *http.ServeMux) {
	// Invitation routes
	mux.Handle("/api/v1/invitations", utils.PanicRecoveryMiddleware(http.HandlerFunc(h.handleInvitations)))
	mux.Handle("/api/v1/invitations/", utils.PanicRecoveryMiddleware(http.HandlerFunc(h.handleInvitations)))

	// Visitor request routes
	mux.Handle("/api/v1/visitor-requests", utils.PanicRecoveryMiddleware(http.HandlerFunc(h.handleVisitorRequests)))
	mux.Handle("/api/v1/visitor-requests/", utils.PanicRecoveryMiddleware(http.HandlerFunc(h.handleVisitorRequests)))
}

// handleInvitations handles the invitation collection, detail and application
// routes
func (h *V1Handler) handleInvitations(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/invitations")
	parts := strings.Split(strings.Trim(path, "/"), "/")

	// Collection endpoint: GET /api/v1/invitations and POST /api/v1/invitations
	if len(parts) == 1 && parts[0] == "" {
		switch r.Method {
		case http.MethodGet:
			h.listInvitations(w, r)
		case http.MethodPost:
			h.createInvitation(w, r)
		default:
			utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
		return
	}

	invitationID := parts[0]

	// Detail endpoint: GET /api/v1/invitations/{id}
	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.getInvitation(w, r, invitationID)
		return
	}

	// Subresource endpoint: POST /api/v1/invitations/{id}/applications
	if len(parts) == 2 && parts[1] == "applications" {
		if r.Method != http.MethodPost {
			utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.createApplication(w, r, invitationID)
		return
	}

	utils.RespondWithError(w, http.StatusNotFound, "Resource not found")
}

// handleVisitorRequests handles the visitor request collection, detail and
// response routes
func (h *V1Handler) handleVisitorRequests(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/visitor-requests")
	parts := strings.Split(strings.Trim(path, "/"), "/")

	if len(parts) == 1 && parts[0] == "" {
		switch r.Method {
		case http.MethodGet:
			h.listVisitorRequests(w, r)
		case http.MethodPost:
			h.createVisitorRequest(w, r)
		default:
			utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
		return
	}

	requestID := parts[0]

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.getVisitorRequest(w, r, requestID)
		return
	}

	// Subresource endpoint: POST /api/v1/visitor-requests/{id}/responses
	if len(parts) == 2 && parts[1] == "responses" {
		if r.Method != http.MethodPost {
			utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.createLocalApplication(w, r, requestID)
		return
	}

	utils.RespondWithError(w, http.StatusNotFound, "Resource not found")
}

func (h *V1Handler) createInvitation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	invitation, err := h.invitationService.CreateInvitation(r.Context(), &req)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to create invitation")
		return
	}

	utils.RespondWithSuccess(w, http.StatusCreated, invitation)
}

func (h *V1Handler) listInvitations(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.invitationService.GetInvitations(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to list invitations")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, models.CollectionResponse{
		Items: invitations,
		Count: len(invitations),
	})
}

func (h *V1Handler) getInvitation(w http.ResponseWriter, r *http.Request, invitationID string) {
	invitation, err := h.invitationService.GetInvitation(r.Context(), invitationID)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to get invitation")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, invitation)
}

func (h *V1Handler) createApplication(w http.ResponseWriter, r *http.Request, invitationID string) {
	var req models.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	application, err := h.applicationService.CreateApplication(r.Context(), invitationID, &req)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to create application")
		return
	}

	utils.RespondWithSuccess(w, http.StatusCreated, application)
}

func (h *V1Handler) createVisitorRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVisitorRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	request, err := h.visitorRequestService.CreateVisitorRequest(r.Context(), &req)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to create visitor request")
		return
	}

	utils.RespondWithSuccess(w, http.StatusCreated, request)
}

func (h *V1Handler) listVisitorRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.visitorRequestService.GetVisitorRequests(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to list visitor requests")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, models.CollectionResponse{
		Items: requests,
		Count: len(requests),
	})
}

func (h *V1Handler) getVisitorRequest(w http.ResponseWriter, r *http.Request, requestID string) {
	request, err := h.visitorRequestService.GetVisitorRequest(r.Context(), requestID)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to get visitor request")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, request)
}

func (h *V1Handler) createLocalApplication(w http.ResponseWriter, r *http.Request, requestID string) {
	var req models.CreateLocalApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	application, err := h.applicationService.CreateLocalApplication(r.Context(), requestID, &req)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to create response")
		return
	}

	utils.RespondWithSuccess(w, http.StatusCreated, application)
}

// respondWithServiceError maps service errors to HTTP status codes. Validation
// failures surface their message so the client can show it; everything else
// gets the generic message and a log entry happens at the service layer.
func (h *V1Handler) respondWithServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvitationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Invitation not found")
	case errors.Is(err, models.ErrVisitorRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Visitor request not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}

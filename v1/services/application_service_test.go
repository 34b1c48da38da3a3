package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/develeep/llowa-eng/v1/models"
	"github.com/develeep/llowa-eng/v1/store"
)

func validCreateApplicationRequest() *models.CreateApplicationRequest {
	return &models.CreateApplicationRequest{
		Participants:       2,
		InterestedLocation: "Hongdae",
		AgeRange:           "20s",
		Languages:          "English",
		Contact:            "line: traveller123",
		PrivacyAccepted:    true,
	}
}

func TestCreateApplication(t *testing.T) {
	db := SetupSQLiteTestDB(t)
	st := store.NewGormStore(db)
	invitationService := NewInvitationService(st)
	applicationService := NewApplicationService(st)
	ctx := context.Background()

	invitation, err := invitationService.CreateInvitation(ctx, validCreateInvitationRequest())
	require.NoError(t, err)

	resp, err := applicationService.CreateApplication(ctx, invitation.ID, validCreateApplicationRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, invitation.ID, resp.InvitationID)
	assert.Equal(t, 2, resp.Participants)
	assert.NotEqual(t, invitation.ContactID, resp.ContactID, "application gets its own contact row")

	var contacts []models.Contact
	require.NoError(t, db.Where("contact_type = ?", string(models.ContactTypeApplication)).Find(&contacts).Error)
	require.Len(t, contacts, 1)
	assert.Equal(t, resp.ContactID, contacts[0].ID)
}

func TestCreateApplicationParticipantCap(t *testing.T) {
	db := SetupSQLiteTestDB(t)
	st := store.NewGormStore(db)
	invitationService := NewInvitationService(st)
	applicationService := NewApplicationService(st)
	ctx := context.Background()

	// Invitation capped at 4 participants
	invitation, err := invitationService.CreateInvitation(ctx, validCreateInvitationRequest())
	require.NoError(t, err)

	atCap := validCreateApplicationRequest()
	atCap.Participants = 4
	_, err = applicationService.CreateApplication(ctx, invitation.ID, atCap)
	assert.NoError(t, err, "applying with exactly max_participants must succeed")

	overCap := validCreateApplicationRequest()
	overCap.Participants = 5
	_, err = applicationService.CreateApplication(ctx, invitation.ID, overCap)
	assert.ErrorIs(t, err, models.ErrValidation)

	// The rejected application left no rows behind
	var applicationCount int64
	require.NoError(t, db.Model(&models.Application{}).Count(&applicationCount).Error)
	assert.Equal(t, int64(1), applicationCount)

	var contactCount int64
	require.NoError(t, db.Model(&models.Contact{}).
		Where("contact_type = ?", string(models.ContactTypeApplication)).
		Count(&contactCount).Error)
	assert.Equal(t, int64(1), contactCount)
}

func TestCreateApplicationUnknownInvitation(t *testing.T) {
	db := SetupSQLiteTestDB(t)
	applicationService := NewApplicationService(store.NewGormStore(db))

	_, err := applicationService.CreateApplication(context.Background(), "missing-id", validCreateApplicationRequest())
	assert.ErrorIs(t, err, models.ErrInvitationNotFound)

	var contactCount int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&contactCount).Error)
	assert.Zero(t, contactCount)
}

func TestCreateApplicationPreferredDateOptional(t *testing.T) {
	db := SetupSQLiteTestDB(t)
	st := store.NewGormStore(db)
	invitationService := NewInvitationService(st)
	applicationService := NewApplicationService(st)
	ctx := context.Background()

	invitation, err := invitationService.CreateInvitation(ctx, validCreateInvitationRequest())
	require.NoError(t, err)

	withoutDate := validCreateApplicationRequest()
	resp, err := applicationService.CreateApplication(ctx, invitation.ID, withoutDate)
	require.NoError(t, err)
	assert.Nil(t, resp.PreferredDate)

	date := "2026-10-03"
	withDate := validCreateApplicationRequest()
	withDate.PreferredDate = &date
	resp, err = applicationService.CreateApplication(ctx, invitation.ID, withDate)
	require.NoError(t, err)
	require.NotNil(t, resp.PreferredDate)
	assert.Equal(t, date, *resp.PreferredDate)
}

func TestCreateLocalApplication(t *testing.T) {
	db := SetupSQLiteTestDB(t)
	st := store.NewGormStore(db)
	visitorRequestService := NewVisitorRequestService(st)
	applicationService := NewApplicationService(st)
	ctx := context.Background()

	parent, err := visitorRequestService.CreateVisitorRequest(ctx, validCreateVisitorRequestRequest())
	require.NoError(t, err)

	resp, err := applicationService.CreateLocalApplication(ctx, parent.ID, &models.CreateLocalApplicationRequest{
		InterestedLocation: "Gangnam",
		Gender:             "female",
		AgeRange:           "40s",
		Languages:          "Korean",
		Contact:            "010-1234-5678",
		PrivacyAccepted:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, parent.ID, resp.VisitorRequestID)
	assert.Equal(t, parent.Participants, resp.Participants, "participant count is copied from the parent request")

	var contacts []models.Contact
	require.NoError(t, db.Where("contact_type = ?", string(models.ContactTypeApplication)).Find(&contacts).Error)
	require.Len(t, contacts, 1)
	assert.Equal(t, resp.ContactID, contacts[0].ID)
}

func TestCreateLocalApplicationUnknownVisitorRequest(t *testing.T) {
	db := SetupSQLiteTestDB(t)
	applicationService := NewApplicationService(store.NewGormStore(db))

	_, err := applicationService.CreateLocalApplication(context.Background(), "missing-id", &models.CreateLocalApplicationRequest{
		InterestedLocation: "Gangnam",
		Contact:            "010-1234-5678",
		PrivacyAccepted:    true,
	})
	assert.ErrorIs(t, err, models.ErrVisitorRequestNotFound)
}

func TestCreateLocalApplicationValidationFailureWritesNothing(t *testing.T) {
	db := SetupSQLiteTestDB(t)
	st := store.NewGormStore(db)
	visitorRequestService := NewVisitorRequestService(st)
	applicationService := NewApplicationService(st)
	ctx := context.Background()

	parent, err := visitorRequestService.CreateVisitorRequest(ctx, validCreateVisitorRequestRequest())
	require.NoError(t, err)

	_, err = applicationService.CreateLocalApplication(ctx, parent.ID, &models.CreateLocalApplicationRequest{
		InterestedLocation: "Gangnam",
		Contact:            "010-1234-5678",
		PrivacyAccepted:    false,
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	var count int64
	require.NoError(t, db.Model(&models.LocalApplication{}).Count(&count).Error)
	assert.Zero(t, count)
}

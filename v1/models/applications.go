package models

import "time"

// Application is a visitor's response to an Invitation. The participant
// count is bounded by the invitation's max_participants at creation time.
type Application struct {
	ID                 string  `gorm:"primarykey;column:id" json:"id"`
	InvitationID       string  `gorm:"column:invitation_id;not null" json:"invitationId"`
	ContactID          string  `gorm:"column:contact_id;not null" json:"contactId"`
	Participants       int     `gorm:"column:participants;not null" json:"participants"`
	InterestedLocation string  `gorm:"column:interested_location;not null" json:"interestedLocation"`
	PreferredDate      *string `gorm:"column:preferred_date" json:"preferredDate,omitempty"`
	AgeRange           string  `gorm:"column:age_range;not null" json:"ageRange"`
	Languages          string  `gorm:"column:languages" json:"languages"`
	BaseModel
}

// TableName sets the table name for GORM
func (Application) TableName() string {
	return "applications"
}

// ToResponse converts the row to its API representation
func (a *Application) ToResponse() ApplicationResponse {
	return ApplicationResponse{
		ID:                 a.ID,
		InvitationID:       a.InvitationID,
		ContactID:          a.ContactID,
		Participants:       a.Participants,
		InterestedLocation: a.InterestedLocation,
		PreferredDate:      a.PreferredDate,
		AgeRange:           a.AgeRange,
		Languages:          a.Languages,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
	}
}

// LocalApplication is a guide's response to a VisitorRequest. The
// participant count is denormalized from the parent request rather than
// taken from the submitter.
type LocalApplication struct {
	ID                 string `gorm:"primarykey;column:id" json:"id"`
	VisitorRequestID   string `gorm:"column:visitor_request_id;not null" json:"visitorRequestId"`
	ContactID          string `gorm:"column:contact_id;not null" json:"contactId"`
	Participants       int    `gorm:"column:participants;not null" json:"participants"`
	InterestedLocation string `gorm:"column:interested_location;not null" json:"interestedLocation"`
	Gender             string `gorm:"column:gender" json:"gender"`
	AgeRange           string `gorm:"column:age_range" json:"ageRange"`
	Languages          string `gorm:"column:languages" json:"languages"`
	BaseModel
}

// TableName sets the table name for GORM
func (LocalApplication) TableName() string {
	return "local_applications"
}

// ToResponse converts the row to its API representation
func (l *LocalApplication) ToResponse() LocalApplicationResponse {
	return LocalApplicationResponse{
		ID:                 l.ID,
		VisitorRequestID:   l.VisitorRequestID,
		ContactID:          l.ContactID,
		Participants:       l.Participants,
		InterestedLocation: l.InterestedLocation,
		Gender:             l.Gender,
		AgeRange:           l.AgeRange,
		Languages:          l.Languages,
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
	}
}

package models

import "time"

// Invitation is a guide-authored, browsable meetup offer
type Invitation struct {
	ID                string `gorm:"primarykey;column:id" json:"id"`
	Title             string `gorm:"column:title;not null" json:"title"`
	Time              string `gorm:"column:time;not null" json:"time"`
	Location          string `gorm:"column:location;not null" json:"location"`
	Activity          string `gorm:"column:activity;not null" json:"activity"`
	AgeRange          string `gorm:"column:age_range;not null" json:"ageRange"`
	Gender            string `gorm:"column:gender;not null" json:"gender"`
	Languages         string `gorm:"column:languages;not null" json:"languages"`
	PreferredGender   string `gorm:"column:preferred_gender;not null" json:"preferredGender"`
	PreferredAgeRange string `gorm:"column:preferred_age_range;not null" json:"preferredAgeRange"`
	MaxParticipants   int    `gorm:"column:max_participants;not null" json:"maxParticipants"`
	ContactID         string `gorm:"column:contact_id;not null" json:"contactId"`
	BaseModel
}

// TableName sets the table name for GORM
func (Invitation) TableName() string {
	return "invitations"
}

// ToResponse converts the row to its API representation
func (i *Invitation) ToResponse() InvitationResponse {
	return InvitationResponse{
		ID:                i.ID,
		Title:             i.Title,
		Time:              i.Time,
		Location:          i.Location,
		Activity:          i.Activity,
		AgeRange:          i.AgeRange,
		Gender:            i.Gender,
		Languages:         i.Languages,
		PreferredGender:   i.PreferredGender,
		PreferredAgeRange: i.PreferredAgeRange,
		MaxParticipants:   i.MaxParticipants,
		ContactID:         i.ContactID,
		CreatedAt:         i.CreatedAt.Format(time.RFC3339),
	}
}

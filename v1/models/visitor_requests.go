package models

import "time"

// VisitorRequest is a visitor-authored, browsable meetup ask
type VisitorRequest struct {
	ID                string `gorm:"primarykey;column:id" json:"id"`
	Title             string `gorm:"column:title;not null" json:"title"`
	Time              string `gorm:"column:time;not null" json:"time"`
	Location          string `gorm:"column:location;not null" json:"location"`
	Participants      int    `gorm:"column:participants;not null" json:"participants"`
	AgeRange          string `gorm:"column:age_range;not null" json:"ageRange"`
	Gender            string `gorm:"column:gender;not null" json:"gender"`
	Languages         string `gorm:"column:languages;not null" json:"languages"`
	PreferredGender   string `gorm:"column:preferred_gender;not null" json:"preferredGender"`
	PreferredAgeRange string `gorm:"column:preferred_age_range;not null" json:"preferredAgeRange"`
	CompanionGenders  string `gorm:"column:companion_genders" json:"companionGenders"`
	ContactID         string `gorm:"column:contact_id;not null" json:"contactId"`
	BaseModel
}

// TableName sets the table name for GORM
func (VisitorRequest) TableName() string {
	return "visitor_requests"
}

// ToResponse converts the row to its API representation
func (v *VisitorRequest) ToResponse() VisitorRequestResponse {
	return VisitorRequestResponse{
		ID:                v.ID,
		Title:             v.Title,
		Time:              v.Time,
		Location:          v.Location,
		Participants:      v.Participants,
		AgeRange:          v.AgeRange,
		Gender:            v.Gender,
		Languages:         v.Languages,
		PreferredGender:   v.PreferredGender,
		PreferredAgeRange: v.PreferredAgeRange,
		CompanionGenders:  v.CompanionGenders,
		ContactID:         v.ContactID,
		CreatedAt:         v.CreatedAt.Format(time.RFC3339),
	}
}

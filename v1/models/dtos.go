package models

import (
	"fmt"
	"strings"
)

// Request/Response DTOs for V1 API endpoints

// CreateInvitationRequest carries a guide's meetup offer plus contact info
type CreateInvitationRequest struct {
	Title             string `json:"title"`
	Time              string `json:"time"`
	Location          string `json:"location"`
	Activity          string `json:"activity"`
	AgeRange          string `json:"ageRange"`
	Gender            string `json:"gender"`
	Languages         string `json:"languages"`
	PreferredGender   string `json:"preferredGender"`
	PreferredAgeRange string `json:"preferredAgeRange"`
	MaxParticipants   int    `json:"maxParticipants"`
	Contact           string `json:"contact"`
	PrivacyAccepted   bool   `json:"privacyAccepted"`
}

// Validate checks the request before any store write is attempted
func (r *CreateInvitationRequest) Validate() error {
	if err := requirePrivacyAccepted(r.PrivacyAccepted); err != nil {
		return err
	}
	if err := requireText("title", r.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := requireText("time", r.Time, MaxFreeTextLength); err != nil {
		return err
	}
	if err := requireText("location", r.Location, MaxFreeTextLength); err != nil {
		return err
	}
	if err := requireText("activity", r.Activity, MaxFreeTextLength); err != nil {
		return err
	}
	if err := requireText("contact", r.Contact, MaxContactInfoLength); err != nil {
		return err
	}
	if r.MaxParticipants < 1 {
		return fmt.Errorf("%w: maxParticipants must be at least 1", ErrValidation)
	}
	if err := requireVocabulary(r.Gender, r.PreferredGender, r.AgeRange, r.PreferredAgeRange); err != nil {
		return err
	}
	return nil
}

// CreateVisitorRequestRequest carries a visitor's meetup ask plus contact info
type CreateVisitorRequestRequest struct {
	Title             string `json:"title"`
	Time              string `json:"time"`
	Location          string `json:"location"`
	Participants      int    `json:"participants"`
	AgeRange          string `json:"ageRange"`
	Gender            string `json:"gender"`
	Languages         string `json:"languages"`
	PreferredGender   string `json:"preferredGender"`
	PreferredAgeRange string `json:"preferredAgeRange"`
	CompanionGenders  string `json:"companionGenders"`
	Contact           string `json:"contact"`
	PrivacyAccepted   bool   `json:"privacyAccepted"`
}

// Validate checks the request before any store write is attempted
func (r *CreateVisitorRequestRequest) Validate() error {
	if err := requirePrivacyAccepted(r.PrivacyAccepted); err != nil {
		return err
	}
	if err := requireText("title", r.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := requireText("time", r.Time, MaxFreeTextLength); err != nil {
		return err
	}
	if err := requireText("location", r.Location, MaxFreeTextLength); err != nil {
		return err
	}
	if err := requireText("contact", r.Contact, MaxContactInfoLength); err != nil {
		return err
	}
	if r.Participants < 1 {
		return fmt.Errorf("%w: participants must be at least 1", ErrValidation)
	}
	if err := requireVocabulary(r.Gender, r.PreferredGender, r.AgeRange, r.PreferredAgeRange); err != nil {
		return err
	}
	return nil
}

// CreateApplicationRequest carries a visitor's application to an invitation
type CreateApplicationRequest struct {
	Participants       int     `json:"participants"`
	InterestedLocation string  `json:"interestedLocation"`
	PreferredDate      *string `json:"preferredDate,omitempty"`
	AgeRange           string  `json:"ageRange"`
	Languages          string  `json:"languages"`
	Contact            string  `json:"contact"`
	PrivacyAccepted    bool    `json:"privacyAccepted"`
}

// Validate checks the request against the target invitation's participant
// cap before any store write is attempted
func (r *CreateApplicationRequest) Validate(maxParticipants int) error {
	if err := requirePrivacyAccepted(r.PrivacyAccepted); err != nil {
		return err
	}
	if err := requireText("interestedLocation", r.InterestedLocation, MaxFreeTextLength); err != nil {
		return err
	}
	if err := requireText("contact", r.Contact, MaxContactInfoLength); err != nil {
		return err
	}
	if r.Participants < 1 || r.Participants > maxParticipants {
		return fmt.Errorf("%w: participants must be between 1 and %d", ErrValidation, maxParticipants)
	}
	if r.AgeRange != "" && !AgeRange(r.AgeRange).Valid() {
		return fmt.Errorf("%w: invalid age range %q", ErrValidation, r.AgeRange)
	}
	return nil
}

// CreateLocalApplicationRequest carries a guide's response to a visitor
// request. The participant count is taken from the parent request, not from
// this payload.
type CreateLocalApplicationRequest struct {
	InterestedLocation string `json:"interestedLocation"`
	Gender             string `json:"gender"`
	AgeRange           string `json:"ageRange"`
	Languages          string `json:"languages"`
	Contact            string `json:"contact"`
	PrivacyAccepted    bool   `json:"privacyAccepted"`
}

// Validate checks the request before any store write is attempted
func (r *CreateLocalApplicationRequest) Validate() error {
	if err := requirePrivacyAccepted(r.PrivacyAccepted); err != nil {
		return err
	}
	if err := requireText("interestedLocation", r.InterestedLocation, MaxFreeTextLength); err != nil {
		return err
	}
	if err := requireText("contact", r.Contact, MaxContactInfoLength); err != nil {
		return err
	}
	if r.Gender != "" && !Gender(r.Gender).Valid() {
		return fmt.Errorf("%w: invalid gender %q", ErrValidation, r.Gender)
	}
	if r.AgeRange != "" && !AgeRange(r.AgeRange).Valid() {
		return fmt.Errorf("%w: invalid age range %q", ErrValidation, r.AgeRange)
	}
	return nil
}

// InvitationResponse is the API representation of an invitation row
type InvitationResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Time              string `json:"time"`
	Location          string `json:"location"`
	Activity          string `json:"activity"`
	AgeRange          string `json:"ageRange"`
	Gender            string `json:"gender"`
	Languages         string `json:"languages"`
	PreferredGender   string `json:"preferredGender"`
	PreferredAgeRange string `json:"preferredAgeRange"`
	MaxParticipants   int    `json:"maxParticipants"`
	ContactID         string `json:"contactId"`
	CreatedAt         string `json:"createdAt"`
}

// VisitorRequestResponse is the API representation of a visitor request row
type VisitorRequestResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Time              string `json:"time"`
	Location          string `json:"location"`
	Participants      int    `json:"participants"`
	AgeRange          string `json:"ageRange"`
	Gender            string `json:"gender"`
	Languages         string `json:"languages"`
	PreferredGender   string `json:"preferredGender"`
	PreferredAgeRange string `json:"preferredAgeRange"`
	CompanionGenders  string `json:"companionGenders"`
	ContactID         string `json:"contactId"`
	CreatedAt         string `json:"createdAt"`
}

// ApplicationResponse is the API representation of an application row
type ApplicationResponse struct {
	ID                 string  `json:"id"`
	InvitationID       string  `json:"invitationId"`
	ContactID          string  `json:"contactId"`
	Participants       int     `json:"participants"`
	InterestedLocation string  `json:"interestedLocation"`
	PreferredDate      *string `json:"preferredDate,omitempty"`
	AgeRange           string  `json:"ageRange"`
	Languages          string  `json:"languages"`
	CreatedAt          string  `json:"createdAt"`
}

// LocalApplicationResponse is the API representation of a local application row
type LocalApplicationResponse struct {
	ID                 string `json:"id"`
	VisitorRequestID   string `json:"visitorRequestId"`
	ContactID          string `json:"contactId"`
	Participants       int    `json:"participants"`
	InterestedLocation string `json:"interestedLocation"`
	Gender             string `json:"gender"`
	AgeRange           string `json:"ageRange"`
	Languages          string `json:"languages"`
	CreatedAt          string `json:"createdAt"`
}

// CollectionResponse wraps list results
type CollectionResponse struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
}

func requirePrivacyAccepted(accepted bool) error {
	if !accepted {
		return fmt.Errorf("%w: privacy policy must be accepted", ErrValidation)
	}
	return nil
}

func requireText(field, value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s too long (max %d characters)", ErrValidation, field, maxLength)
	}
	return nil
}

// requireVocabulary validates the shared gender / age range fields on entity
// writes. Empty values are allowed and default client-side to "any".
func requireVocabulary(gender, preferredGender, ageRange, preferredAgeRange string) error {
	if gender != "" && !Gender(gender).Valid() {
		return fmt.Errorf("%w: invalid gender %q", ErrValidation, gender)
	}
	if preferredGender != "" && !Gender(preferredGender).Valid() {
		return fmt.Errorf("%w: invalid preferred gender %q", ErrValidation, preferredGender)
	}
	if ageRange != "" && !AgeRange(ageRange).Valid() {
		return fmt.Errorf("%w: invalid age range %q", ErrValidation, ageRange)
	}
	if preferredAgeRange != "" && !AgeRange(preferredAgeRange).Valid() {
		return fmt.Errorf("%w: invalid preferred age range %q", ErrValidation, preferredAgeRange)
	}
	return nil
}

package models

// ContactType tags a contact row with the flow that produced it
type ContactType string

const (
	ContactTypeInvitation     ContactType = "invitation"
	ContactTypeVisitorRequest ContactType = "visitor_request"
	ContactTypeApplication    ContactType = "application"
)

// Gender represents the gender vocabulary used across listings
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderAny    Gender = "any"
)

// Valid reports whether the value is part of the gender vocabulary
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAny:
		return true
	}
	return false
}

// AgeRange represents the age bracket vocabulary used across listings
type AgeRange string

const (
	AgeRange20s    AgeRange = "20s"
	AgeRange30s    AgeRange = "30s"
	AgeRange40s    AgeRange = "40s"
	AgeRange50Plus AgeRange = "50+"
	AgeRangeAny    AgeRange = "any"
)

// Valid reports whether the value is part of the age range vocabulary
func (a AgeRange) Valid() bool {
	switch a {
	case AgeRange20s, AgeRange30s, AgeRange40s, AgeRange50Plus, AgeRangeAny:
		return true
	}
	return false
}

// Field length constraints
const (
	MaxTitleLength       = 255
	MaxContactInfoLength = 500
	MaxFreeTextLength    = 1000
)

package models

// Contact is the indirection record holding raw out-of-band contact
// information. It is write-only from the API's perspective: entity and
// application rows reference it by id, and nothing in this service ever
// reads contact rows back. Keeping contact strings out of the entity rows
// lets the retention sweep target them independently.
type Contact struct {
	ID          string `gorm:"primarykey;column:id" json:"id"`
	ContactInfo string `gorm:"column:contact_info;not null" json:"contactInfo"`
	ContactType string `gorm:"column:contact_type;not null" json:"contactType"`
	BaseModel
}

// TableName sets the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

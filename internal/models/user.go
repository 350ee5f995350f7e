package models

// User is the root intake entity, created during the registration stage.
// Email and mobile are unique across users; uniqueness is enforced both in the
// service layer and by the database constraints to close the check-then-insert
// race on the relational store.
type User struct {
	BaseModel
	FullName      string `gorm:"not null" json:"fullName"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Mobile        string `gorm:"uniqueIndex;not null" json:"mobile"`
	Location      string `gorm:"not null" json:"location"`
	AcceptedTerms bool   `gorm:"not null;default:false" json:"acceptedTerms"`

	Requirements *Requirements `gorm:"foreignKey:UserID" json:"requirements,omitempty"`
}

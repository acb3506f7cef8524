package model

import "time"

// Registration is a submitted intent to enroll in a course. Rows are
// append-only, there is no update or delete path.
type Registration struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	County    string    `json:"county" gorm:"not null"`
	Course    string    `json:"course" gorm:"not null"`
	Level     string    `json:"level" gorm:"not null"`
	Goals     string    `json:"goals" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Registration) TableName() string {
	return "registrations"
}

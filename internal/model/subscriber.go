package model

import "time"

// Subscriber is an email address opted into the newsletter. At most one row
// exists per email value, duplicates are rejected rather than merged.
type Subscriber struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

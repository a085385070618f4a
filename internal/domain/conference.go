package domain

import "time"

type Conference struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty" gorm:"type:text"`
	Venue              string     `json:"venue"`
	Domains            StringList `json:"domains" gorm:"type:text"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            time.Time  `json:"end_date"`
	SubmissionDeadline time.Time  `json:"submission_deadline"`
	RegistrationFee    int64      `json:"registration_fee"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type PaperStatus string

const (
	PaperSubmitted         PaperStatus = "submitted"
	PaperUnderReview       PaperStatus = "under_review"
	PaperRevisionRequested PaperStatus = "revision_requested"
	PaperApproved          PaperStatus = "approved"
	PaperRejected          PaperStatus = "rejected"
	PaperPublished         PaperStatus = "published"
)

func (s PaperStatus) Valid() bool {
	switch s {
	case PaperSubmitted, PaperUnderReview, PaperRevisionRequested,
		PaperApproved, PaperRejected, PaperPublished:
		return true
	}
	return false
}

// paperTransitions is the full edge set of the lifecycle. published and
// rejected are terminal. approved -> published happens only through
// certificate issuance; revision_requested -> submitted only through
// resubmission.
var paperTransitions = map[PaperStatus][]PaperStatus{
	PaperSubmitted:         {PaperUnderReview, PaperApproved, PaperRejected, PaperRevisionRequested},
	PaperUnderReview:       {PaperApproved, PaperRejected, PaperRevisionRequested},
	PaperRevisionRequested: {PaperSubmitted},
	PaperApproved:          {PaperPublished},
}

func (s PaperStatus) CanTransitionTo(next PaperStatus) bool {
	for _, t := range paperTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type PaperDomain string

const (
	DomainECE        PaperDomain = "ECE"
	DomainCSE        PaperDomain = "CSE"
	DomainIT         PaperDomain = "IT"
	DomainMechanical PaperDomain = "Mechanical"
	DomainCivil      PaperDomain = "Civil"
	DomainElectrical PaperDomain = "Electrical"
	DomainAerospace  PaperDomain = "Aerospace"
)

var PaperDomains = []PaperDomain{
	DomainECE, DomainCSE, DomainIT, DomainMechanical,
	DomainCivil, DomainElectrical, DomainAerospace,
}

func (d PaperDomain) Valid() bool {
	for _, v := range PaperDomains {
		if v == d {
			return true
		}
	}
	return false
}

type PublicationType string

const (
	TypeJournal       PublicationType = "journal"
	TypeMagazine      PublicationType = "magazine"
	TypeResearchPaper PublicationType = "research_paper"
)

func (t PublicationType) Valid() bool {
	switch t {
	case TypeJournal, TypeMagazine, TypeResearchPaper:
		return true
	}
	return false
}

// PaperAuthor is one entry of the ordered author list embedded in a paper.
type PaperAuthor struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Institution string `json:"institution"`
}

type AuthorList []PaperAuthor

func (a AuthorList) Value() (driver.Value, error) {
	if a == nil {
		a = AuthorList{}
	}
	return json.Marshal(a)
}

func (a *AuthorList) Scan(value interface{}) error {
	if value == nil {
		*a = AuthorList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	}
	return fmt.Errorf("unsupported author list source %T", value)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported string list source %T", value)
}

const (
	MinPaperAuthors = 1
	MaxPaperAuthors = 6
)

var ErrInvalidTransition = errors.New("invalid paper status transition")

type Paper struct {
	ID               string          `json:"id" gorm:"primaryKey"`
	AuthorID         string          `json:"author_id" gorm:"index"`
	Title            string          `json:"title" validate:"required"`
	Abstract         string          `json:"abstract" validate:"required"`
	Keywords         StringList      `json:"keywords" gorm:"type:text"`
	Domain           PaperDomain     `json:"domain"`
	PublicationType  PublicationType `json:"publication_type"`
	Status           PaperStatus     `json:"status"`
	Authors          AuthorList      `json:"authors" gorm:"type:text"`
	FilePath         string          `json:"file_path,omitempty"`
	PlagiarismScore  *float64        `json:"plagiarism_score,omitempty"`
	AdminNotes       string          `json:"admin_notes,omitempty" gorm:"type:text"`
	RevisionDeadline *time.Time      `json:"revision_deadline,omitempty"`
	SubmittedAt      time.Time       `json:"submitted_at"`
	ReviewedAt       *time.Time      `json:"reviewed_at,omitempty"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	PublishedAt      *time.Time      `json:"published_at,omitempty"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

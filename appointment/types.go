package appointment

import (
	"strings"
)

type Type string

const (
	TypePersonal Type = "personal"
	TypeWork     Type = "work"
	TypeHealth   Type = "health"
	TypeOther    Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypePersonal, TypeWork, TypeHealth, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Toggled returns the status a record moves to when its completion is flipped.
// Anything that is not pending goes back to pending.
func (s Status) Toggled() Status {
	if s == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}

// Appointment is a single scheduled item. Date and Time are kept verbatim.
type Appointment struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Type        Type   `json:"type" yaml:"type"`
	Status      Status `json:"status" yaml:"status"`
}

// Matches reports whether query is a case-insensitive substring of the
// title or the description. An empty query matches everything.
func (a *Appointment) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Description), q)
}

func (a *Appointment) validateSeed() error {
	if strings.TrimSpace(a.ID) == "" {
		return &ValidationError{Fields: []string{"id"}}
	}
	if strings.TrimSpace(a.Title) == "" {
		return &ValidationError{Fields: []string{"title"}}
	}
	if !a.Type.Valid() {
		return &ValidationError{Fields: []string{"type"}}
	}
	if !a.Status.Valid() {
		return &ValidationError{Fields: []string{"status"}}
	}
	return nil
}

// CreateRequest carries the user-supplied fields of a new appointment.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        Type   `json:"type"`
}

// Validate checks the required fields. An empty type is filled in with
// TypePersonal.
func (r *CreateRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(r.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(r.Time) == "" {
		missing = append(missing, "time")
	}
	if r.Type == "" {
		r.Type = TypePersonal
	} else if !r.Type.Valid() {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func (r *CreateRequest) appointment(id string) Appointment {
	return Appointment{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Type:        r.Type,
		Status:      StatusPending,
	}
}

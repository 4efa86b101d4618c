package dto

import (
	"staywise/internal/domains/onboarding/model"
	"staywise/shared/timezone"
	"time"
)

type ChooseRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=RENTER OWNER"`
}

// FillRequest carries the wizard form. Absent fields stay untouched, present
// ones may be empty.
type FillRequest struct {
	Name             *string `json:"name"              validate:"omitempty,max=100"`
	Email            *string `json:"email"             validate:"omitempty,max=254,optemail"`
	Phone            *string `json:"phone"             validate:"omitempty,max=20"`
	Password         *string `json:"password"          validate:"omitempty,max=72"`
	Age              *int    `json:"age"               validate:"omitempty,min=0,max=150"`
	Aadhar           *string `json:"aadhar"            validate:"omitempty,max=14"`
	PAN              *string `json:"pan"               validate:"omitempty,max=10"`
	License          *string `json:"license"           validate:"omitempty,max=20"`
	Family           *string `json:"family"            validate:"omitempty,max=500"`
	PropertyName     *string `json:"property_name"     validate:"omitempty,max=100"`
	PropertyLocation *string `json:"property_location" validate:"omitempty,max=200"`
}

// Apply copies the present fields. The password is applied separately as a hash.
func (f *FillRequest) Apply(profile *model.Profile) {
	set(&profile.Name, f.Name)
	set(&profile.Email, f.Email)
	set(&profile.Phone, f.Phone)
	set(&profile.Aadhar, f.Aadhar)
	set(&profile.PAN, f.PAN)
	set(&profile.License, f.License)
	set(&profile.Family, f.Family)
	set(&profile.PropertyName, f.PropertyName)
	set(&profile.PropertyLocation, f.PropertyLocation)

	if f.Age != nil {
		age := *f.Age
		profile.Age = &age
	}
}

func set(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}

type AgreementRequest struct {
	Accepted *bool `json:"accepted" validate:"required"`
}

type ProfileResponse struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	HasPassword      bool   `json:"has_password"`
	Age              *int   `json:"age,omitempty"`
	Aadhar           string `json:"aadhar"`
	PAN              string `json:"pan"`
	License          string `json:"license"`
	Family           string `json:"family"`
	PropertyName     string `json:"property_name"`
	PropertyLocation string `json:"property_location"`
}

func (p *ProfileResponse) FromModel(profile model.Profile) {
	p.Name = profile.Name
	p.Email = profile.Email
	p.Phone = profile.Phone
	p.HasPassword = profile.PasswordHash != ""
	p.Age = profile.Age
	p.Aadhar = profile.Aadhar
	p.PAN = profile.PAN
	p.License = profile.License
	p.Family = profile.Family
	p.PropertyName = profile.PropertyName
	p.PropertyLocation = profile.PropertyLocation
}

type SessionResponse struct {
	ID                 string          `json:"id"`
	Step               string          `json:"step"`
	Steps              []string        `json:"steps"`
	Role               string          `json:"role"`
	Guest              bool            `json:"guest"`
	CommissionAccepted bool            `json:"commission_accepted"`
	Completed          bool            `json:"completed"`
	CompletedAt        string          `json:"completed_at,omitempty"`
	Profile            ProfileResponse `json:"profile"`
}

func (s *SessionResponse) FromModel(session model.Session) {
	s.ID = session.ID
	s.Step = string(session.Step)
	s.Role = session.Role
	s.Guest = session.Guest
	s.CommissionAccepted = session.CommissionAccepted
	s.Completed = session.Completed()
	s.Profile.FromModel(session.Profile)

	path := session.Path()
	s.Steps = make([]string, len(path))
	for i, step := range path {
		s.Steps[i] = string(step)
	}

	if session.CompletedAt != nil {
		s.CompletedAt = timezone.Format(*session.CompletedAt, time.RFC3339)
	}
}

// CompletedEvent is published once per finished session.
type CompletedEvent struct {
	Event       string    `json:"event"`
	SessionID   string    `json:"session_id"`
	Role        string    `json:"role"`
	Guest       bool      `json:"guest"`
	CompletedAt time.Time `json:"completed_at"`
}

func (e *CompletedEvent) FromModel(session model.Session) {
	e.Event = model.EventCompleted
	e.SessionID = session.ID
	e.Role = session.Role
	e.Guest = session.Guest

	if session.CompletedAt != nil {
		e.CompletedAt = *session.CompletedAt
	}
}

package model

import (
	"fmt"
	"staywise/shared/constant"
	"staywise/shared/failure"
	"time"
)

const (
	EntityName     = "onboarding"
	EventCompleted = "onboarding.completed"
)

type Step string

const (
	StepRole         Step = "role"
	StepBasic        Step = "basic"
	StepIdentity     Step = "identity"
	StepOwnerDetails Step = "owner_details"
	StepAgreement    Step = "agreement"
	StepCompleted    Step = "completed"
)

var (
	ErrAlreadyCompleted      = failure.Conflict("onboarding already completed")
	ErrCommissionNotAccepted = failure.BadRequestFromString("partner commission must be accepted before finishing")
)

func errWrongStep(action string, step Step) error {
	return failure.Conflict(fmt.Sprintf("cannot %s at step %s", action, step))
}

// Profile holds whatever the user typed so far. Nothing here gates a transition.
type Profile struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PasswordHash     string `json:"password_hash"`
	Age              *int   `json:"age"`
	Aadhar           string `json:"aadhar"`
	PAN              string `json:"pan"`
	License          string `json:"license"`
	Family           string `json:"family"`
	PropertyName     string `json:"property_name"`
	PropertyLocation string `json:"property_location"`
}

type Session struct {
	ID                 string     `json:"id"`
	Step               Step       `json:"step"`
	Role               string     `json:"role"`
	Profile            Profile    `json:"profile"`
	CommissionAccepted bool       `json:"commission_accepted"`
	Guest              bool       `json:"guest"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

func NewSession(id string, now time.Time) Session {
	return Session{
		ID:        id,
		Step:      StepRole,
		Role:      constant.RoleRenter,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Path lists the steps the session walks through for its current role.
func (s *Session) Path() []Step {
	if s.Role == constant.RoleOwner {
		return []Step{StepRole, StepBasic, StepIdentity, StepOwnerDetails, StepAgreement}
	}

	return []Step{StepRole, StepBasic, StepIdentity}
}

func (s *Session) Completed() bool {
	return s.Step == StepCompleted
}

// ChooseRole records the role and leaves the role step.
func (s *Session) ChooseRole(role string, now time.Time) error {
	if s.Completed() {
		return ErrAlreadyCompleted
	}

	if s.Step != StepRole {
		return errWrongStep("choose a role", s.Step)
	}

	s.Role = role
	s.Step = StepBasic
	s.UpdatedAt = now

	return nil
}

// Next moves one step forward. A renter leaving identity completes the session.
// The agreement step only completes through Finalize.
func (s *Session) Next(now time.Time) error {
	switch s.Step {
	case StepRole:
		s.Step = StepBasic
	case StepBasic:
		s.Step = StepIdentity
	case StepIdentity:
		if s.Role != constant.RoleOwner {
			s.complete(now)

			return nil
		}

		s.Step = StepOwnerDetails
	case StepOwnerDetails:
		s.Step = StepAgreement
	case StepAgreement:
		return errWrongStep("go next", s.Step)
	case StepCompleted:
		return ErrAlreadyCompleted
	}

	s.UpdatedAt = now

	return nil
}

// Back moves one step backwards. It does nothing at the role step.
func (s *Session) Back(now time.Time) error {
	switch s.Step {
	case StepRole:
		return nil
	case StepBasic:
		s.Step = StepRole
	case StepIdentity:
		s.Step = StepBasic
	case StepOwnerDetails:
		s.Step = StepIdentity
	case StepAgreement:
		s.Step = StepOwnerDetails
	case StepCompleted:
		return ErrAlreadyCompleted
	}

	s.UpdatedAt = now

	return nil
}

func (s *Session) Agree(accepted bool, now time.Time) error {
	if s.Completed() {
		return ErrAlreadyCompleted
	}

	if s.Step != StepAgreement {
		return errWrongStep("accept the commission", s.Step)
	}

	s.CommissionAccepted = accepted
	s.UpdatedAt = now

	return nil
}

// CanFinalize reports whether Finalize may start its delay.
func (s *Session) CanFinalize() error {
	if s.Completed() {
		return ErrAlreadyCompleted
	}

	if s.Step != StepAgreement {
		return errWrongStep("finalize", s.Step)
	}

	if !s.CommissionAccepted {
		return ErrCommissionNotAccepted
	}

	return nil
}

func (s *Session) Finalize(now time.Time) error {
	if err := s.CanFinalize(); err != nil {
		return err
	}

	s.complete(now)

	return nil
}

// Skip explores as a guest: renter, completed, from the role step only.
func (s *Session) Skip(now time.Time) error {
	if s.Completed() {
		return ErrAlreadyCompleted
	}

	if s.Step != StepRole {
		return errWrongStep("skip", s.Step)
	}

	s.Role = constant.RoleRenter
	s.Guest = true
	s.complete(now)

	return nil
}

// Fill is rejected only once the session is over.
func (s *Session) Fill(apply func(*Profile), now time.Time) error {
	if s.Completed() {
		return ErrAlreadyCompleted
	}

	apply(&s.Profile)
	s.UpdatedAt = now

	return nil
}

func (s *Session) complete(now time.Time) {
	s.Step = StepCompleted
	s.UpdatedAt = now
	s.CompletedAt = &now
}

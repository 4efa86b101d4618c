package dto_test

import (
	"staywise/internal/domains/onboarding/model"
	"staywise/internal/domains/onboarding/model/dto"
	"staywise/shared/constant"
	"staywise/shared/validator"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestFillRequest_Apply(t *testing.T) {
	profile := model.Profile{Name: "John Doe", Phone: "+91 98450 00000"}

	req := dto.FillRequest{
		Name:         ptr(""),
		Email:        ptr("john@example.com"),
		Age:          ptr(29),
		PropertyName: ptr("Luxury Zen PG"),
	}
	req.Apply(&profile)

	assert.Empty(t, profile.Name)
	assert.Equal(t, "john@example.com", profile.Email)
	assert.Equal(t, "+91 98450 00000", profile.Phone)
	assert.Equal(t, 29, *profile.Age)
	assert.Equal(t, "Luxury Zen PG", profile.PropertyName)

	*req.Age = 30
	assert.Equal(t, 29, *profile.Age)
}

func TestFillRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.FillRequest
		wantErr string
	}{
		{name: "nothing filled", req: dto.FillRequest{}},
		{name: "empty fields", req: dto.FillRequest{Name: ptr(""), Email: ptr(""), Age: ptr(0)}},
		{name: "bad email", req: dto.FillRequest{Email: ptr("john@")}, wantErr: "email must be empty or a valid email address"},
		{name: "negative age", req: dto.FillRequest{Age: ptr(-1)}, wantErr: "age must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestChooseRoleRequest_Validation(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&dto.ChooseRoleRequest{Role: constant.RoleOwner}))
	assert.EqualError(t, validator.ValidateStruct(&dto.ChooseRoleRequest{Role: "ADMIN"}), "role must be one of RENTER OWNER")
}

func TestSessionResponse_FromModel(t *testing.T) {
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

	session := model.NewSession("s1", now)
	session.Profile.PasswordHash = "$2a$10$hash"
	require.NoError(t, session.ChooseRole(constant.RoleOwner, now))

	res := dto.SessionResponse{}
	res.FromModel(session)

	assert.Equal(t, "basic", res.Step)
	assert.Equal(t, []string{"role", "basic", "identity", "owner_details", "agreement"}, res.Steps)
	assert.True(t, res.Profile.HasPassword)
	assert.False(t, res.Completed)
	assert.Empty(t, res.CompletedAt)

	require.NoError(t, session.Back(now))
	require.NoError(t, session.Skip(now))
	res.FromModel(session)

	assert.True(t, res.Completed)
	assert.True(t, res.Guest)
	assert.Equal(t, []string{"role", "basic", "identity"}, res.Steps)
	assert.NotEmpty(t, res.CompletedAt)
}

func TestCompletedEvent_FromModel(t *testing.T) {
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

	session := model.NewSession("s1", now)
	require.NoError(t, session.Skip(now))

	event := dto.CompletedEvent{}
	event.FromModel(session)

	assert.Equal(t, dto.CompletedEvent{Event: "onboarding.completed", SessionID: "s1", Role: constant.RoleRenter, Guest: true, CompletedAt: now}, event)
}

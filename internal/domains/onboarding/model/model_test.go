package model_test

import (
	"net/http"
	"staywise/internal/domains/onboarding/model"
	"staywise/shared/constant"
	"staywise/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

func TestSession_OwnerPath(t *testing.T) {
	session := model.NewSession("s1", now)

	require.NoError(t, session.ChooseRole(constant.RoleOwner, now))

	visited := []model.Step{session.Step}
	for session.Step != model.StepAgreement {
		require.NoError(t, session.Next(now))
		visited = append(visited, session.Step)
	}

	assert.Equal(t, []model.Step{model.StepBasic, model.StepIdentity, model.StepOwnerDetails, model.StepAgreement}, visited)
	assert.False(t, session.Completed())
	assert.Equal(t, session.Path(), append([]model.Step{model.StepRole}, visited...))
}

func TestSession_RenterCompletesAfterIdentity(t *testing.T) {
	session := model.NewSession("s1", now)

	require.NoError(t, session.ChooseRole(constant.RoleRenter, now))
	require.NoError(t, session.Next(now))
	assert.Equal(t, model.StepIdentity, session.Step)

	require.NoError(t, session.Next(now))

	assert.True(t, session.Completed())
	assert.Equal(t, constant.RoleRenter, session.Role)
	assert.NotNil(t, session.CompletedAt)
}

func TestSession_NextFromRoleKeepsDefaultRole(t *testing.T) {
	session := model.NewSession("s1", now)

	require.NoError(t, session.Next(now))

	assert.Equal(t, model.StepBasic, session.Step)
	assert.Equal(t, constant.RoleRenter, session.Role)
}

func TestSession_Back(t *testing.T) {
	session := model.NewSession("s1", now)

	require.NoError(t, session.Back(now))
	assert.Equal(t, model.StepRole, session.Step)

	require.NoError(t, session.ChooseRole(constant.RoleOwner, now))
	for range 3 {
		require.NoError(t, session.Next(now))
	}
	require.Equal(t, model.StepAgreement, session.Step)

	var back []model.Step
	for session.Step != model.StepRole {
		require.NoError(t, session.Back(now))
		back = append(back, session.Step)
	}

	assert.Equal(t, []model.Step{model.StepOwnerDetails, model.StepIdentity, model.StepBasic, model.StepRole}, back)
}

func TestSession_ChooseRoleOnlyAtRoleStep(t *testing.T) {
	session := model.NewSession("s1", now)
	require.NoError(t, session.Next(now))

	err := session.ChooseRole(constant.RoleOwner, now)

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, constant.RoleRenter, session.Role)
}

func ownerAtAgreement(t *testing.T) model.Session {
	t.Helper()

	session := model.NewSession("s1", now)
	require.NoError(t, session.ChooseRole(constant.RoleOwner, now))

	for range 3 {
		require.NoError(t, session.Next(now))
	}

	return session
}

func TestSession_Finalize(t *testing.T) {
	t.Run("requires the commission", func(t *testing.T) {
		session := ownerAtAgreement(t)

		err := session.Finalize(now)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.False(t, session.Completed())
	})

	t.Run("completes once accepted", func(t *testing.T) {
		session := ownerAtAgreement(t)

		require.NoError(t, session.Agree(true, now))
		require.NoError(t, session.Finalize(now))

		assert.True(t, session.Completed())
		assert.Equal(t, constant.RoleOwner, session.Role)
	})

	t.Run("withdrawn acceptance blocks again", func(t *testing.T) {
		session := ownerAtAgreement(t)

		require.NoError(t, session.Agree(true, now))
		require.NoError(t, session.Agree(false, now))

		assert.ErrorIs(t, session.Finalize(now), model.ErrCommissionNotAccepted)
	})

	t.Run("next does not bypass the agreement", func(t *testing.T) {
		session := ownerAtAgreement(t)
		require.NoError(t, session.Agree(true, now))

		assert.Equal(t, http.StatusConflict, failure.GetCode(session.Next(now)))
		assert.Equal(t, model.StepAgreement, session.Step)
	})

	t.Run("only at agreement", func(t *testing.T) {
		session := model.NewSession("s1", now)

		assert.Equal(t, http.StatusConflict, failure.GetCode(session.Finalize(now)))
		assert.Equal(t, http.StatusConflict, failure.GetCode(session.Agree(true, now)))
	})
}

func TestSession_Skip(t *testing.T) {
	session := model.NewSession("s1", now)
	require.NoError(t, session.Skip(now))

	assert.True(t, session.Completed())
	assert.True(t, session.Guest)
	assert.Equal(t, constant.RoleRenter, session.Role)

	other := model.NewSession("s2", now)
	require.NoError(t, other.Next(now))
	assert.Equal(t, http.StatusConflict, failure.GetCode(other.Skip(now)))
}

func TestSession_CompletedRejectsEverything(t *testing.T) {
	session := model.NewSession("s1", now)
	require.NoError(t, session.Skip(now))

	transitions := map[string]func() error{
		"choose role": func() error { return session.ChooseRole(constant.RoleOwner, now) },
		"next":        func() error { return session.Next(now) },
		"back":        func() error { return session.Back(now) },
		"agree":       func() error { return session.Agree(true, now) },
		"finalize":    func() error { return session.Finalize(now) },
		"skip":        func() error { return session.Skip(now) },
		"fill":        func() error { return session.Fill(func(p *model.Profile) { p.Name = "x" }, now) },
	}

	for name, transition := range transitions {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, transition(), model.ErrAlreadyCompleted)
		})
	}

	assert.Empty(t, session.Profile.Name)
}

func TestSession_FillAcceptsEmptyFields(t *testing.T) {
	session := model.NewSession("s1", now)

	require.NoError(t, session.Fill(func(p *model.Profile) { p.Name = "" }, now))
	require.NoError(t, session.Next(now))
	require.NoError(t, session.Next(now))

	assert.Equal(t, model.StepIdentity, session.Step)
}

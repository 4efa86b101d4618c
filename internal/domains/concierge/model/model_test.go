package model_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staywise/internal/domains/concierge/model"
	listingModel "staywise/internal/domains/listing/model"
)

func TestNewConversation(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	conversation := model.NewConversation("c1", "m1", now)

	require.Len(t, conversation.Messages, 1)
	assert.Equal(t, model.RoleBot, conversation.Messages[0].Role)
	assert.Equal(t, model.Greeting, conversation.Messages[0].Text)

	later := now.Add(time.Minute)
	conversation.Append(model.Message{ID: "m2", Role: model.RoleUser, Text: "hi", CreatedAt: later})

	assert.Len(t, conversation.Messages, 2)
	assert.Equal(t, later, conversation.UpdatedAt)
	assert.Equal(t, now, conversation.CreatedAt)
}

func TestBlank(t *testing.T) {
	assert.True(t, model.Blank(""))
	assert.True(t, model.Blank(" \t\n"))
	assert.False(t, model.Blank(" PG "))
}

func TestBuildPrompt(t *testing.T) {
	listings := []listingModel.Listing{
		{
			ID:          "p_1",
			Title:       "Green View PG",
			Location:    "Indiranagar",
			Rent:        15000,
			Type:        "PG",
			Gender:      "Unisex",
			Amenities:   pq.StringArray{"WiFi", "AC"},
			Description: "never sent",
		},
		{ID: "p_2", Title: "Skyline Flat", Type: "Flat"},
	}

	prompt, err := model.BuildPrompt("Budget PG with AC", listings)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are StayWise AI, a helpful real estate assistant."))
	assert.Contains(t, prompt, `The user is asking: "Budget PG with AC"`)
	assert.Contains(t, prompt, "recommend the top 2 matches")
	assert.NotContains(t, prompt, "never sent")

	start := strings.Index(prompt, "[")
	end := strings.LastIndex(prompt, "]")
	require.True(t, start >= 0 && end > start)

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(prompt[start:end+1]), &summaries))
	require.Len(t, summaries, 2)

	assert.Len(t, summaries[0], 7)
	assert.Equal(t, "p_1", summaries[0]["id"])
	assert.EqualValues(t, 15000, summaries[0]["rent"])
	assert.Equal(t, []any{"WiFi", "AC"}, summaries[0]["amenities"])
	assert.Equal(t, []any{}, summaries[1]["amenities"])
}

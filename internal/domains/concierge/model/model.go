package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	listingModel "staywise/internal/domains/listing/model"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

const (
	Greeting = `Hi! I am StayWise AI. Looking for a modern PG or a spacious flat? Describe your needs (e.g., "Budget PG in Indiranagar with AC") and I will instantly scan our listings for you!`

	FallbackReply       = "Our AI assistant is currently taking a break. Please use the manual filters!"
	EmptyReply          = "I'm sorry, I couldn't process your request right now."
	CatalogTroubleReply = "I'm having a bit of trouble connecting to the property database. Try checking our filters instead!"
)

const promptTemplate = `You are StayWise AI, a helpful real estate assistant.
The user is asking: "%s"
Here are the available properties: %s

Analyze the request and recommend the top 2 matches if any. Explain why they fit.
Keep it concise, friendly, and professional.
If no matches, suggest what they might like instead from the list.`

type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is an append-only transcript.
type Conversation struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewConversation opens a transcript with the greeting from the bot.
func NewConversation(id, greetingID string, now time.Time) Conversation {
	return Conversation{
		ID:        id,
		Messages:  []Message{{ID: greetingID, Role: RoleBot, Text: Greeting, CreatedAt: now}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Conversation) Append(message Message) {
	c.Messages = append(c.Messages, message)
	c.UpdatedAt = message.CreatedAt
}

// Blank reports whether text has nothing to send.
func Blank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// ListingSummary is the part of a listing the model gets to see.
type ListingSummary struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	Rent      int      `json:"rent"`
	Type      string   `json:"type"`
	Gender    string   `json:"gender"`
	Amenities []string `json:"amenities"`
}

func Summarize(listings []listingModel.Listing) []ListingSummary {
	summaries := make([]ListingSummary, 0, len(listings))

	for _, listing := range listings {
		amenities := []string(listing.Amenities)
		if amenities == nil {
			amenities = []string{}
		}

		summaries = append(summaries, ListingSummary{
			ID:        listing.ID,
			Title:     listing.Title,
			Location:  listing.Location,
			Rent:      listing.Rent,
			Type:      listing.Type,
			Gender:    listing.Gender,
			Amenities: amenities,
		})
	}

	return summaries
}

// BuildPrompt embeds the query and every listing summary in one prompt.
func BuildPrompt(query string, listings []listingModel.Listing) (string, error) {
	summary, err := json.Marshal(Summarize(listings))
	if err != nil {
		return "", fmt.Errorf("failed to encode listings: %w", err)
	}

	return fmt.Sprintf(promptTemplate, query, summary), nil
}

package model_test

import (
	"staywise/internal/domains/listing/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func catalog() []model.Listing {
	rooms := []model.Room{
		{ID: "r1", Name: "Master Suite A", Type: model.RoomSingle, IsAvailable: true, PriceExtra: 2000},
		{ID: "r2", Name: "Standard Room B", Type: model.RoomDouble, IsAvailable: false},
		{ID: "r3", Name: "Compact Room C", Type: model.RoomSingle, IsAvailable: true, PriceExtra: -1000},
		{ID: "r4", Name: "Premium Room D", Type: model.RoomSingle, IsAvailable: true, PriceExtra: 3500},
	}

	return []model.Listing{
		{ID: "p_1", Title: "Luxury Zen PG", Type: model.TypePG, Rent: 15000, Location: "Indiranagar, Bangalore", Rooms: rooms},
		{ID: "p_2", Title: "Sunrise 2BHK Flat", Type: model.TypeFlat, Rent: 32000, Location: "HSR Layout, Bangalore", Rooms: rooms[:2]},
		{ID: "p_3", Title: "Elite Girls Living", Type: model.TypePG, Rent: 12000, Location: "Koramangala, Bangalore", Rooms: rooms},
	}
}

func ids(listings []model.Listing) []string {
	result := make([]string, len(listings))
	for i, listing := range listings {
		result[i] = listing.ID
	}

	return result
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		listingType string
		want        []string
	}{
		{name: "empty query and type returns the catalog", want: []string{"p_1", "p_2", "p_3"}},
		{name: "all type ignores type", query: "", listingType: "all", want: []string{"p_1", "p_2", "p_3"}},
		{name: "type is case-insensitive", listingType: "pg", want: []string{"p_1", "p_3"}},
		{name: "title match ignores case", query: "SUNRISE", listingType: "ALL", want: []string{"p_2"}},
		{name: "location match", query: "hsr", want: []string{"p_2"}},
		{name: "koramangala pg", query: "Koramangala", listingType: "PG", want: []string{"p_3"}},
		{name: "koramangala flat", query: "Koramangala", listingType: "Flat", want: []string{}},
		{name: "shared substring keeps catalog order", query: "bangalore", listingType: "PG", want: []string{"p_1", "p_3"}},
		{name: "unknown type matches nothing", listingType: "Villa", want: []string{}},
		{name: "no match", query: "Whitefield", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := model.Filter(catalog(), tt.query, tt.listingType)

			assert.NotNil(t, result)
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

func TestFilter_KeepsEveryListingContainingQuery(t *testing.T) {
	for _, listing := range catalog() {
		for _, query := range []string{listing.Title[:4], strings.ToUpper(listing.Location[2:8])} {
			result := model.Filter(catalog(), query, model.TypeAll)

			assert.Contains(t, ids(result), listing.ID, "query %q", query)
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	queries := []string{"", "a", "pg", "Koramangala", "layout", "zzz"}
	types := []string{"", "all", "PG", "flat"}

	for _, query := range queries {
		for _, listingType := range types {
			once := model.Filter(catalog(), query, listingType)
			twice := model.Filter(once, query, listingType)

			assert.Equal(t, ids(once), ids(twice), "query %q type %q", query, listingType)
		}
	}
}

func TestListing_Room(t *testing.T) {
	listing := catalog()[1]

	room, ok := listing.Room("r2")
	assert.True(t, ok)
	assert.Equal(t, "Standard Room B", room.Name)

	_, ok = listing.Room("r4")
	assert.False(t, ok)
}

func TestListing_MonthlyPrice(t *testing.T) {
	listing := catalog()[0]

	tests := []struct {
		roomID string
		want   int
	}{
		{roomID: "r1", want: 17000},
		{roomID: "r2", want: 15000},
		{roomID: "r3", want: 14000},
		{roomID: "r4", want: 18500},
	}

	for _, tt := range tests {
		t.Run(tt.roomID, func(t *testing.T) {
			room, ok := listing.Room(tt.roomID)

			assert.True(t, ok)
			assert.Equal(t, tt.want, listing.MonthlyPrice(room))
		})
	}
}

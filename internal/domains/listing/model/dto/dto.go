package dto

import (
	"net/http"
	"staywise/internal/domains/listing/model"
	"staywise/shared/constant"
	"strings"
)

type SearchRequest struct {
	Query string `json:"q"`
	Type  string `json:"type"`
}

func (s *SearchRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.Query = query.Get(constant.RequestParamQuery)
	s.Type = strings.TrimSpace(query.Get(constant.RequestParamType))
}

type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	IsAvailable  bool     `json:"is_available"`
	PriceExtra   int      `json:"price_extra"`
	MonthlyPrice int      `json:"monthly_price"`
	Dimensions   string   `json:"dimensions"`
	Features     []string `json:"features"`
}

func (r *RoomResponse) FromModel(listing model.Listing, room model.Room) {
	r.ID = room.ID
	r.Name = room.Name
	r.Type = room.Type
	r.IsAvailable = room.IsAvailable
	r.PriceExtra = room.PriceExtra
	r.MonthlyPrice = listing.MonthlyPrice(room)
	r.Dimensions = room.Dimensions
	r.Features = nonNil(room.Features)
}

type ListingResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Type         string         `json:"type"`
	Rent         int            `json:"rent"`
	Location     string         `json:"location"`
	City         string         `json:"city"`
	Amenities    []string       `json:"amenities"`
	Gender       string         `json:"gender"`
	Availability int            `json:"availability"`
	Rating       float64        `json:"rating"`
	OwnerID      string         `json:"owner_id"`
	Images       []string       `json:"images"`
	Description  string         `json:"description"`
	Rules        []string       `json:"rules"`
	Rooms        []RoomResponse `json:"rooms"`
}

func (l *ListingResponse) FromModel(listing model.Listing) {
	l.ID = listing.ID
	l.Title = listing.Title
	l.Type = listing.Type
	l.Rent = listing.Rent
	l.Location = listing.Location
	l.City = listing.City
	l.Amenities = nonNil(listing.Amenities)
	l.Gender = listing.Gender
	l.Availability = listing.Availability
	l.Rating = listing.Rating
	l.OwnerID = listing.OwnerID
	l.Images = nonNil(listing.Images)
	l.Description = listing.Description
	l.Rules = nonNil(listing.Rules)

	l.Rooms = make([]RoomResponse, len(listing.Rooms))
	for i, room := range listing.Rooms {
		l.Rooms[i].FromModel(listing, room)
	}
}

type SearchResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}

func (s *SearchResponse) FromModels(listings []model.Listing) {
	s.Total = len(listings)

	s.Listings = make([]ListingResponse, len(listings))
	for i, listing := range listings {
		s.Listings[i].FromModel(listing)
	}
}

type RoomsResponse struct {
	ListingID string         `json:"listing_id"`
	BaseRent  int            `json:"base_rent"`
	Available int            `json:"available"`
	Rooms     []RoomResponse `json:"rooms"`
}

func (r *RoomsResponse) FromModel(listing model.Listing) {
	r.ListingID = listing.ID
	r.BaseRent = listing.Rent

	r.Rooms = make([]RoomResponse, len(listing.Rooms))
	for i, room := range listing.Rooms {
		r.Rooms[i].FromModel(listing, room)

		if room.IsAvailable {
			r.Available++
		}
	}
}

type RoomQuote struct {
	ListingID    string `json:"listing_id"`
	ListingTitle string `json:"listing_title"`
	RoomID       string `json:"room_id"`
	RoomName     string `json:"room_name"`
	RoomType     string `json:"room_type"`
	BaseRent     int    `json:"base_rent"`
	PriceExtra   int    `json:"price_extra"`
	MonthlyTotal int    `json:"monthly_total"`
}

func (q *RoomQuote) FromModel(listing model.Listing, room model.Room) {
	q.ListingID = listing.ID
	q.ListingTitle = listing.Title
	q.RoomID = room.ID
	q.RoomName = room.Name
	q.RoomType = room.Type
	q.BaseRent = listing.Rent
	q.PriceExtra = room.PriceExtra
	q.MonthlyTotal = listing.MonthlyPrice(room)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

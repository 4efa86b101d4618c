package model

import (
	"strings"

	"github.com/lib/pq"
)

const (
	TableName     = "listings"
	EntityName    = "listing"
	RoomTableName = "listing_rooms"
	RoomEntity    = "room"

	FieldID        = "id"
	FieldListingID = "listing_id"
	FieldOwnerID   = "owner_id"
)

const (
	TypePG   = "PG"
	TypeFlat = "Flat"
	TypeAll  = "all"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderUnisex = "Unisex"
)

const (
	RoomSingle = "Single"
	RoomDouble = "Double"
	RoomTriple = "Triple"
)

type Listing struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	Type         string         `db:"type"`
	Rent         int            `db:"rent"`
	Location     string         `db:"location"`
	City         string         `db:"city"`
	Amenities    pq.StringArray `db:"amenities"`
	Gender       string         `db:"gender"`
	Availability int            `db:"availability"`
	Rating       float64        `db:"rating"`
	OwnerID      string         `db:"owner_id"`
	Images       pq.StringArray `db:"images"`
	Description  string         `db:"description"`
	Rules        pq.StringArray `db:"rules"`
	Rooms        []Room
}

type Room struct {
	ID          string         `db:"id"`
	ListingID   string         `db:"listing_id"`
	Name        string         `db:"name"`
	Type        string         `db:"type"`
	IsAvailable bool           `db:"is_available"`
	PriceExtra  int            `db:"price_extra"`
	Dimensions  string         `db:"dimensions"`
	Features    pq.StringArray `db:"features"`
}

// MonthlyPrice is the rent a renter pays for room within listing.
func (l Listing) MonthlyPrice(room Room) int {
	return l.Rent + room.PriceExtra
}

// Room looks a room up by id.
func (l Listing) Room(id string) (Room, bool) {
	for _, room := range l.Rooms {
		if room.ID == id {
			return room, true
		}
	}

	return Room{}, false
}

// Matches reports whether the title or the location contains query, ignoring
// case, and the type equals listingType. An empty query matches every listing,
// an empty or "all" type matches every type.
func (l Listing) Matches(query, listingType string) bool {
	if listingType != "" && !strings.EqualFold(listingType, TypeAll) && !strings.EqualFold(listingType, l.Type) {
		return false
	}

	query = strings.ToLower(query)

	return strings.Contains(strings.ToLower(l.Title), query) || strings.Contains(strings.ToLower(l.Location), query)
}

// Filter keeps the listings matching query and listingType in catalog order.
// It never returns nil.
func Filter(listings []Listing, query, listingType string) []Listing {
	result := make([]Listing, 0, len(listings))

	for _, listing := range listings {
		if listing.Matches(query, listingType) {
			result = append(result, listing)
		}
	}

	return result
}

package dto

import (
	"math"
	"staywise/internal/domains/booking/model"
	listingModel "staywise/internal/domains/listing/model"
	"staywise/shared/constant"
	"staywise/shared/timezone"
	"time"
)

type BookingResponse struct {
	ID          string `json:"id"`
	ListingID   string `json:"listing_id"`
	RenterID    string `json:"renter_id"`
	ListingName string `json:"listing_name"`
	Status      string `json:"status"`
	CheckInDate string `json:"check_in_date"`
	Amount      int    `json:"amount"`
	Image       string `json:"image"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.ListingID = booking.ListingID
	r.RenterID = booking.RenterID
	r.ListingName = booking.ListingName
	r.Status = booking.Status
	r.CheckInDate = booking.CheckInDate.Format(constant.DateOnlyFormat)
	r.Amount = booking.Amount
	r.Image = booking.Image
}

type PaymentResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Amount    int    `json:"amount"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Type      string `json:"type"`
}

func (r *PaymentResponse) FromModel(payment model.Payment) {
	r.ID = payment.ID
	r.BookingID = payment.BookingID
	r.Amount = payment.Amount
	r.Date = payment.Date.Format(constant.DateOnlyFormat)
	r.Status = payment.Status
	r.Type = payment.Type
}

type MaintenanceResponse struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id"`
	Issue     string `json:"issue"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
}

func (r *MaintenanceResponse) FromModel(request model.MaintenanceRequest) {
	r.ID = request.ID
	r.ListingID = request.ListingID
	r.Issue = request.Issue
	r.Status = request.Status
	r.Priority = request.Priority
	r.CreatedAt = timezone.Format(request.CreatedAt, time.RFC3339)
}

type RenterDashboardResponse struct {
	RenterID           string                `json:"renter_id"`
	CurrentStay        *BookingResponse      `json:"current_stay"`
	Bookings           []BookingResponse     `json:"bookings"`
	Payments           []PaymentResponse     `json:"payments"`
	PaymentStatus      string                `json:"payment_status"`
	Outstanding        int                   `json:"outstanding"`
	PendingMaintenance int                   `json:"pending_maintenance"`
	Maintenance        []MaintenanceResponse `json:"maintenance"`
}

func (r *RenterDashboardResponse) FromModels(renterID string, bookings []model.Booking, payments []model.Payment, requests []model.MaintenanceRequest) {
	r.RenterID = renterID
	r.PaymentStatus = model.PaymentStatus(payments)
	r.Outstanding = model.Outstanding(payments)
	r.PendingMaintenance = model.PendingMaintenance(requests)

	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}

	r.Payments = make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		r.Payments[i].FromModel(payment)
	}

	r.Maintenance = make([]MaintenanceResponse, len(requests))
	for i, request := range requests {
		r.Maintenance[i].FromModel(request)
	}

	if stay := model.CurrentStay(bookings); stay != nil {
		r.CurrentStay = &BookingResponse{}
		r.CurrentStay.FromModel(*stay)
	}
}

type OwnerDashboardResponse struct {
	OwnerID        string  `json:"owner_id"`
	Listings       int     `json:"listings"`
	Rooms          int     `json:"rooms"`
	AvailableRooms int     `json:"available_rooms"`
	Vacancies      int     `json:"vacancies"`
	AverageRating  float64 `json:"average_rating"`
}

// FromModels summarises the listings of one owner. The rating is rounded to one decimal.
func (r *OwnerDashboardResponse) FromModels(ownerID string, listings []listingModel.Listing) {
	r.OwnerID = ownerID
	r.Listings = len(listings)

	var ratings float64

	for _, listing := range listings {
		r.Rooms += len(listing.Rooms)
		r.Vacancies += listing.Availability
		ratings += listing.Rating

		for _, room := range listing.Rooms {
			if room.IsAvailable {
				r.AvailableRooms++
			}
		}
	}

	if len(listings) > 0 {
		r.AverageRating = math.Round(ratings/float64(len(listings))*10) / 10
	}
}

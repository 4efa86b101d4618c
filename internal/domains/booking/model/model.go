package model

import (
	"time"
)

const (
	TableName            = "bookings"
	EntityName           = "booking"
	PaymentTableName     = "payments"
	PaymentEntity        = "payment"
	MaintenanceTableName = "maintenance_requests"
	MaintenanceEntity    = "maintenance"

	FieldID          = "id"
	FieldRenterID    = "renter_id"
	FieldBookingID   = "booking_id"
	FieldCheckInDate = "check_in_date"
	FieldDate        = "date"
	FieldCreatedAt   = "created_at"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

const (
	PaymentPaid    = "PAID"
	PaymentPending = "PENDING"
	PaymentOverdue = "OVERDUE"

	PaymentRent        = "RENT"
	PaymentDeposit     = "DEPOSIT"
	PaymentMaintenance = "MAINTENANCE"
)

const (
	MaintenanceOpen       = "OPEN"
	MaintenanceInProgress = "IN_PROGRESS"
	MaintenanceResolved   = "RESOLVED"

	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Labels of the renter payment status card.
const (
	PaymentStatusFullyPaid = "Fully Paid"
	PaymentStatusPending   = "Payment Pending"
	PaymentStatusOverdue   = "Overdue"
)

type Booking struct {
	ID          string    `db:"id"`
	ListingID   string    `db:"listing_id"`
	RenterID    string    `db:"renter_id"`
	ListingName string    `db:"listing_name"`
	Status      string    `db:"status"`
	CheckInDate time.Time `db:"check_in_date"`
	Amount      int       `db:"amount"`
	Image       string    `db:"image"`
}

type Payment struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Amount    int       `db:"amount"`
	Date      time.Time `db:"date"`
	Status    string    `db:"status"`
	Type      string    `db:"type"`
}

type MaintenanceRequest struct {
	ID        string    `db:"id"`
	ListingID string    `db:"listing_id"`
	RenterID  string    `db:"renter_id"`
	Issue     string    `db:"issue"`
	Status    string    `db:"status"`
	Priority  string    `db:"priority"`
	CreatedAt time.Time `db:"created_at"`
}

// CurrentStay is the first confirmed booking, nil when there is none.
func CurrentStay(bookings []Booking) *Booking {
	for i := range bookings {
		if bookings[i].Status == StatusConfirmed {
			return &bookings[i]
		}
	}

	return nil
}

// PaymentStatus is Overdue when any payment is overdue, Payment Pending when
// any is pending, and Fully Paid otherwise.
func PaymentStatus(payments []Payment) string {
	status := PaymentStatusFullyPaid

	for _, payment := range payments {
		switch payment.Status {
		case PaymentOverdue:
			return PaymentStatusOverdue
		case PaymentPending:
			status = PaymentStatusPending
		}
	}

	return status
}

// Outstanding sums every payment that is not paid yet.
func Outstanding(payments []Payment) int {
	total := 0

	for _, payment := range payments {
		if payment.Status != PaymentPaid {
			total += payment.Amount
		}
	}

	return total
}

func PendingMaintenance(requests []MaintenanceRequest) int {
	count := 0

	for _, request := range requests {
		if request.Status != MaintenanceResolved {
			count++
		}
	}

	return count
}

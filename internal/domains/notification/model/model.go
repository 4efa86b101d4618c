package model

import "time"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID        = "id"
	FieldCreatedAt = "created_at"
)

const (
	KindPayment      = "PAYMENT"
	KindAmenity      = "AMENITY"
	KindVerification = "VERIFICATION"
)

type Notification struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}

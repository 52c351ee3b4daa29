package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. Any status may transition to any other; only enum membership
// is enforced.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking holds the structure for the bookings collection in mongo. The date is an
// opaque string, so date-descending listings sort lexicographically.
type Booking struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	BookingID   string             `json:"bookingId" bson:"bookingId"`
	AadharNo    string             `json:"aadharNo" bson:"aadharNo"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Phone       string             `json:"phone" bson:"phone"`
	Doctor      string             `json:"doctor" bson:"doctor"`
	DoctorEmail string             `json:"doctoremail" bson:"doctoremail"`
	Fees        string             `json:"fees" bson:"fees"`
	Timeslot    string             `json:"timeslot" bson:"timeslot"`
	Date        string             `json:"date" bson:"date"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	FormType    string             `json:"formType,omitempty" bson:"formType,omitempty"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

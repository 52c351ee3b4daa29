package databases

// go generate: mockery --name BookingDatabase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medvault/medvault-api/models"
)

const bookingCollection = "bookings"

// ErrInvalidBookingID is returned when the path value is neither a known bookingId nor
// a well-formed store identifier
var ErrInvalidBookingID = errors.New("invalid booking ID format")

// BookingResolution tags which lookup path matched a booking update. The fallback to
// the store-assigned identifier exists because bookingId is not guaranteed present on
// all legacy rows.
type BookingResolution int

// Booking lookup outcomes
const (
	BookingNotFound BookingResolution = iota
	FoundByBookingID
	FoundByObjectID
)

// BookingDatabase contains the methods to use with the booking collection
type BookingDatabase interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByDoctorName(ctx context.Context, name string) ([]models.Booking, error)
	FindByDoctorEmail(ctx context.Context, email string) ([]models.Booking, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (*models.Booking, BookingResolution, error)
	DeleteByObjectID(ctx context.Context, id primitive.ObjectID) error
	DistinctAadhars(ctx context.Context, doctorEmail string) ([]string, error)
}

type bookingDatabase struct {
	db DatabaseHelper
}

// NewBookingDatabase initializes a new instance of the booking database with the
// provided db connection
func NewBookingDatabase(db DatabaseHelper) BookingDatabase {
	return &bookingDatabase{db: db}
}

func (b *bookingDatabase) Create(ctx context.Context, booking *models.Booking) error {
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err := b.db.Collection(bookingCollection).InsertOne(ctx, booking)
	return err
}

func (b *bookingDatabase) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := b.db.Collection(bookingCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *bookingDatabase) FindAll(ctx context.Context) ([]models.Booking, error) {
	return b.find(ctx, bson.M{})
}

func (b *bookingDatabase) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return b.find(ctx, bson.M{"email": email})
}

func (b *bookingDatabase) FindByDoctorName(ctx context.Context, name string) ([]models.Booking, error) {
	return b.find(ctx, bson.M{"doctor": primitive.Regex{Pattern: name, Options: "i"}})
}

func (b *bookingDatabase) FindByDoctorEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return b.find(ctx, bson.M{"doctoremail": email})
}

// UpdateByID resolves the booking by the application-level bookingId first and falls
// back to the store-assigned identifier when the path value parses as one.
func (b *bookingDatabase) UpdateByID(ctx context.Context, id string, set bson.M) (*models.Booking, BookingResolution, error) {
	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	coll := b.db.Collection(bookingCollection)

	var booking models.Booking
	err := coll.FindOneAndUpdate(ctx, bson.M{"bookingId": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err == nil {
		return &booking, FoundByBookingID, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, BookingNotFound, err
	}

	oid, hexErr := primitive.ObjectIDFromHex(id)
	if hexErr != nil {
		return nil, BookingNotFound, ErrInvalidBookingID
	}
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, BookingNotFound, nil
	}
	if err != nil {
		return nil, BookingNotFound, err
	}
	return &booking, FoundByObjectID, nil
}

func (b *bookingDatabase) DeleteByObjectID(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := b.db.Collection(bookingCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (b *bookingDatabase) DistinctAadhars(ctx context.Context, doctorEmail string) ([]string, error) {
	values, err := b.db.Collection(bookingCollection).Distinct(ctx, "aadharNo", bson.M{"doctoremail": doctorEmail})
	if err != nil {
		return nil, err
	}
	aadhars := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			aadhars = append(aadhars, s)
		}
	}
	return aadhars, nil
}

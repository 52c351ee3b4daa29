package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medvault/medvault-api/databases"
	"github.com/medvault/medvault-api/databases/mocks"
	"github.com/medvault/medvault-api/models"
)

func bookingDB(coll *mocks.CollectionHelper) databases.BookingDatabase {
	db := &mocks.DatabaseHelper{}
	db.On("Collection", "bookings").Return(coll)
	return databases.NewBookingDatabase(db)
}

func TestBookingUpdateByID_ResolvesByBookingID(t *testing.T) {
	coll := &mocks.CollectionHelper{}
	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Run(func(args mock.Arguments) {
		booking := args.Get(0).(*models.Booking)
		booking.BookingID = "BK-1001"
		booking.Status = models.BookingConfirmed
	}).Return(nil)
	coll.On("FindOneAndUpdate", mock.Anything, bson.M{"bookingId": "BK-1001"}, mock.Anything, mock.Anything).Return(sr)

	booking, resolution, err := bookingDB(coll).UpdateByID(context.Background(), "BK-1001", bson.M{"status": "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, databases.FoundByBookingID, resolution)
	assert.Equal(t, "BK-1001", booking.BookingID)
}

func TestBookingUpdateByID_FallsBackToObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	missed := &mocks.SingleResultHelper{}
	missed.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)

	matched := &mocks.SingleResultHelper{}
	matched.On("Decode", mock.Anything).Run(func(args mock.Arguments) {
		booking := args.Get(0).(*models.Booking)
		booking.ID = id
		booking.Status = models.BookingCancelled
	}).Return(nil)

	coll := &mocks.CollectionHelper{}
	coll.On("FindOneAndUpdate", mock.Anything, bson.M{"bookingId": id.Hex()}, mock.Anything, mock.Anything).Return(missed)
	coll.On("FindOneAndUpdate", mock.Anything, bson.M{"_id": id}, mock.Anything, mock.Anything).Return(matched)

	booking, resolution, err := bookingDB(coll).UpdateByID(context.Background(), id.Hex(), bson.M{"status": "cancelled"})

	require.NoError(t, err)
	assert.Equal(t, databases.FoundByObjectID, resolution)
	assert.Equal(t, id, booking.ID)
}

func TestBookingUpdateByID_InvalidHexAfterMiss(t *testing.T) {
	missed := &mocks.SingleResultHelper{}
	missed.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)

	coll := &mocks.CollectionHelper{}
	coll.On("FindOneAndUpdate", mock.Anything, bson.M{"bookingId": "not-a-hex"}, mock.Anything, mock.Anything).Return(missed)

	booking, resolution, err := bookingDB(coll).UpdateByID(context.Background(), "not-a-hex", bson.M{"status": "confirmed"})

	assert.Nil(t, booking)
	assert.Equal(t, databases.BookingNotFound, resolution)
	assert.ErrorIs(t, err, databases.ErrInvalidBookingID)
}

func TestBookingUpdateByID_NeitherPathMatches(t *testing.T) {
	id := primitive.NewObjectID()
	missed := &mocks.SingleResultHelper{}
	missed.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)

	coll := &mocks.CollectionHelper{}
	coll.On("FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(missed)

	booking, resolution, err := bookingDB(coll).UpdateByID(context.Background(), id.Hex(), bson.M{"status": "confirmed"})

	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, databases.BookingNotFound, resolution)
}

func TestBookingDeleteByObjectID_ZeroDeleted(t *testing.T) {
	id := primitive.NewObjectID()
	coll := &mocks.CollectionHelper{}
	coll.On("DeleteOne", mock.Anything, bson.M{"_id": id}).Return(int64(0), nil)

	err := bookingDB(coll).DeleteByObjectID(context.Background(), id)

	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

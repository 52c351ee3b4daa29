package databases

// go generate: mockery --name DoctorDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medvault/medvault-api/models"
)

const doctorCollection = "doctors"

// DoctorDatabase contains the methods to use with the doctor collection
type DoctorDatabase interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByName(ctx context.Context, name string) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
}

type doctorDatabase struct {
	db DatabaseHelper
}

// NewDoctorDatabase initializes a new instance of the doctor database with the
// provided db connection
func NewDoctorDatabase(db DatabaseHelper) DoctorDatabase {
	return &doctorDatabase{db: db}
}

func (d *doctorDatabase) Create(ctx context.Context, doctor *models.Doctor) error {
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	_, err := d.db.Collection(doctorCollection).InsertOne(ctx, doctor)
	return err
}

func (d *doctorDatabase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := d.db.Collection(doctorCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (d *doctorDatabase) FindByName(ctx context.Context, name string) (*models.Doctor, error) {
	var doctor models.Doctor
	filter := bson.M{"name": primitive.Regex{Pattern: name, Options: "i"}}
	err := d.db.Collection(doctorCollection).FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (d *doctorDatabase) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := d.db.Collection(doctorCollection).FindOne(ctx, bson.M{"email": email}).Decode(&doctor)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

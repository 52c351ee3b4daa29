package databases

// go generate: mockery --name MedicalRecordDatabase

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

const medicalRecordCollection = "medicalrecords"

// MedicalRecordDatabase contains the methods to use with the medical record collection
type MedicalRecordDatabase interface {
	Create(ctx context.Context, record *models.MedicalRecord) error
	ExistsByRecordID(ctx context.Context, recordID string) (bool, error)
	FindByAadhar(ctx context.Context, aadharNo string, newestFirst bool) ([]models.MedicalRecord, error)
	LatestByAadhar(ctx context.Context, aadharNo string) (*models.MedicalRecord, error)
	UpdateByAadhar(ctx context.Context, aadharNo string, set bson.M) (*models.MedicalRecord, error)
	DeleteByRecordID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	SearchByName(ctx context.Context, name string) ([]models.MedicalRecord, error)
}

type medicalRecordDatabase struct {
	db DatabaseHelper
}

// NewMedicalRecordDatabase initializes a new instance of the medical record database
// with the provided db connection
func NewMedicalRecordDatabase(db DatabaseHelper) MedicalRecordDatabase {
	return &medicalRecordDatabase{db: db}
}

func (m *medicalRecordDatabase) Create(ctx context.Context, record *models.MedicalRecord) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	_, err := m.db.Collection(medicalRecordCollection).InsertOne(ctx, record)
	return err
}

func (m *medicalRecordDatabase) ExistsByRecordID(ctx context.Context, recordID string) (bool, error) {
	count, err := m.db.Collection(medicalRecordCollection).CountDocuments(ctx, bson.M{"recordId": recordID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *medicalRecordDatabase) FindByAadhar(ctx context.Context, aadharNo string, newestFirst bool) ([]models.MedicalRecord, error) {
	order := 1
	if newestFirst {
		order = -1
	}
	opts := options.Find().SetSort(bson.M{"createdAt": order})
	cursor, err := m.db.Collection(medicalRecordCollection).Find(ctx, bson.M{"aadharNo": aadharNo}, opts)
	if err != nil {
		return nil, err
	}
	var records []models.MedicalRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (m *medicalRecordDatabase) LatestByAadhar(ctx context.Context, aadharNo string) (*models.MedicalRecord, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	var record models.MedicalRecord
	err := m.db.Collection(medicalRecordCollection).FindOne(ctx, bson.M{"aadharNo": aadharNo}, opts).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (m *medicalRecordDatabase) UpdateByAadhar(ctx context.Context, aadharNo string, set bson.M) (*models.MedicalRecord, error) {
	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var record models.MedicalRecord
	err := m.db.Collection(medicalRecordCollection).
		FindOneAndUpdate(ctx, bson.M{"aadharNo": aadharNo}, bson.M{"$set": set}, opts).
		Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (m *medicalRecordDatabase) DeleteByRecordID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := m.db.Collection(medicalRecordCollection).
		FindOneAndDelete(ctx, bson.M{"recordId": recordID}).
		Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (m *medicalRecordDatabase) SearchByName(ctx context.Context, name string) ([]models.MedicalRecord, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	filter := bson.M{"name": primitive.Regex{Pattern: name, Options: "i"}}
	cursor, err := m.db.Collection(medicalRecordCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var records []models.MedicalRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// IsNoDocuments reports whether err means the filter matched nothing
func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

package databases

// go generate: mockery --name ReportDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medvault/medvault-api/models"
)

const reportCollection = "reports"

// ReportDatabase contains the methods to use with the report collection
type ReportDatabase interface {
	Create(ctx context.Context, report *models.Report) error
	FindByAadhar(ctx context.Context, aadharNo string) ([]models.Report, error)
	FindByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*models.Report, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DistinctFilenames(ctx context.Context) ([]string, error)
}

type reportDatabase struct {
	db DatabaseHelper
}

// NewReportDatabase initializes a new instance of the report database with the
// provided db connection
func NewReportDatabase(db DatabaseHelper) ReportDatabase {
	return &reportDatabase{db: db}
}

func (r *reportDatabase) Create(ctx context.Context, report *models.Report) error {
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	_, err := r.db.Collection(reportCollection).InsertOne(ctx, report)
	return err
}

func (r *reportDatabase) FindByAadhar(ctx context.Context, aadharNo string) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.db.Collection(reportCollection).Find(ctx, bson.M{"AadharNo": aadharNo}, opts)
	if err != nil {
		return nil, err
	}
	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportDatabase) FindByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*models.Report, error) {
	var report models.Report
	err := r.db.Collection(reportCollection).
		FindOne(ctx, bson.M{"_id": id, "userId": userID}).
		Decode(&report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportDatabase) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.db.Collection(reportCollection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DistinctFilenames lists every attachment filename still referenced by a report
func (r *reportDatabase) DistinctFilenames(ctx context.Context) ([]string, error) {
	values, err := r.db.Collection(reportCollection).Distinct(ctx, "files.filename", bson.M{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	return names, nil
}

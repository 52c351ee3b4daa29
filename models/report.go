package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportFile describes one uploaded attachment of a report
type ReportFile struct {
	Filename     string `json:"filename" bson:"filename"`
	OriginalName string `json:"originalName" bson:"originalName"`
	MimeType     string `json:"mimetype" bson:"mimetype"`
	Path         string `json:"path" bson:"path"`
	Size         int64  `json:"size" bson:"size"`
}

// Report holds the structure for the reports collection in mongo. The attached files
// live on local disk under the upload directory and are removed when the report is
// deleted.
type Report struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	AadharNo   string             `json:"AadharNo" bson:"AadharNo"`
	ReportType string             `json:"reportType" bson:"reportType"`
	DoctorName string             `json:"doctorName" bson:"doctorName"`
	ReportDate time.Time          `json:"reportDate" bson:"reportDate"`
	Notes      string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Files      []ReportFile       `json:"files" bson:"files"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

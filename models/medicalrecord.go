package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicalRecord holds the structure for the medicalrecords collection in mongo.
// Scalar vitals are stored as strings regardless of how the client sent them; bmi is
// derived from weight and height at write time and never taken from the caller.
type MedicalRecord struct {
	ID                  primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	RecordID            string             `json:"recordId" bson:"recordId"`
	AadharNo            string             `json:"aadharNo" bson:"aadharNo"`
	Name                string             `json:"name" bson:"name"`
	Age                 string             `json:"age" bson:"age"`
	Gender              string             `json:"gender" bson:"gender"`
	Weight              string             `json:"weight" bson:"weight"`
	Height              string             `json:"height" bson:"height"`
	BMI                 string             `json:"bmi" bson:"bmi"`
	BloodPressure       string             `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	SugarLevel          string             `json:"sugarLevel,omitempty" bson:"sugarLevel,omitempty"`
	Cholesterol         string             `json:"cholesterol,omitempty" bson:"cholesterol,omitempty"`
	Allergies           string             `json:"allergies,omitempty" bson:"allergies,omitempty"`
	PastSurgeries       string             `json:"pastSurgeries,omitempty" bson:"pastSurgeries,omitempty"`
	CurrentMedications  string             `json:"currentMedications,omitempty" bson:"currentMedications,omitempty"`
	FamilyHistory       string             `json:"familyHistory,omitempty" bson:"familyHistory,omitempty"`
	VaccinationHistory  string             `json:"vaccinationHistory,omitempty" bson:"vaccinationHistory,omitempty"`
	DietaryRestrictions string             `json:"dietaryRestrictions,omitempty" bson:"dietaryRestrictions,omitempty"`
	EmergencyContact    *EmergencyContact  `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	MentalHealth        *MentalHealth      `json:"mentalHealth,omitempty" bson:"mentalHealth,omitempty"`
	SleepQuality        *SleepQuality      `json:"sleepQuality,omitempty" bson:"sleepQuality,omitempty"`
	Lifestyle           *Lifestyle         `json:"lifestyle,omitempty" bson:"lifestyle,omitempty"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// EmergencyContact is the optional contact sub-object of a medical record
type EmergencyContact struct {
	Name         string `json:"name" bson:"name"`
	Relationship string `json:"relationship" bson:"relationship"`
	Phone        string `json:"phone" bson:"phone"`
}

// MentalHealth is stored whole; a partial update replaces the entire sub-object
type MentalHealth struct {
	StressLevel string `json:"stressLevel,omitempty" bson:"stressLevel,omitempty"`
	Anxiety     bool   `json:"anxiety" bson:"anxiety"`
	Depression  bool   `json:"depression" bson:"depression"`
}

// SleepQuality is stored whole; a partial update replaces the entire sub-object
type SleepQuality struct {
	HoursPerNight string `json:"hoursPerNight,omitempty" bson:"hoursPerNight,omitempty"`
	Quality       string `json:"quality,omitempty" bson:"quality,omitempty"`
}

// Lifestyle is stored whole; a partial update replaces the entire sub-object
type Lifestyle struct {
	Smoking  bool `json:"smoking" bson:"smoking"`
	Alcohol  bool `json:"alcohol" bson:"alcohol"`
	Exercise bool `json:"exercise" bson:"exercise"`
	Sleep    bool `json:"sleep" bson:"sleep"`
}

// RecordSummary is the trimmed per-record view returned by the history summary endpoint
type RecordSummary struct {
	CreatedAt     time.Time `json:"createdAt"`
	BloodPressure string    `json:"bloodPressure"`
	Weight        string    `json:"weight"`
}

// RecordVitals is the trimmed latest-record view returned by the vitals endpoint
type RecordVitals struct {
	Weight        string `json:"weight"`
	Height        string `json:"height"`
	BMI           string `json:"bmi"`
	BloodPressure string `json:"bloodPressure"`
	SugarLevel    string `json:"sugarLevel"`
}

// RecordStats aggregates a patient's record history. AverageBMI is a 2-decimal string
// when more than one record exists and a bare number when there is exactly one; both
// paths carry the same numeric value.
type RecordStats struct {
	TotalRecords  int           `json:"totalRecords"`
	LatestRecord  StatsLatest   `json:"latestRecord"`
	OldestRecord  StatsOldest   `json:"oldestRecord"`
	AverageBMI    interface{}   `json:"averageBMI"`
	RecordHistory []StatsSample `json:"recordHistory"`
}

// StatsLatest is the newest-record slice of RecordStats
type StatsLatest struct {
	Date          time.Time `json:"date"`
	BMI           string    `json:"bmi"`
	Weight        string    `json:"weight"`
	BloodPressure string    `json:"bloodPressure"`
	SugarLevel    string    `json:"sugarLevel"`
}

// StatsOldest is the oldest-record slice of RecordStats
type StatsOldest struct {
	Date   time.Time `json:"date"`
	BMI    string    `json:"bmi"`
	Weight string    `json:"weight"`
}

// StatsSample is one point of the per-record weight/bmi history
type StatsSample struct {
	Date   time.Time `json:"date"`
	Weight string    `json:"weight"`
	BMI    string    `json:"bmi"`
}

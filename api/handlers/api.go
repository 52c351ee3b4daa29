package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medvault/medvault-api/api"
	"github.com/medvault/medvault-api/api/scheduler"
	"github.com/medvault/medvault-api/config"
	"github.com/medvault/medvault-api/databases"
	"github.com/medvault/medvault-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
	cloud    *cloudinary.Cloudinary
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	m := api.Middleware{
		Secret:  a.Config.JWTSecret,
		Doctors: databases.NewDoctorDatabase(a.dbHelper),
	}
	storage := &Storage{Dir: a.Config.UploadDir, Cloud: a.cloud}

	u := User{DB: databases.NewUserDatabase(a.dbHelper), Storage: storage, Secret: a.Config.JWTSecret}
	d := Doctor{DB: databases.NewDoctorDatabase(a.dbHelper), BDB: databases.NewBookingDatabase(a.dbHelper), Secret: a.Config.JWTSecret}
	adm := Admin{DB: databases.NewDoctorDatabase(a.dbHelper), Storage: storage, Config: a.Config}
	b := Booking{DB: databases.NewBookingDatabase(a.dbHelper)}
	mr := MedicalRecord{DB: databases.NewMedicalRecordDatabase(a.dbHelper)}
	rep := Report{DB: databases.NewReportDatabase(a.dbHelper), Storage: storage}
	ai := AI{APIKey: a.Config.GeminiAPIKey, APIURL: a.Config.GeminiAPIURL, Client: http.DefaultClient}

	r := mux.NewRouter()

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.Handle("/signup", http.HandlerFunc(u.SignupHandler)).Methods("POST")
	apiCreate.Handle("/login", http.HandlerFunc(u.LoginHandler)).Methods("POST")
	apiCreate.Handle("/me", m.Auth(http.HandlerFunc(u.MeHandler))).Methods("GET")
	apiCreate.Handle("/get-aadhar", http.HandlerFunc(u.AadharByEmailHandler)).Methods("GET")

	apiCreate.Handle("/doctors", http.HandlerFunc(d.AllDoctorsHandler)).Methods("GET")
	apiCreate.Handle("/doctors/name/{name}", http.HandlerFunc(d.DoctorByNameHandler)).Methods("GET")
	apiCreate.Handle("/doctor/login", http.HandlerFunc(d.LoginHandler)).Methods("POST")
	apiCreate.Handle("/doctor/me", m.AuthDoctor(http.HandlerFunc(d.MeHandler))).Methods("GET")
	apiCreate.Handle("/doctor/bookings", m.AuthDoctor(http.HandlerFunc(d.BookingsHandler))).Methods("GET")

	apiCreate.Handle("/admin/login", http.HandlerFunc(adm.LoginHandler)).Methods("POST")
	apiCreate.Handle("/admin/add-doctor", m.Auth(http.HandlerFunc(adm.AddDoctorHandler))).Methods("POST")

	apiCreate.Handle("/book-appointment", http.HandlerFunc(b.CreateBookingHandler)).Methods("POST")
	apiCreate.Handle("/bookings", http.HandlerFunc(b.AllBookingsHandler)).Methods("GET")
	apiCreate.Handle("/bookings/doctor/{doctorName}", http.HandlerFunc(b.BookingsByDoctorNameHandler)).Methods("GET")
	apiCreate.Handle("/bookings/aadhars/{doctorEmail}", http.HandlerFunc(b.AadharsByDoctorEmailHandler)).Methods("GET")
	apiCreate.Handle("/bookings/{email}", http.HandlerFunc(b.BookingsByEmailHandler)).Methods("GET")
	apiCreate.Handle("/bookings/{id}", http.HandlerFunc(b.UpdateBookingHandler)).Methods("PUT")
	apiCreate.Handle("/bookings/{id}", http.HandlerFunc(b.DeleteBookingHandler)).Methods("DELETE")

	records := apiCreate.PathPrefix("/medical-records").Subrouter()
	records.Handle("/create", http.HandlerFunc(mr.CreateRecordHandler)).Methods("POST")
	records.Handle("/me/{aadharNo}", http.HandlerFunc(mr.RecordSummariesHandler)).Methods("GET")
	records.Handle("/all/{aadharNo}", http.HandlerFunc(mr.AllRecordsHandler)).Methods("GET")
	records.Handle("/latest/{aadharNo}", http.HandlerFunc(mr.LatestRecordHandler)).Methods("GET")
	records.Handle("/vitals/{aadharNo}", http.HandlerFunc(mr.VitalsHandler)).Methods("GET")
	records.Handle("/search/name/{name}", http.HandlerFunc(mr.SearchByNameHandler)).Methods("GET")
	records.Handle("/stats/{aadharNo}", http.HandlerFunc(mr.StatsHandler)).Methods("GET")
	records.Handle("/{aadharNo}", http.HandlerFunc(mr.HistoryPDFHandler)).Methods("GET")
	records.Handle("/{aadharNo}", http.HandlerFunc(mr.UpdateRecordHandler)).Methods("PUT")
	records.Handle("/{recordId}", http.HandlerFunc(mr.DeleteRecordHandler)).Methods("DELETE")

	apiCreate.Handle("/upload", m.Auth(http.HandlerFunc(rep.UploadHandler))).Methods("POST")
	apiCreate.Handle("/all-report/{aadharNo}", m.Auth(http.HandlerFunc(rep.ReportsByAadharHandler))).Methods("GET")
	apiCreate.Handle("/all-reports/{aadharNo}", http.HandlerFunc(rep.ReportsByAadharHandler)).Methods("GET")
	apiCreate.Handle("/report/{id}", m.Auth(http.HandlerFunc(rep.ReportByIDHandler))).Methods("GET")
	apiCreate.Handle("/report/{id}", m.Auth(http.HandlerFunc(rep.DeleteReportHandler))).Methods("DELETE")

	apiCreate.Handle("/generate-insight", m.Auth(http.HandlerFunc(ai.GenerateInsightHandler))).Methods("POST")
	apiCreate.Handle("/generate-health-tips", m.Auth(http.HandlerFunc(ai.GenerateHealthTipsHandler))).Methods("POST")
	apiCreate.Handle("/translate-text", m.Auth(http.HandlerFunc(ai.TranslateTextHandler))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("medvault-api has connected to the database")

	if a.Config.CloudinaryURL != "" {
		a.cloud, err = cloudinary.NewFromURL(a.Config.CloudinaryURL)
		if err != nil {
			zap.S().With(err).Error("failed to initialize cloudinary")
			return err
		}
	}

	s := scheduler.NewScheduler(databases.NewReportDatabase(a.dbHelper), a.Config.UploadDir)
	s.Start()

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

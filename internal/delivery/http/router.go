package http

import (
	"net/http"

	"practice-scheduler/internal/delivery/http/handler"
	"practice-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	scheduleHandler    *handler.ScheduleHandler
	staffHandler       *handler.StaffHandler
	patientHandler     *handler.PatientHandler
	disciplineHandler  *handler.DisciplineHandler
	treatmentHandler   *handler.TreatmentHandler
	appointmentHandler *handler.AppointmentHandler
	apiHandler         *handler.APIHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
	sessionMiddleware  *middleware.SessionMiddleware
	csrfMiddleware     *middleware.CSRFMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

// Handlers groups the request handlers the router dispatches to.
type Handlers struct {
	Schedule    *handler.ScheduleHandler
	Staff       *handler.StaffHandler
	Patient     *handler.PatientHandler
	Discipline  *handler.DisciplineHandler
	Treatment   *handler.TreatmentHandler
	Appointment *handler.AppointmentHandler
	API         *handler.APIHandler
}

// Middlewares groups the middleware the router installs.
type Middlewares struct {
	Logging *middleware.LoggingMiddleware
	Metrics *middleware.MetricsMiddleware
	Session *middleware.SessionMiddleware
	CSRF    *middleware.CSRFMiddleware
	CORS    *middleware.CORSMiddleware
}

func NewRouter(handlers Handlers, middlewares Middlewares) *Router {
	return &Router{
		router:             mux.NewRouter(),
		scheduleHandler:    handlers.Schedule,
		staffHandler:       handlers.Staff,
		patientHandler:     handlers.Patient,
		disciplineHandler:  handlers.Discipline,
		treatmentHandler:   handlers.Treatment,
		appointmentHandler: handlers.Appointment,
		apiHandler:         handlers.API,
		loggingMiddleware:  middlewares.Logging,
		metricsMiddleware:  middlewares.Metrics,
		sessionMiddleware:  middlewares.Session,
		csrfMiddleware:     middlewares.CSRF,
		corsMiddleware:     middlewares.CORS,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.corsMiddleware.Handle)
	api.HandleFunc("/health", r.apiHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{date}", r.apiHandler.GetSchedule).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs", r.apiHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.apiHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	// Admin pages
	admin := r.router.PathPrefix("/admin").Subrouter()
	admin.Use(r.sessionMiddleware.Handle)
	admin.Use(r.csrfMiddleware.Handle)

	// Schedule
	admin.HandleFunc("/schedule", r.scheduleHandler.ShowSchedule).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/redirect", r.scheduleHandler.RedirectSchedule).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/{date}", r.scheduleHandler.ShowSchedule).Methods(http.MethodGet)

	// Staff
	admin.HandleFunc("/staff", r.staffHandler.ListStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff/new", r.staffHandler.NewStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff/new", r.staffHandler.CreateStaff).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}", r.staffHandler.ShowStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{id}/edit", r.staffHandler.EditStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{id}/edit", r.staffHandler.UpdateStaff).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}/delete", r.staffHandler.DeleteStaff).Methods(http.MethodPost)

	// Patients
	admin.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/new", r.patientHandler.NewPatient).Methods(http.MethodGet)
	admin.HandleFunc("/patients/new", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{id}", r.patientHandler.ShowPatient).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}/edit", r.patientHandler.EditPatient).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}/edit", r.patientHandler.UpdatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{id}/delete", r.patientHandler.DeletePatient).Methods(http.MethodPost)

	// Disciplines
	admin.HandleFunc("/disciplines", r.disciplineHandler.ListDisciplines).Methods(http.MethodGet)
	admin.HandleFunc("/disciplines/new", r.disciplineHandler.NewDiscipline).Methods(http.MethodGet)
	admin.HandleFunc("/disciplines/new", r.disciplineHandler.CreateDiscipline).Methods(http.MethodPost)
	admin.HandleFunc("/disciplines/{id}/edit", r.disciplineHandler.EditDiscipline).Methods(http.MethodGet)
	admin.HandleFunc("/disciplines/{id}/edit", r.disciplineHandler.UpdateDiscipline).Methods(http.MethodPost)

	// Treatments
	admin.HandleFunc("/treatments", r.treatmentHandler.ListTreatments).Methods(http.MethodGet)
	admin.HandleFunc("/treatments/new", r.treatmentHandler.NewTreatment).Methods(http.MethodGet)
	admin.HandleFunc("/treatments/new", r.treatmentHandler.CreateTreatment).Methods(http.MethodPost)
	admin.HandleFunc("/treatments/{id}/edit", r.treatmentHandler.EditTreatment).Methods(http.MethodGet)
	admin.HandleFunc("/treatments/{id}/edit", r.treatmentHandler.UpdateTreatment).Methods(http.MethodPost)

	// Appointments
	admin.HandleFunc("/appointments/new", r.appointmentHandler.NewAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/new", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.ShowAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/edit", r.appointmentHandler.EditAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/edit", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/copy", r.appointmentHandler.CopyAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/delete", r.appointmentHandler.DeleteAppointment).Methods(http.MethodPost)

	// Anything else lands on today's schedule.
	r.router.NotFoundHandler = http.HandlerFunc(r.redirectToSchedule)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(r.redirectToSchedule)

	return r.router
}

func (r *Router) redirectToSchedule(w http.ResponseWriter, req *http.Request) {
	http.Redirect(w, req, "/admin/schedule", http.StatusFound)
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"patientdoc/internal/handlers"
	"patientdoc/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Patients service.PatientService
	Pages    *handlers.PageHandler
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	patientHandler := handlers.NewPatientHandler(deps.Patients)
	apiHandler := handlers.NewAPIHandler(deps.Patients)
	healthHandler := handlers.NewHealthHandler(deps.Patients)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/patients", http.StatusFound)
	})

	r.Route("/patients", func(r chi.Router) {
		r.Get("/", patientHandler.List)
		r.Post("/", patientHandler.Create)
		r.Get("/new", patientHandler.New)
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/", patientHandler.Update)
			r.Get("/edit", patientHandler.Edit)
			r.Post("/delete", patientHandler.Delete)
			r.Get("/print", patientHandler.Print)
		})
	})

	if deps.Pages != nil {
		r.Get("/help", deps.Pages.Page("help"))
		r.Get("/about", deps.Pages.Page("about"))
	}

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Route("/patients", func(r chi.Router) {
			r.Get("/", apiHandler.List)
			r.Post("/", apiHandler.Create)
			r.Get("/{id}", apiHandler.Get)
			r.Put("/{id}", apiHandler.Update)
			r.Delete("/{id}", apiHandler.Delete)
		})
	})

	return r
}

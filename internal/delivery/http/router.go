package http

import (
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	doctorHandler   *handler.DoctorHandler
	hospitalHandler *handler.HospitalHandler
	taxonomyHandler *handler.TaxonomyHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	hospitalHandler *handler.HospitalHandler,
	taxonomyHandler *handler.TaxonomyHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		doctorHandler:   doctorHandler,
		hospitalHandler: hospitalHandler,
		taxonomyHandler: taxonomyHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/callback", r.authHandler.Callback).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Directory routes (public reads)
	api.HandleFunc("/doctors", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/count", r.doctorHandler.CountDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/hospitals", r.hospitalHandler.GetAllHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/count", r.hospitalHandler.CountHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)

	// Taxonomy routes (public)
	taxonomies := api.PathPrefix("/taxonomies").Subrouter()
	taxonomies.HandleFunc("/care-categories", r.taxonomyHandler.GetCareCategories).Methods(http.MethodGet)
	taxonomies.HandleFunc("/care-categories/{code}/areas", r.taxonomyHandler.GetCareAreasByCategory).Methods(http.MethodGet)
	taxonomies.HandleFunc("/departments", r.taxonomyHandler.GetDepartments).Methods(http.MethodGet)
	taxonomies.HandleFunc("/languages", r.taxonomyHandler.GetLanguages).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Hospital management (admin)
	admin.HandleFunc("/hospitals", r.hospitalHandler.CreateHospital).Methods(http.MethodPost)
	admin.HandleFunc("/hospitals/{id}", r.hospitalHandler.UpdateHospital).Methods(http.MethodPut)
	admin.HandleFunc("/hospitals/{id}", r.hospitalHandler.DeleteHospital).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

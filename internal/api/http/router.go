package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"booking-admin-console/internal/security"
	"booking-admin-console/internal/service"
)

type Services struct {
	AdminCodes service.AdminCodeService
	Users      service.UserService
	Bookings   service.BookingService
}

// NewRouter wires every console route. ping backs /healthz and may be nil.
func NewRouter(svcs Services, tm security.TokenManager, ping func(context.Context) error) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tm))

	codes := NewAdminCodeHandler(svcs.AdminCodes)
	api.HandleFunc("/admin-code-requests", codes.ListRequests).Methods(http.MethodGet)
	api.HandleFunc("/admin-code-requests/{id}", codes.GetRequest).Methods(http.MethodGet)
	api.HandleFunc("/admin-code-requests/{id}/approve", codes.Approve).Methods(http.MethodPost)
	api.HandleFunc("/admin-code-requests/{id}/reject", codes.Reject).Methods(http.MethodPost)
	api.HandleFunc("/admin-codes/validate", codes.ValidateCode).Methods(http.MethodPost)
	api.HandleFunc("/phone/normalize", codes.NormalizePhone).Methods(http.MethodPost)

	console := NewConsoleHandler(svcs.Users, svcs.Bookings)
	api.HandleFunc("/users", console.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", console.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/bookings", console.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings", console.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", console.GetBooking).Methods(http.MethodGet)

	return router
}

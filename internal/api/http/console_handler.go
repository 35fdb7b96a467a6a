package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/service"
)

type ConsoleHandler struct {
	userSvc    service.UserService
	bookingSvc service.BookingService
}

func NewConsoleHandler(userSvc service.UserService, bookingSvc service.BookingService) *ConsoleHandler {
	return &ConsoleHandler{userSvc: userSvc, bookingSvc: bookingSvc}
}

func (h *ConsoleHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := queryInt32(q.Get("page")), queryInt32(q.Get("page_size"))

	if search := q.Get("q"); search != "" {
		users, err := h.userSvc.SearchUsers(r.Context(), search, pageSize)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"users": nonNilUsers(users), "total": len(users)})
		return
	}

	users, total, err := h.userSvc.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": nonNilUsers(users), "total": total})
}

func (h *ConsoleHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.userSvc.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *ConsoleHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bookings, total, err := h.bookingSvc.ListBookings(r.Context(), queryInt32(q.Get("page")), queryInt32(q.Get("page_size")))
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings, "total": total})
}

func (h *ConsoleHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookingSvc.GetBooking(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *ConsoleHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input service.BookingInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	b, err := h.bookingSvc.CreateBooking(r.Context(), AdminFromContext(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// queryInt32 returns 0 for missing or malformed values so the service
// defaults apply.
func queryInt32(s string) int32 {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}

func nonNilUsers(users []domain.User) []domain.User {
	if users == nil {
		return []domain.User{}
	}
	return users
}

package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/expense-tracker/internal/user/usecase/command"
	"github.com/tair/expense-tracker/internal/user/usecase/query"
	"github.com/tair/expense-tracker/kafka"
	"github.com/tair/expense-tracker/pkg/apperrors"
	"github.com/tair/expense-tracker/pkg/logger"
)

// EventPublisher publishes user lifecycle events. Publishing is best-effort:
// a failure is logged and the request still succeeds.
type EventPublisher interface {
	PublishUserEvent(ctx context.Context, event kafka.UserEvent) error
}

// CommandHandlers groups the write-side handlers
type CommandHandlers struct {
	Register       *command.RegisterHandler
	Login          *command.LoginHandler
	RefreshToken   *command.RefreshTokenHandler
	ChangePassword *command.ChangePasswordHandler
	UpdateProfile  *command.UpdateProfileHandler
	UpdateRole     *command.UpdateRoleHandler
	ActivateUser   *command.ActivateUserHandler
	DeactivateUser *command.DeactivateUserHandler
	SuspendUser    *command.SuspendUserHandler
	DeleteUser     *command.DeleteUserHandler
}

// QueryHandlers groups the read-side handlers
type QueryHandlers struct {
	GetUser   *query.GetUserHandler
	ListUsers *query.ListUsersHandler
}

// UserHandler handles HTTP requests for the user module
type UserHandler struct {
	commands  CommandHandlers
	queries   QueryHandlers
	mw        *Middleware
	publisher EventPublisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewUserHandler creates a new user handler. publisher may be nil when
// event publishing is disabled.
func NewUserHandler(commands CommandHandlers, queries QueryHandlers, mw *Middleware, publisher EventPublisher) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_service_requests_total",
			Help: "Total number of requests to the user module",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_service_request_duration_seconds",
			Help:    "Duration of user module requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &UserHandler{
		commands:       commands,
		queries:        queries,
		mw:             mw,
		publisher:      publisher,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.commands.Register.Handle(r.Context(), command.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.publish(r.Context(), kafka.UserEvent{
		EventType: kafka.EventTypeUserRegistered,
		UserID:    result.User.ID,
		Email:     result.User.Email,
		Role:      result.User.Role,
	})

	respondJSON(w, http.StatusCreated, result)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.commands.Login.Handle(r.Context(), command.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// RefreshToken handles POST /auth/refresh-token
func (h *UserHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.commands.RefreshToken.Handle(r.Context(), command.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ChangePassword handles PUT /auth/change-password (authenticated caller)
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.commands.ChangePassword.Handle(r.Context(), command.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.queries.GetUser.Handle(r.Context(), query.GetUserQuery{ID: id})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit, _ := strconv.Atoi(params.Get("limit"))
	offset, _ := strconv.Atoi(params.Get("offset"))

	q := query.ListUsersQuery{
		Limit:      limit,
		Offset:     offset,
		Role:       params.Get("role"),
		SearchTerm: params.Get("search"),
	}
	if raw := params.Get("is_active"); raw != "" {
		isActive := raw == "true"
		q.IsActive = &isActive
	}

	result, err := h.queries.ListUsers.Handle(r.Context(), q)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// UpdateProfile handles PUT /users/{id} (admin only)
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.commands.UpdateProfile.Handle(r.Context(), command.UpdateProfileCommand{
		UserID: id,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// UpdateRole handles PUT /users/{id}/role (admin only)
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Role string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.commands.UpdateRole.Handle(r.Context(), command.UpdateRoleCommand{
		UserID: id,
		Role:   req.Role,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.publish(r.Context(), kafka.UserEvent{
		EventType: kafka.EventTypeUserRoleChanged,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
	})

	respondJSON(w, http.StatusOK, user)
}

// ActivateUser handles PUT /users/{id}/activate (admin only)
func (h *UserHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.commands.ActivateUser.Handle(r.Context(), command.ActivateUserCommand{UserID: id})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.publishStatusChanged(r.Context(), user)
	respondJSON(w, http.StatusOK, user)
}

// DeactivateUser handles PUT /users/{id}/deactivate (admin only)
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.commands.DeactivateUser.Handle(r.Context(), command.DeactivateUserCommand{UserID: id})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.publishStatusChanged(r.Context(), user)
	respondJSON(w, http.StatusOK, user)
}

// SuspendUser handles PUT /users/{id}/suspend (admin only)
func (h *UserHandler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.commands.SuspendUser.Handle(r.Context(), command.SuspendUserCommand{UserID: id})
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.publishStatusChanged(r.Context(), user)
	respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id} (admin only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.commands.DeleteUser.Handle(r.Context(), command.DeleteUserCommand{UserID: id}); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// HealthCheck handles GET /health
func (h *UserHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

func (h *UserHandler) publish(ctx context.Context, event kafka.UserEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishUserEvent(ctx, event); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("event_type", event.EventType).
			Str("user_id", event.UserID).
			Msg("Failed to publish user event")
	}
}

func (h *UserHandler) publishStatusChanged(ctx context.Context, user *command.UserDTO) {
	h.publish(ctx, kafka.UserEvent{
		EventType: kafka.EventTypeUserStatusChanged,
		UserID:    user.ID,
		Email:     user.Email,
		Status:    user.Status,
	})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/refresh-token", h.metricsMiddleware("/auth/refresh-token", h.RefreshToken)).Methods("POST")

	// Authenticated routes
	router.HandleFunc("/auth/change-password", h.metricsMiddleware("/auth/change-password", h.mw.Authenticate(h.ChangePassword))).Methods("PUT")
	router.HandleFunc("/users", h.metricsMiddleware("/users", h.mw.Authenticate(h.ListUsers))).Methods("GET")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", h.mw.Authenticate(h.GetUser))).Methods("GET")

	// Admin routes
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", h.mw.RequireAdmin(h.UpdateProfile))).Methods("PUT")
	router.HandleFunc("/users/{id}/role", h.metricsMiddleware("/users/{id}/role", h.mw.RequireAdmin(h.UpdateRole))).Methods("PUT")
	router.HandleFunc("/users/{id}/activate", h.metricsMiddleware("/users/{id}/activate", h.mw.RequireAdmin(h.ActivateUser))).Methods("PUT")
	router.HandleFunc("/users/{id}/deactivate", h.metricsMiddleware("/users/{id}/deactivate", h.mw.RequireAdmin(h.DeactivateUser))).Methods("PUT")
	router.HandleFunc("/users/{id}/suspend", h.metricsMiddleware("/users/{id}/suspend", h.mw.RequireAdmin(h.SuspendUser))).Methods("PUT")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", h.mw.RequireAdmin(h.DeleteUser))).Methods("DELETE")
}

// RegisterHealthCheck registers the health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondAppError maps the error taxonomy onto transport status codes. The
// mapping is exhaustive over kinds; messages are never sniffed.
func respondAppError(w http.ResponseWriter, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		respondError(w, http.StatusBadRequest, apperrors.MessageOf(err))
	case apperrors.KindAuthentication:
		respondError(w, http.StatusUnauthorized, apperrors.MessageOf(err))
	case apperrors.KindAuthorization:
		respondError(w, http.StatusForbidden, apperrors.MessageOf(err))
	case apperrors.KindNotFound:
		respondError(w, http.StatusNotFound, apperrors.MessageOf(err))
	case apperrors.KindConflict:
		respondError(w, http.StatusConflict, apperrors.MessageOf(err))
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

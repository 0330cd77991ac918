package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/expense-tracker/internal/masterdata/usecase/command"
	"github.com/tair/expense-tracker/internal/masterdata/usecase/query"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// AuthMiddleware gates routes on the caller's identity. The user module's
// middleware satisfies this.
type AuthMiddleware interface {
	Authenticate(next http.HandlerFunc) http.HandlerFunc
	RequireAdmin(next http.HandlerFunc) http.HandlerFunc
}

// MasterDataHandler handles HTTP requests for categories, departments
// and vendors
type MasterDataHandler struct {
	categories  *command.CategoryCommandHandler
	departments *command.DepartmentCommandHandler
	vendors     *command.VendorCommandHandler

	categoryQueries   *query.CategoryQueryHandler
	departmentQueries *query.DepartmentQueryHandler
	vendorQueries     *query.VendorQueryHandler

	mw AuthMiddleware

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewMasterDataHandler creates a new master data handler
func NewMasterDataHandler(
	categories *command.CategoryCommandHandler,
	departments *command.DepartmentCommandHandler,
	vendors *command.VendorCommandHandler,
	categoryQueries *query.CategoryQueryHandler,
	departmentQueries *query.DepartmentQueryHandler,
	vendorQueries *query.VendorQueryHandler,
	mw AuthMiddleware,
) *MasterDataHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "masterdata_service_requests_total",
			Help: "Total number of requests to the master data module",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "masterdata_service_request_duration_seconds",
			Help:    "Duration of master data requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &MasterDataHandler{
		categories:        categories,
		departments:       departments,
		vendors:           vendors,
		categoryQueries:   categoryQueries,
		departmentQueries: departmentQueries,
		vendorQueries:     vendorQueries,
		mw:                mw,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *MasterDataHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

func listQuery(r *http.Request) query.ListQuery {
	params := r.URL.Query()
	limit, _ := strconv.Atoi(params.Get("limit"))
	offset, _ := strconv.Atoi(params.Get("offset"))

	q := query.ListQuery{
		Limit:      limit,
		Offset:     offset,
		SearchTerm: params.Get("search"),
	}
	if raw := params.Get("is_active"); raw != "" {
		isActive := raw == "true"
		q.IsActive = &isActive
	}
	return q
}

// CreateCategory handles POST /categories
func (h *MasterDataHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categories.Create(r.Context(), command.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT /categories/{id}
func (h *MasterDataHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categories.Update(r.Context(), command.UpdateCategoryCommand{
		ID:          mux.Vars(r)["id"],
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories/{id}
func (h *MasterDataHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

// ActivateCategory handles PUT /categories/{id}/activate
func (h *MasterDataHandler) ActivateCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.Activate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// DeactivateCategory handles PUT /categories/{id}/deactivate
func (h *MasterDataHandler) DeactivateCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.Deactivate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// GetCategory handles GET /categories/{id}
func (h *MasterDataHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryQueries.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// ListCategories handles GET /categories
func (h *MasterDataHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.categoryQueries.List(r.Context(), listQuery(r))
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CreateDepartment handles POST /departments
func (h *MasterDataHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	department, err := h.departments.Create(r.Context(), command.CreateDepartmentCommand{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, department)
}

// UpdateDepartment handles PUT /departments/{id}
func (h *MasterDataHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	department, err := h.departments.Update(r.Context(), command.UpdateDepartmentCommand{
		ID:          mux.Vars(r)["id"],
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, department)
}

// DeleteDepartment handles DELETE /departments/{id}
func (h *MasterDataHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.departments.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Department deleted successfully"})
}

// ActivateDepartment handles PUT /departments/{id}/activate
func (h *MasterDataHandler) ActivateDepartment(w http.ResponseWriter, r *http.Request) {
	department, err := h.departments.Activate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, department)
}

// DeactivateDepartment handles PUT /departments/{id}/deactivate
func (h *MasterDataHandler) DeactivateDepartment(w http.ResponseWriter, r *http.Request) {
	department, err := h.departments.Deactivate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, department)
}

// GetDepartment handles GET /departments/{id}
func (h *MasterDataHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	department, err := h.departmentQueries.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, department)
}

// ListDepartments handles GET /departments
func (h *MasterDataHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.departmentQueries.List(r.Context(), listQuery(r))
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CreateVendor handles POST /vendors
func (h *MasterDataHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		GSTNumber string `json:"gst_number"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vendor, err := h.vendors.Create(r.Context(), command.CreateVendorCommand{
		Name:      req.Name,
		GSTNumber: req.GSTNumber,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vendor)
}

// UpdateVendor handles PUT /vendors/{id}
func (h *MasterDataHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		GSTNumber string `json:"gst_number"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vendor, err := h.vendors.Update(r.Context(), command.UpdateVendorCommand{
		ID:        mux.Vars(r)["id"],
		Name:      req.Name,
		GSTNumber: req.GSTNumber,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vendor)
}

// DeleteVendor handles DELETE /vendors/{id}
func (h *MasterDataHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	if err := h.vendors.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Vendor deleted successfully"})
}

// ActivateVendor handles PUT /vendors/{id}/activate
func (h *MasterDataHandler) ActivateVendor(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.vendors.Activate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vendor)
}

// DeactivateVendor handles PUT /vendors/{id}/deactivate
func (h *MasterDataHandler) DeactivateVendor(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.vendors.Deactivate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vendor)
}

// GetVendor handles GET /vendors/{id}
func (h *MasterDataHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.vendorQueries.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vendor)
}

// ListVendors handles GET /vendors
func (h *MasterDataHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	result, err := h.vendorQueries.List(r.Context(), listQuery(r))
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// RegisterRoutes registers all master data routes. Writes are admin only;
// reads require any authenticated caller.
func (h *MasterDataHandler) RegisterRoutes(router *mux.Router) {
	h.registerEntity(router, "/categories", entityHandlers{
		create:     h.CreateCategory,
		update:     h.UpdateCategory,
		delete:     h.DeleteCategory,
		activate:   h.ActivateCategory,
		deactivate: h.DeactivateCategory,
		get:        h.GetCategory,
		list:       h.ListCategories,
	})
	h.registerEntity(router, "/departments", entityHandlers{
		create:     h.CreateDepartment,
		update:     h.UpdateDepartment,
		delete:     h.DeleteDepartment,
		activate:   h.ActivateDepartment,
		deactivate: h.DeactivateDepartment,
		get:        h.GetDepartment,
		list:       h.ListDepartments,
	})
	h.registerEntity(router, "/vendors", entityHandlers{
		create:     h.CreateVendor,
		update:     h.UpdateVendor,
		delete:     h.DeleteVendor,
		activate:   h.ActivateVendor,
		deactivate: h.DeactivateVendor,
		get:        h.GetVendor,
		list:       h.ListVendors,
	})
}

type entityHandlers struct {
	create     http.HandlerFunc
	update     http.HandlerFunc
	delete     http.HandlerFunc
	activate   http.HandlerFunc
	deactivate http.HandlerFunc
	get        http.HandlerFunc
	list       http.HandlerFunc
}

func (h *MasterDataHandler) registerEntity(router *mux.Router, base string, handlers entityHandlers) {
	router.HandleFunc(base, h.metricsMiddleware(base, h.mw.RequireAdmin(handlers.create))).Methods("POST")
	router.HandleFunc(base, h.metricsMiddleware(base, h.mw.Authenticate(handlers.list))).Methods("GET")
	router.HandleFunc(base+"/{id}", h.metricsMiddleware(base+"/{id}", h.mw.Authenticate(handlers.get))).Methods("GET")
	router.HandleFunc(base+"/{id}", h.metricsMiddleware(base+"/{id}", h.mw.RequireAdmin(handlers.update))).Methods("PUT")
	router.HandleFunc(base+"/{id}", h.metricsMiddleware(base+"/{id}", h.mw.RequireAdmin(handlers.delete))).Methods("DELETE")
	router.HandleFunc(base+"/{id}/activate", h.metricsMiddleware(base+"/{id}/activate", h.mw.RequireAdmin(handlers.activate))).Methods("PUT")
	router.HandleFunc(base+"/{id}/deactivate", h.metricsMiddleware(base+"/{id}/deactivate", h.mw.RequireAdmin(handlers.deactivate))).Methods("PUT")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

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

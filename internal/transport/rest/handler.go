// Package rest provides HTTP handlers for inventory operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/araddon/dateparse"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/retailkit/inventory/internal/engine"
	inverrors "github.com/retailkit/inventory/internal/errors"
	"github.com/retailkit/inventory/internal/inventory"
	"github.com/retailkit/inventory/pkg/web"
)

type Handler struct {
	engine      engine.Inventory
	validate    *validator.Validate
	logger      *slog.Logger
	catalogPath string
}

// NewHandler creates a new inventory API handler. catalogPath is the
// default file used by save/load when the request supplies no path.
func NewHandler(eng engine.Inventory, logger *slog.Logger, catalogPath string) *Handler {
	return &Handler{
		engine:      eng,
		validate:    validator.New(),
		logger:      logger.With("component", "rest"),
		catalogPath: catalogPath,
	}
}

// RegisterRoutes registers the HTTP routes for the inventory service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/search", h.Search)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Delete("/", h.DeleteByID)
			r.Post("/sell", h.Sell)
			r.Post("/restock", h.Restock)
		})
	})

	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Get("/value", h.TotalValue)
		r.Post("/sweep", h.Sweep)
		r.Post("/save", h.Save)
		r.Post("/load", h.Load)
	})

	r.Get("/healthz", h.HealthCheck)
}

// List returns all products in insertion order. With ?active=1 expired
// grocery products are filtered out without being removed.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var products []inventory.Product
	if r.URL.Query().Get("active") == "1" {
		products = h.engine.ListActive(inventory.Today())
	} else {
		products = h.engine.ListAll()
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(products))
	web.RespondJSON(w, mLogger, http.StatusOK, toResponseList(products))
}

// Search returns products matching a name substring (?name=) or a
// category (?category=). Exactly one of the two must be supplied.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	name := r.URL.Query().Get("name")
	category := r.URL.Query().Get("category")

	switch {
	case name != "" && category == "":
		web.RespondJSON(w, mLogger, http.StatusOK, toResponseList(h.engine.SearchByName(name)))
	case category != "" && name == "":
		cat, err := inventory.ParseCategory(category)
		if err != nil {
			mLogger.WarnContext(r.Context(), "Invalid search category", "category", category)
			web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
			return
		}
		web.RespondJSON(w, mLogger, http.StatusOK, toResponseList(h.engine.SearchByCategory(cat)))
	default:
		web.RespondError(w, mLogger, http.StatusBadRequest, "Exactly one of the 'name' or 'category' query parameters is required")
	}
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.engine.Get(id)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, toResponse(found))
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req productRequest
	if !h.bindJSON(w, r, mLogger, &req) {
		return
	}

	product, err := req.toProduct()
	if err != nil {
		mLogger.WarnContext(r.Context(), "Invalid product payload", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
		return
	}

	added, err := h.engine.AddProduct(product)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", added.ID, "Name", added.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, toResponse(added))
}

// Sell decrements a product's stock. Fails with 409 if the requested
// amount exceeds the current quantity; stock is left unchanged.
func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var req amountRequest
	if !h.bindJSON(w, r, mLogger, &req) {
		return
	}

	updated, err := h.engine.Sell(id, req.Amount)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product sold", "ID", id, "amount", req.Amount, "remaining", updated.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, toResponse(updated))
}

// Restock increments a product's stock.
func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var req amountRequest
	if !h.bindJSON(w, r, mLogger, &req) {
		return
	}

	updated, err := h.engine.Restock(id, req.Amount)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product restocked", "ID", id, "amount", req.Amount, "stock", updated.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, toResponse(updated))
}

// DeleteByID removes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	if _, err := h.engine.RemoveProduct(id); err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// TotalValue returns the catalog-wide sum of price * quantity.
func (h *Handler) TotalValue(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]float64{"total_value": h.engine.TotalValue()})
}

// Sweep removes expired grocery products and returns them. The reference
// date defaults to today when the body supplies none.
func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	ref := inventory.Today()
	if r.ContentLength > 0 {
		var req sweepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.ReferenceDate != "" {
			t, err := dateparse.ParseAny(req.ReferenceDate)
			if err != nil {
				web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Invalid reference_date: %s", req.ReferenceDate))
				return
			}
			ref = inventory.DateOf(t)
		}
	}

	removed := h.engine.RemoveExpired(ref)
	mLogger.InfoContext(r.Context(), "Expired products removed", "count", len(removed), "reference_date", ref.String())
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{"removed": toResponseList(removed)})
}

// Save persists the catalog to the requested path, or to the configured
// catalog file when the body supplies none.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	path, ok := h.parsePath(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.engine.SaveToFile(path); err != nil {
		mLogger.ErrorContext(r.Context(), "Error saving catalog", "path", path, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to save catalog to %s", path))
		return
	}
	mLogger.InfoContext(r.Context(), "Catalog saved", "path", path)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]string{"path": path})
}

// Load replaces the in-memory catalog with the content of the requested
// path. A failed load leaves the current catalog untouched.
func (h *Handler) Load(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	path, ok := h.parsePath(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.engine.LoadFromFile(path); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			mLogger.WarnContext(r.Context(), "Catalog file not found", "path", path)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Catalog file %s not found", path))
		case errors.Is(err, inverrors.ErrCorruptData):
			mLogger.WarnContext(r.Context(), "Catalog file is corrupt", "path", path, "error", err)
			web.RespondError(w, mLogger, http.StatusUnprocessableEntity, err.Error())
		default:
			mLogger.ErrorContext(r.Context(), "Error loading catalog", "path", path, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to load catalog from %s", path))
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Catalog loaded", "path", path)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]string{"path": path})
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// bindJSON decodes the request body into dst and runs struct validation.
// On failure it writes the error response and returns false.
func (h *Handler) bindJSON(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// Extract field-specific errors for the response.
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// parsePath resolves the target file for save/load requests, falling back
// to the configured catalog path.
func (h *Handler) parsePath(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (string, bool) {
	path := h.catalogPath
	if r.ContentLength > 0 {
		var req fileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
			return "", false
		}
		if req.Path != "" {
			path = req.Path
		}
	}
	if path == "" {
		web.RespondError(w, mLogger, http.StatusBadRequest, "No catalog path configured or supplied")
		return "", false
	}
	return path, true
}

// respondDomainError maps domain errors to HTTP status codes.
func (h *Handler) respondDomainError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error) {
	var validationErr *inverrors.ValidationError
	switch {
	case errors.Is(err, inverrors.ErrProductNotFound):
		mLogger.WarnContext(r.Context(), "Product not found", "error", err)
		web.RespondError(w, mLogger, http.StatusNotFound, err.Error())
	case errors.Is(err, inverrors.ErrDuplicateID):
		mLogger.WarnContext(r.Context(), "Duplicate product id", "error", err)
		web.RespondError(w, mLogger, http.StatusConflict, err.Error())
	case errors.Is(err, inverrors.ErrInsufficientStock):
		mLogger.WarnContext(r.Context(), "Insufficient stock", "error", err)
		web.RespondError(w, mLogger, http.StatusConflict, err.Error())
	case errors.As(err, &validationErr):
		mLogger.WarnContext(r.Context(), "Validation failed", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
	default:
		mLogger.ErrorContext(r.Context(), "Unexpected error", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}

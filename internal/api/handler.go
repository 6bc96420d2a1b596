package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"thread-translator/internal/cache"
	apperror "thread-translator/internal/error"
	"thread-translator/internal/service"
)

type Handler struct {
	translator service.Translator
	cacheStore cache.Store
	logger     *zap.Logger
}

// ------------------------------------------------------------------------------------------------------
func NewHandler(translator service.Translator, cacheStore cache.Store, logger *zap.Logger) *Handler {
	return &Handler{
		translator: translator,
		cacheStore: cacheStore,
		logger:     logger,
	}
}

// ------------------------------------------------------------------------------------------------------
func (h *Handler) TranslateHandler(w http.ResponseWriter, r *http.Request) {
	var req service.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		h.sendErrorResponse(w, apperror.NewValidationError("Invalid JSON in request body", err))
		return
	}

	result, err := h.translator.Translate(r.Context(), &req)
	if err != nil {
		h.logger.Error("Translation failed",
			zap.String("error_type", string(apperror.TypeOf(err))),
			zap.Error(err),
		)
		h.sendErrorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if encodeErr := json.NewEncoder(w).Encode(result); encodeErr != nil {
		h.logger.Error("Failed to encode response", zap.Error(encodeErr))
	}
}

// ------------------------------------------------------------------------------------------------------
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		h.logger.Error("Failed to encode health response", zap.Error(err))
	}
}

// ------------------------------------------------------------------------------------------------------
func (h *Handler) CacheStatsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(h.cacheStore.Stats()); err != nil {
		h.logger.Error("Failed to encode cache stats", zap.Error(err))
	}
}

// ------------------------------------------------------------------------------------------------------
func (h *Handler) sendErrorResponse(w http.ResponseWriter, err error) {
	statusCode := apperror.GetHTTPStatusCode(err)
	errorResponse := apperror.NewErrorResponse(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if encodeErr := json.NewEncoder(w).Encode(errorResponse); encodeErr != nil {
		h.logger.Error("Failed to encode error response",
			zap.Error(encodeErr),
			zap.Error(err),
		)
	}
}

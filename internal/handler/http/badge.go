package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/timeboard/timeboard-backend-go/internal/domain/badge"
	"github.com/timeboard/timeboard-backend-go/internal/handler/http/response"
)

type BadgeHandler interface {
	RecordPunch(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ImportEvents(w http.ResponseWriter, r *http.Request)
}

type badgeHandlerImpl struct {
	badgeService badge.Service
}

func NewBadgeHandler(badgeService badge.Service) BadgeHandler {
	return &badgeHandlerImpl{
		badgeService: badgeService,
	}
}

// RecordPunch implements BadgeHandler.
func (h *badgeHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req badge.RecordPunchRequest

	// An empty body means "punch now"
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		slog.Error("Failed to decode punch request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.badgeService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// ImportEvents implements BadgeHandler.
func (h *badgeHandlerImpl) ImportEvents(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("Failed to read import payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.badgeService.ImportEvents(r.Context(), payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Badge events imported", result)
}

// GetHistory implements BadgeHandler.
func (h *badgeHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	filter := badge.HistoryFilter{}

	if page := r.URL.Query().Get("page"); page != "" {
		parsed, err := strconv.Atoi(page)
		if err != nil {
			response.BadRequest(w, "page must be a number", nil)
			return
		}
		filter.Page = parsed
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			response.BadRequest(w, "limit must be a number", nil)
			return
		}
		filter.Limit = parsed
	}

	result, err := h.badgeService.GetHistory(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dfalcao/linkbio/internal/service"
	"github.com/dfalcao/linkbio/internal/transport/http/middleware"
	"github.com/dfalcao/linkbio/pkg/validator"
)

type LinkHandler struct {
	linkService *service.LinkService
}

func NewLinkHandler(linkService *service.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetClaims(r.Context()).UserID
	userID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var input service.LinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateLink(input.Title, input.URL); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	link, err := h.linkService.Create(r.Context(), callerID, userID, input)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Access denied")
		} else {
			slog.Error("create link failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetClaims(r.Context()).UserID
	userID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	links, err := h.linkService.List(r.Context(), callerID, userID)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Access denied")
		} else {
			slog.Error("list links failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, links)
}

func (h *LinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetClaims(r.Context()).UserID
	userID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	linkID, err := parseID(r, "linkId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid link ID")
		return
	}

	var input service.LinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateLink(input.Title, input.URL); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	link, err := h.linkService.Update(r.Context(), callerID, userID, linkID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Access denied")
		case errors.Is(err, service.ErrLinkNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Link not found")
		default:
			slog.Error("update link failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, link)
}

func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetClaims(r.Context()).UserID
	userID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	linkID, err := parseID(r, "linkId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid link ID")
		return
	}

	if err := h.linkService.Delete(r.Context(), callerID, userID, linkID); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Access denied")
		case errors.Is(err, service.ErrLinkNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Link not found")
		default:
			slog.Error("delete link failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Link deleted"})
}

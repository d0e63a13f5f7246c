package handler

import (
	"net/http"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/actor"
	"github.com/mirefen/GloamBot_Go/internal/logger"
	"github.com/mirefen/GloamBot_Go/internal/status"
)

// HandleGetActor returns an adventurer's profile
// @Summary Get adventurer profile
// @Tags actor
// @Produce json
// @Param platform query string true "Platform name"
// @Param platform_id query string true "Platform-specific ID"
// @Success 200 {object} domain.Actor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /actor [get]
func HandleGetActor(svc actor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := GetQueryParam(r, w, "platform")
		if !ok {
			return
		}
		platformID, ok := GetQueryParam(r, w, "platform_id")
		if !ok {
			return
		}

		found, err := svc.FindByPlatformID(r.Context(), platform, platformID)
		if err != nil {
			respondServiceError(w, r, "Get actor", err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

type InventoryResponse struct {
	Items map[string]int `json:"items"`
}

// HandleGetInventory returns an adventurer's loot inventory
// @Summary Get adventurer inventory
// @Tags actor
// @Produce json
// @Param platform query string true "Platform name"
// @Param platform_id query string true "Platform-specific ID"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /actor/inventory [get]
func HandleGetInventory(svc actor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := GetQueryParam(r, w, "platform")
		if !ok {
			return
		}
		platformID, ok := GetQueryParam(r, w, "platform_id")
		if !ok {
			return
		}

		items, err := svc.GetInventory(r.Context(), platform, platformID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{Items: items})
	}
}

type GrantBoostRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Adjustment int    `json:"adjustment"`
	// TTLSeconds bounds how long the grant stays live
	TTLSeconds  int  `json:"ttl_seconds" validate:"required,gt=0"`
	FatedReroll bool `json:"fated_reroll"`
}

// HandleGrantBoost grants a roll boost or a fated reroll to an adventurer.
// Admin-only; exposed behind the API key like everything else.
// @Summary Grant a boost or fated reroll
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GrantBoostRequest true "Grant details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/boost [post]
func HandleGrantBoost(actors actor.Service, boosts status.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GrantBoostRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant boost"); err != nil {
			return
		}

		target, err := actors.FindByPlatformID(r.Context(), req.Platform, req.PlatformID)
		if err != nil {
			respondServiceError(w, r, "Grant boost", err)
			return
		}

		ttl := time.Duration(req.TTLSeconds) * time.Second
		message := "Boost granted"
		if req.FatedReroll {
			boosts.GrantFatedReroll(target.ID, ttl)
			message = "Fated reroll granted"
		} else {
			if req.Adjustment == 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
				return
			}
			boosts.GrantBoost(target.ID, req.Adjustment, ttl)
		}

		log.Info("Status grant issued",
			"actorID", target.ID,
			"adjustment", req.Adjustment,
			"fatedReroll", req.FatedReroll)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: message})
	}
}

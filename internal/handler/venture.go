package handler

import (
	"net/http"

	"github.com/mirefen/GloamBot_Go/internal/domain"
	"github.com/mirefen/GloamBot_Go/internal/logger"
	"github.com/mirefen/GloamBot_Go/internal/venture"
)

type VentureRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Username   string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	LocationID string `json:"location_id" validate:"required,max=100"`
}

type VentureResponse struct {
	Message string                  `json:"message"`
	Outcome domain.EncounterOutcome `json:"outcome"`
	Actor   *domain.Actor           `json:"actor"`
}

// HandleVenture resolves one venture for an adventurer
// @Summary Venture into a location
// @Description Resolve a random encounter at a venture location
// @Tags venture
// @Accept json
// @Produce json
// @Param request body VentureRequest true "Venture details"
// @Success 200 {object} VentureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Cooldown"
// @Failure 500 {object} ErrorResponse
// @Router /venture [post]
func HandleVenture(svc venture.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req VentureRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Venture"); err != nil {
			return
		}

		result, err := svc.HandleVenture(r.Context(), req.Platform, req.PlatformID, req.Username, req.LocationID)
		if err != nil {
			respondServiceError(w, r, "Venture", err)
			return
		}

		log.Info("Venture completed",
			"username", req.Username,
			"location", req.LocationID,
			"kind", result.Outcome.Kind)

		respondJSON(w, http.StatusOK, VentureResponse{
			Message: result.Message,
			Outcome: result.Outcome,
			Actor:   result.Actor,
		})
	}
}

type HealRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Hearts     int    `json:"hearts" validate:"required,gt=0"`
}

type HealResponse struct {
	Message string        `json:"message"`
	Actor   *domain.Actor `json:"actor"`
}

// HandleHeal restores an adventurer's hearts
// @Summary Heal an adventurer
// @Description Restore hearts, reviving a knocked-out adventurer
// @Tags venture
// @Accept json
// @Produce json
// @Param request body HealRequest true "Heal details"
// @Success 200 {object} HealResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Cooldown"
// @Failure 500 {object} ErrorResponse
// @Router /heal [post]
func HandleHeal(svc venture.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req HealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Heal"); err != nil {
			return
		}

		healed, err := svc.HandleHeal(r.Context(), req.Platform, req.PlatformID, req.Hearts)
		if err != nil {
			respondServiceError(w, r, "Heal", err)
			return
		}

		log.Info("Heal completed", "actorID", healed.ID, "hearts", healed.Hearts)

		respondJSON(w, http.StatusOK, HealResponse{
			Message: "Hearts restored",
			Actor:   healed,
		})
	}
}

type LocationsResponse struct {
	Locations map[string]string `json:"locations"`
	GloamMoon bool              `json:"gloam_moon"`
}

// HandleLocations lists venture locations and the current gloam moon state
// @Summary List venture locations
// @Tags venture
// @Produce json
// @Success 200 {object} LocationsResponse
// @Router /venture/locations [get]
func HandleLocations(svc venture.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, LocationsResponse{
			Locations: svc.Locations(),
			GloamMoon: svc.GloamMoonActive(),
		})
	}
}

package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vaqsi1990/cloth-sub002/internal/domain"
	"github.com/vaqsi1990/cloth-sub002/internal/dto"
	"github.com/vaqsi1990/cloth-sub002/internal/service/pricingservice"
	"github.com/vaqsi1990/cloth-sub002/pkg/auth"
	"github.com/vaqsi1990/cloth-sub002/pkg/utils"
)

type Service interface {
	GetRentalPrice(ctx context.Context, productID, days int) (*pricingservice.PriceQuote, error)
	ListTiers(ctx context.Context, productID, userID int, role string) ([]domain.RentalPriceTier, error)
	ReplaceTiers(ctx context.Context, productID, userID int, role string, tiers []domain.RentalPriceTier) error
	DeleteTiers(ctx context.Context, productID, userID int, role string) error
}

type PricingHandler struct {
	pricingService Service
}

func New(pricingService Service) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

func productIDFromURL(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "productID"))
}

// GetRentalPrice godoc
//
//	@Summary		Quote a rental price
//	@Description	Resolve the per-day rate and total for a rental duration against the product's tier set
//	@Tags			Pricing
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Param			days		query		int	true	"Rental duration in days"
//	@Success		200			{object}	dto.RentalPriceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid product id or duration"
//	@Failure		404			{object}	utils.Response	"No tiers for product"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/products/{productID}/rental-price [get]
func (h *PricingHandler) GetRentalPrice(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Parameter days must be an integer")
		return
	}
	h.respondQuote(w, r, productID, days)
}

// PostRentalPrice godoc
//
//	@Summary		Quote a rental price (body variant)
//	@Tags			Pricing
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"Product ID"
//	@Param			request		body		dto.RentalPriceRequestDTO	true	"Rental duration"
//	@Success		200			{object}	dto.RentalPriceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid product id or duration"
//	@Failure		404			{object}	utils.Response	"No tiers for product"
//	@Router			/products/{productID}/rental-price [post]
func (h *PricingHandler) PostRentalPrice(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req dto.RentalPriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.respondQuote(w, r, productID, req.Days)
}

func (h *PricingHandler) respondQuote(w http.ResponseWriter, r *http.Request, productID, days int) {
	quote, err := h.pricingService.GetRentalPrice(r.Context(), productID, days)
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrInvalidDuration):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pricingservice.ErrNoTiers):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RentalPriceResponseDTO{
		PricePerDay: quote.PricePerDay,
		TotalPrice:  quote.TotalPrice,
		Tier: dto.TierDTO{
			MinDays:     quote.Tier.MinDays,
			PricePerDay: quote.Tier.PricePerDay,
		},
		Note: quote.Note,
	})
}

// ListTiers godoc
//
//	@Summary		List rental price tiers
//	@Description	Current tier set for the product, ascending by minDays
//	@Tags			Pricing
//	@Produce		json
//	@Param			productID	path	int	true	"Product ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TierDTO
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Unknown product"
//	@Router			/products/{productID}/rental-prices [get]
func (h *PricingHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	userID, role := identity(r)

	tiers, err := h.pricingService.ListTiers(r.Context(), productID, userID, role)
	if err != nil {
		h.respondManagementError(w, err)
		return
	}

	response := make([]dto.TierDTO, 0, len(tiers))
	for _, tier := range tiers {
		response = append(response, dto.TierDTO{MinDays: tier.MinDays, PricePerDay: tier.PricePerDay})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ReplaceTiers godoc
//
//	@Summary		Replace the tier set
//	@Description	Full replace-all semantics: the old set is deleted and the new set inserted atomically
//	@Tags			Pricing
//	@Accept			json
//	@Param			productID	path	int							true	"Product ID"
//	@Param			request		body	dto.ReplaceTiersRequestDTO	true	"New tier set"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Malformed tier payload"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Unknown product"
//	@Router			/products/{productID}/rental-prices [post]
func (h *PricingHandler) ReplaceTiers(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req dto.ReplaceTiersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tiers := make([]domain.RentalPriceTier, 0, len(req.Tiers))
	for _, tier := range req.Tiers {
		tiers = append(tiers, domain.RentalPriceTier{
			ProductID:   productID,
			MinDays:     tier.MinDays,
			PricePerDay: tier.PricePerDay,
		})
	}
	userID, role := identity(r)

	if err := h.pricingService.ReplaceTiers(r.Context(), productID, userID, role, tiers); err != nil {
		h.respondManagementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Tiers replaced"})
}

// DeleteTiers godoc
//
//	@Summary	Remove all tiers for the product
//	@Tags		Pricing
//	@Param		productID	path	int	true	"Product ID"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Failure	404	{object}	utils.Response	"Unknown product"
//	@Router		/products/{productID}/rental-prices [delete]
func (h *PricingHandler) DeleteTiers(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDFromURL(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	userID, role := identity(r)

	if err := h.pricingService.DeleteTiers(r.Context(), productID, userID, role); err != nil {
		h.respondManagementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Tiers deleted"})
}

func (h *PricingHandler) respondManagementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pricingservice.ErrProductNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, pricingservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, pricingservice.ErrInvalidTiers):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func identity(r *http.Request) (int, string) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(string)
	return userID, role
}

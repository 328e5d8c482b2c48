package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vaqsi1990/cloth-sub002/internal/dto"
	"github.com/vaqsi1990/cloth-sub002/internal/service/adminservice"
	"github.com/vaqsi1990/cloth-sub002/pkg/utils"
)

type Service interface {
	UnblockSeller(ctx context.Context, userID int) error
	SetOrderStatus(ctx context.Context, orderID int, status string) error
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// UnblockSeller godoc
//
//	@Summary	Unblock a seller
//	@Tags		Admin
//	@Param		userID	path	int	true	"Seller user ID"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Unknown user"
//	@Router		/admin/users/{userID}/unblock [post]
func (h *AdminHandler) UnblockSeller(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.adminService.UnblockSeller(r.Context(), userID); err != nil {
		if errors.Is(err, adminservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Seller unblocked"})
}

// SetOrderStatus godoc
//
//	@Summary	Set an order's status
//	@Tags		Admin
//	@Accept		json
//	@Param		orderID	path	int								true	"Order ID"
//	@Param		request	body	dto.SetOrderStatusRequestDTO	true	"New status"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	400	{object}	utils.Response	"Invalid status"
//	@Failure	404	{object}	utils.Response	"Unknown order"
//	@Router		/admin/orders/{orderID}/status [post]
func (h *AdminHandler) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.SetOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.adminService.SetOrderStatus(r.Context(), orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Order status updated"})
}

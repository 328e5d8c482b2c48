package payment

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/vaqsi1990/cloth-sub002/internal/service/paymentservice"
	"github.com/vaqsi1990/cloth-sub002/pkg/utils"
)

// SignatureHeader carries the gateway's base64 RSA signature over the raw body.
const SignatureHeader = "Callback-Signature"

type Service interface {
	HandleCallback(ctx context.Context, rawBody []byte, signature string) error
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// HandleCallback godoc
//
//	@Summary		Payment gateway webhook
//	@Description	Authenticates and processes a gateway callback. Once the payload is authenticated, internal failures are acknowledged with 200 so the gateway does not retry indefinitely.
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			Callback-Signature	header		string	true	"Base64 RSA-SHA256 signature over the raw body"
//	@Success		200					{object}	utils.Response
//	@Failure		400					{object}	utils.Response	"Missing signature or malformed payload"
//	@Failure		401					{object}	utils.Response	"Invalid signature"
//	@Router			/payment-callback [post]
func (h *PaymentHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	err = h.paymentService.HandleCallback(r.Context(), body, r.Header.Get(SignatureHeader))
	switch {
	case err == nil:
	case errors.Is(err, paymentservice.ErrMissingSignature),
		errors.Is(err, paymentservice.ErrMalformedPayload),
		errors.Is(err, paymentservice.ErrUnknownEvent):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, paymentservice.ErrInvalidSignature):
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	default:
		// Authenticated payload, internal failure: ack so the gateway
		// stops retrying, keep the details server-side.
		zap.L().Error("callback processing failed after authentication", zap.Error(err))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "OK"})
}

// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/pkg/errorspkg"
	"github.com/finwise/wallet-tracker/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
	ownerID uuid.UUID
}

// NewHandler returns user handler bound to the demo user.
func NewHandler(us Service, ownerID uuid.UUID) Handler {
	return Handler{
		service: us,
		ownerID: ownerID,
	}
}

type data struct {
	User domain.User `json:"user"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Demo handles http request for the demo user's profile.
func (h *Handler) Demo(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	user, err := h.service.Get(ctx, h.ownerID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{user}})
}

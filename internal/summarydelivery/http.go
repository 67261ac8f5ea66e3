// Package summarydelivery manages delivery layer of balance and summary views.
package summarydelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finwise/wallet-tracker/internal/aggregate"
	"github.com/finwise/wallet-tracker/internal/summaryservice"
	"github.com/finwise/wallet-tracker/pkg/errorspkg"
	"github.com/finwise/wallet-tracker/pkg/web"
)

// Service provides service layer interface needed by summary delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package summarydelivery
type Service interface {
	Balance(ctx context.Context, ownerID uuid.UUID, category aggregate.Category) (aggregate.CategorySplit, error)
	Summarize(ctx context.Context, ownerID uuid.UUID, preset string) (summaryservice.Summary, error)
	Narrative(ctx context.Context, ownerID uuid.UUID, preset string) (string, error)
}

// Handler facilitates summary delivery layer logic.
type Handler struct {
	service Service
	ownerID uuid.UUID
}

// NewHandler returns summary handler bound to the demo user.
func NewHandler(ss Service, ownerID uuid.UUID) Handler {
	return Handler{
		service: ss,
		ownerID: ownerID,
	}
}

type balanceRequest struct {
	Filter string `form:"filter" binding:"omitempty,oneof=income expenditure all"`
}

type dataBalance struct {
	Balance aggregate.CategorySplit `json:"balance"`
}
type responseBalance struct {
	Data dataBalance `json:"data,omitempty"`
}

// Balance handles http request for the balance card: headline totals plus the
// transaction rows listed for the requested category.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req balanceRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	category := aggregate.Category(req.Filter)
	if req.Filter == "" {
		category = aggregate.CategoryAll
	}

	split, err := h.service.Balance(ctx, h.ownerID, category)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseBalance{Data: dataBalance{split}})
}

type summaryRequest struct {
	Period string `form:"period" binding:"omitempty,oneof=1M 3M 6M 1Y 3Y 5Y 10Y"`
}

type dataSummary struct {
	Summary summaryservice.Summary `json:"summary"`
}
type responseSummary struct {
	Data dataSummary `json:"data,omitempty"`
}

// Summary handles http request for the summary page figures.
func (h *Handler) Summary(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req summaryRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	preset := req.Period
	if preset == "" {
		preset = "1M"
	}

	summary, err := h.service.Summarize(ctx, h.ownerID, preset)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseSummary{Data: dataSummary{summary}})
}

type narrativeRequest struct {
	Period string `json:"period" binding:"omitempty,oneof=1M 3M 6M 1Y 3Y 5Y 10Y"`
}

type dataNarrative struct {
	Narrative string `json:"narrative"`
}
type responseNarrative struct {
	Data dataNarrative `json:"data,omitempty"`
}

// Narrative handles http request for the AI-generated summary blurb.
func (h *Handler) Narrative(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req narrativeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	preset := req.Period
	if preset == "" {
		preset = "1M"
	}

	blurb, err := h.service.Narrative(ctx, h.ownerID, preset)
	if err != nil {
		if err == errorspkg.ErrUnavailable {
			gctx.JSON(http.StatusServiceUnavailable, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseNarrative{Data: dataNarrative{blurb}})
}

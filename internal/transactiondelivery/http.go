// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finwise/wallet-tracker/internal/datefilter"
	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/internal/validate"
	"github.com/finwise/wallet-tracker/pkg/errorspkg"
	"github.com/finwise/wallet-tracker/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, in validate.TransactionInput) (domain.Transaction, validate.FieldErrors, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, in validate.TransactionInput) (domain.Transaction, validate.FieldErrors, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, r datefilter.Range) ([]domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
	ownerID uuid.UUID
	now     func() time.Time
}

// NewHandler returns transaction handler bound to the demo user.
func NewHandler(ts Service, ownerID uuid.UUID, now func() time.Time) Handler {
	return Handler{
		service: ts,
		ownerID: ownerID,
		now:     now,
	}
}

type data struct {
	Transaction domain.Transaction `json:"transaction"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type writeRequest struct {
	Type   string `json:"type" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note"`
	Date   string `json:"date"`
}

func (req writeRequest) input() validate.TransactionInput {
	return validate.TransactionInput{
		Kind:       req.Type,
		Amount:     req.Amount,
		Note:       req.Note,
		OccurredAt: req.Date,
	}
}

// Create handles http request to create a transaction.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req writeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
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

	created, fieldErrs, err := h.service.Create(ctx, h.ownerID, req.input())
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	if fieldErrs != nil {
		gctx.JSON(http.StatusUnprocessableEntity, web.Response{Fields: fieldErrs})
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{created}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Update handles http request to overwrite a transaction.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req writeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
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

	id := uuid.MustParse(uri.ID)

	updated, fieldErrs, err := h.service.Update(ctx, id, h.ownerID, req.input())
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if fieldErrs != nil {
		gctx.JSON(http.StatusUnprocessableEntity, web.Response{Fields: fieldErrs})
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{updated}})
}

// Delete handles http request to delete a transaction.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	err := h.service.Delete(ctx, uuid.MustParse(uri.ID))
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

type listRequest struct {
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	MonthRange int    `form:"month_range" binding:"omitempty,min=1"`
	YearRange  int    `form:"year_range" binding:"omitempty,min=1"`
}

type dataTransactions struct {
	Transactions []domain.Transaction `json:"transactions"`
}
type responseTransactions struct {
	Data dataTransactions `json:"data,omitempty"`
}

// List handles http request to list transactions, optionally narrowed by an
// explicit date range or a relative preset. A preset wins over explicit dates.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
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

	r := h.resolveRange(req)

	items, err := h.service.List(ctx, h.ownerID, r)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseTransactions{Data: dataTransactions{items}})
}

func (h *Handler) resolveRange(req listRequest) datefilter.Range {
	switch {
	case req.MonthRange > 0:
		return datefilter.LastMonths(h.now(), req.MonthRange)
	case req.YearRange > 0:
		return datefilter.LastYears(h.now(), req.YearRange)
	}

	var r datefilter.Range

	if req.StartDate != "" {
		start, _ := time.Parse("2006-01-02", req.StartDate)
		r.Start = &start
	}

	if req.EndDate != "" {
		end, _ := time.Parse("2006-01-02", req.EndDate)
		r.End = &end
	}

	return r
}

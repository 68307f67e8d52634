// Package carddelivery manages delivery layer of cash cards.
package carddelivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/cashcard/internal/domain"
	"github.com/go-petr/cashcard/pkg/errorspkg"
	"github.com/go-petr/cashcard/pkg/web"
)

// Service provides service layer interface needed by card delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package carddelivery
type Service interface {
	Create(ctx context.Context, amount decimal.Decimal) (domain.CashCard, error)
	Get(ctx context.Context, id int64) (domain.CashCard, error)
	List(ctx context.Context, page, size *int32, sortField, sortDirection string) ([]domain.CashCard, error)
}

// Handler facilitates card delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns card handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

type createRequest struct {
	// An id field in the request body is deliberately ignored:
	// ids are assigned by the store only.
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// Create handles http request to create a cash card. On success it responds
// with 201, an empty body and a Location header pointing at the new card.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
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

	card, err := h.service.Create(ctx, *req.Amount)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.Header("Location", "/cashcards/"+strconv.FormatInt(card.ID, 10))
	gctx.Status(http.StatusCreated)
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a cash card.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

	card, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrCardNotFound {
			// Empty body on 404 is part of the contract.
			gctx.Status(http.StatusNotFound)
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, card)
}

type listRequest struct {
	Page *int32 `form:"page" binding:"omitempty,min=0"`
	Size *int32 `form:"size" binding:"omitempty,min=1"`
	Sort string `form:"sort"`
}

// List handles http request to list cash cards. The response body is the
// content array alone: pagination mechanics stay hidden from the client.
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

	// The sort parameter is a single "field,direction" pair; a bare
	// "field" leaves the direction to the default policy.
	sortField, sortDirection, _ := strings.Cut(req.Sort, ",")

	cards, err := h.service.List(ctx, req.Page, req.Size, sortField, sortDirection)
	if err != nil {
		switch err {
		case domain.ErrInvalidSortField, domain.ErrInvalidSortDirection:
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, cards)
}

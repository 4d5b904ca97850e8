package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Evaluator is the core entry point the router calls.
type Evaluator interface {
	Evaluate(expr string) (int64, error)
}

type EvaluateRequest struct {
	Expression string `json:"expression"`
}

type EvaluateResponse struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	Expression string     `json:"expression"`
	Result     int64      `json:"result"`
}

type HistoryResponse struct {
	Items []domain.Evaluation `json:"items"`
}

type EvaluateRouter struct {
	e         *echo.Echo
	evaluator Evaluator
	history   storage.History
	maxLength int
}

type EvaluateRouterOption func(*EvaluateRouter)

// WithHistory records every evaluation in h and enables GET /history.
func WithHistory(h storage.History) EvaluateRouterOption {
	return func(r *EvaluateRouter) {
		r.history = h
	}
}

func WithMaxExpressionLength(n int) EvaluateRouterOption {
	return func(r *EvaluateRouter) {
		r.maxLength = n
	}
}

func NewEvaluateRouter(e *echo.Echo, evaluator Evaluator, opts ...EvaluateRouterOption) *EvaluateRouter {
	r := &EvaluateRouter{
		e:         e,
		evaluator: evaluator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *EvaluateRouter) Bind() {
	r.e.GET("/evaluate", r.evaluateQueryHandler)
	r.e.POST("/evaluate", r.evaluateBodyHandler)
	if r.history != nil {
		r.e.GET("/history", r.historyHandler)
	}
}

// evaluateQueryHandler reads expr with path unescaping so an unencoded '+'
// stays an operator instead of becoming a space.
func (r *EvaluateRouter) evaluateQueryHandler(c echo.Context) error {
	expr, err := rawQueryValue(c.Request().URL.RawQuery, "expr")
	if err != nil {
		return apperr.NewValidation("expr is not a valid escaped query value")
	}
	return r.evaluate(c, expr)
}

// rawQueryValue returns the first value of key in rawQuery, decoded with
// url.PathUnescape. A missing key yields "".
func rawQueryValue(rawQuery, key string) (string, error) {
	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		k, v, _ := strings.Cut(pair, "=")
		if name, err := url.PathUnescape(k); err != nil || name != key {
			continue
		}
		return url.PathUnescape(v)
	}
	return "", nil
}

func (r *EvaluateRouter) evaluateBodyHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	return r.evaluate(c, req.Expression)
}

func (r *EvaluateRouter) evaluate(c echo.Context, expr string) error {
	if strings.TrimSpace(expr) == "" {
		return apperr.NewValidation("expression is required")
	}
	if r.maxLength > 0 && len(expr) > r.maxLength {
		return apperr.NewValidation("expression is too long, max " + strconv.Itoa(r.maxLength) + " bytes")
	}

	result, evalErr := r.evaluator.Evaluate(expr)

	ev := domain.Evaluation{Expression: expr, Result: result}
	if evalErr != nil {
		var ee *apperr.ExpressionError
		if !errors.As(evalErr, &ee) {
			return evalErr
		}
		ev.Error = ee.Error()
		ev.Kind = ee.KindName()
	}
	id := r.record(c.Request().Context(), ev)

	if evalErr != nil {
		return evalErr
	}
	return c.JSON(http.StatusOK, EvaluateResponse{ID: id, Expression: expr, Result: result})
}

// record stores ev in the history. Failures are logged and never fail the request.
func (r *EvaluateRouter) record(ctx context.Context, ev domain.Evaluation) *uuid.UUID {
	if r.history == nil {
		return nil
	}
	id, err := r.history.Record(ctx, ev)
	if err != nil {
		slog.Error("Failed to record evaluation", "expression", ev.Expression, "error", err)
		return nil
	}
	return &id
}

func (r *EvaluateRouter) historyHandler(c echo.Context) error {
	limit := storage.DefaultRecentLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return apperr.NewValidation("limit must be a positive integer")
		}
		limit = n
	}

	items, err := r.history.Recent(c.Request().Context(), storage.ClampLimit(limit))
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.Evaluation{}
	}
	return c.JSON(http.StatusOK, HistoryResponse{Items: items})
}

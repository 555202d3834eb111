package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"
)

var ErrRender = errors.New("document rendering failed")

// RenderError - сбой внешнего генератора документа. Данные заказа при этом не затрагиваются.
type RenderError struct {
	OrderID string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("receipt %s: %v (use the printable receipt instead)", e.OrderID, e.Err)
}

func (e *RenderError) Unwrap() []error {
	return []error{ErrRender, e.Err}
}

// DocumentRenderer - внешний генератор документа по снимку заказа
type DocumentRenderer interface {
	Render(ctx context.Context, order models.Order) ([]byte, error)
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pdf-renderer",
		Timeout: 30 * time.Second, // через 30 сек пробуем снова
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// GuardedRenderer - повторные запросы одного и того же документа склеиваются,
// серия сбоев размыкает цепь и дальше сразу предлагается печать из браузера
type GuardedRenderer struct {
	Backend DocumentRenderer
	Breaker *gobreaker.CircuitBreaker
	group   singleflight.Group
}

func NewGuardedRenderer(backend DocumentRenderer) *GuardedRenderer {
	return &GuardedRenderer{Backend: backend, Breaker: InitCircuitBreaker()}
}

func (g *GuardedRenderer) Render(ctx context.Context, order models.Order) ([]byte, error) {
	key := order.ID + "|" + order.Advance.String()
	v, err, _ := g.group.Do(key, func() (interface{}, error) {
		return g.Breaker.Execute(func() (interface{}, error) {
			return g.Backend.Render(ctx, order)
		})
	})
	if err != nil {
		logger.Warnw("Render failed", "order", order.ID, "error", err)
		return nil, &RenderError{OrderID: order.ID, Err: err}
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, &RenderError{OrderID: order.ID, Err: errors.New("renderer returned no document")}
	}
	return data, nil
}

package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/denmor86/ya-stitchmate/internal/storage"
	"github.com/denmor86/ya-stitchmate/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrdersService - репозиторий заказов: коллекция в памяти, зеркалируемая в хранилище после каждого изменения
type OrdersService interface {
	Load(ctx context.Context)
	Create(ctx context.Context, draft models.OrderDraft) (models.Order, error)
	Delete(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string) error
	All() []models.Order
	Get(id string) (models.Order, bool)
}

type Orders struct {
	Storage storage.IStorage
	Now     func() time.Time

	mu     sync.RWMutex
	orders []models.Order
}

// Создание сервиса
func NewOrders(storage storage.IStorage) *Orders {
	return &Orders{Storage: storage, Now: time.Now}
}

// Load - чтение заказов при старте
func (s *Orders) Load(ctx context.Context) {
	var orders []models.Order
	readSlot(ctx, s.Storage, storage.OrdersKey, &orders)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	logger.Info("Orders loaded:", len(orders))
}

// Create - проверяет черновик, добавляет заказ в начало списка и сохраняет коллекцию
func (s *Orders) Create(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	if err := validators.ValidateDraft(draft); err != nil {
		logger.Warn("Order rejected:", err)
		return models.Order{}, err
	}
	id, err := newOrderID()
	if err != nil {
		return models.Order{}, err
	}
	order := BuildOrder(id, draft, s.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Order, 0, len(s.orders)+1)
	next = append(next, order)
	next = append(next, s.orders...)
	if err := s.persist(ctx, next); err != nil {
		return models.Order{}, err
	}
	s.orders = next
	logger.Info("Order created:", order.ID)
	return order, nil
}

// Delete - удаляет заказ; неизвестный id молча игнорируется
func (s *Orders) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		logger.Debug("Delete: order not found", id)
		return nil
	}
	next := slices.Delete(slices.Clone(s.orders), idx, idx+1)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.orders = next
	logger.Info("Order deleted:", id)
	return nil
}

// MarkPaid - аванс становится равным сумме, остаток нулевой; неизвестный id молча игнорируется
func (s *Orders) MarkPaid(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		logger.Debug("MarkPaid: order not found", id)
		return nil
	}
	next := slices.Clone(s.orders)
	next[idx].Advance = next[idx].Total
	next[idx].Remaining = decimal.Zero
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.orders = next
	logger.Info("Order paid:", id)
	return nil
}

// All - копия коллекции, новые заказы первыми
func (s *Orders) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.orders)
}

func (s *Orders) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.orders[idx], true
	}
	return models.Order{}, false
}

func (s *Orders) indexOf(id string) int {
	return slices.IndexFunc(s.orders, func(o models.Order) bool { return o.ID == id })
}

func (s *Orders) persist(ctx context.Context, orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	return writeSlot(ctx, s.Storage, storage.OrdersKey, orders)
}

// BuildOrder - заказ из черновика: суммы, количество, тип и мерки приводятся к хранимому виду
func BuildOrder(id string, draft models.OrderDraft, now time.Time) models.Order {
	garment := models.NormalizeGarment(draft.Type)
	total := ParseAmount(string(draft.Total))
	advance := ParseAmount(string(draft.Advance))

	date := strings.TrimSpace(draft.Date)
	if date == "" {
		date = now.Format(models.DateLayout)
	}

	return models.Order{
		ID:         id,
		Name:       strings.TrimSpace(draft.Name),
		Phone:      strings.TrimSpace(draft.Phone),
		Address:    strings.TrimSpace(draft.Address),
		Num:        validators.ParseQuantity(string(draft.Num)),
		Type:       garment,
		Sizes:      models.CollectSizes(garment, draft.Sizes),
		Total:      total,
		Advance:    advance,
		Remaining:  ComputeRemaining(total, advance),
		Date:       date,
		Due:        strings.TrimSpace(draft.Due),
		Additional: draft.Additional.Normalized(),
		CreatedAt:  now.UTC(),
	}
}

// newOrderID - UUIDv7 упорядочен по времени создания
func newOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate order id: %w", err)
	}
	return "o_" + id.String(), nil
}

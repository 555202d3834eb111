package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/export"
	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/denmor86/ya-stitchmate/internal/services"
	"github.com/denmor86/ya-stitchmate/internal/validators"
	"github.com/go-chi/chi/v5"
)

// GetOrdersHandler - список заказов с фильтром (q) и сортировкой (sort)
func GetOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		list := services.View(s.All(), query.Get("q"), query.Get("sort"))
		writeJSON(w, http.StatusOK, services.Responses(list, time.Now()))
	})
}

// CreateOrderHandler - сохранение заказа и, по желанию, профиля клиента
func CreateOrderHandler(s services.OrdersService, p services.ProfilesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft models.OrderDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			logger.Warn("Invalid request format:", err)
			writeError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		order, err := s.Create(r.Context(), draft)
		if err != nil {
			var verr *validators.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
				return
			}
			logger.Error("Failed to save order:", err)
			writeError(w, http.StatusInternalServerError, "Failed to save order")
			return
		}

		if draft.SaveProfile {
			// заказ уже сохранён, сбой профиля его не отменяет
			if err := p.Upsert(r.Context(), order.Name, services.ProfileFromOrder(order, time.Now())); err != nil {
				logger.Error("Failed to save profile:", err)
			}
		}
		writeJSON(w, http.StatusCreated, order)
	})
}

// GetOrderHandler - заказ целиком для скачивания
func GetOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order, ok := s.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		attachment(w, "application/json", export.OrderFileName(order))
		if err := export.WriteOrderJSON(w, order); err != nil {
			logger.Error("Failed to write order:", err)
		}
	})
}

// DeleteOrderHandler - удаление заказа; неизвестный id не считается ошибкой
func DeleteOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			logger.Error("Failed to delete order:", err)
			writeError(w, http.StatusInternalServerError, "Failed to delete order")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// MarkPaidHandler - отметка полной оплаты
func MarkPaidHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := s.MarkPaid(r.Context(), id); err != nil {
			logger.Error("Failed to mark order paid:", err)
			writeError(w, http.StatusInternalServerError, "Failed to update order")
			return
		}
		if order, ok := s.Get(id); ok {
			writeJSON(w, http.StatusOK, order)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

type remainingResponse struct {
	Total     string `json:"total"`
	Advance   string `json:"advance"`
	Remaining string `json:"remaining"`
}

// RemainingHandler - предпросмотр остатка по мере ввода сумм
func RemainingHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		total := services.ParseAmount(query.Get("total"))
		advance := services.ParseAmount(query.Get("advance"))
		writeJSON(w, http.StatusOK, remainingResponse{
			Total:     total.StringFixed(2),
			Advance:   advance.StringFixed(2),
			Remaining: services.ComputeRemaining(total, advance).StringFixed(2),
		})
	})
}

package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/export"
	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/services"
	"github.com/go-chi/chi/v5"
)

// ReceiptHandler - HTML квитанция; ?print=1 открывает диалог печати
func ReceiptHandler(s services.OrdersService, shopName string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order, ok := s.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		var buf bytes.Buffer
		opts := export.ReceiptOptions{ShopName: shopName, AutoPrint: r.URL.Query().Get("print") == "1"}
		if err := export.WriteReceipt(&buf, order, opts); err != nil {
			logger.Error("Failed to render receipt:", err)
			writeError(w, http.StatusInternalServerError, "Failed to render receipt")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	})
}

// ReceiptPDFHandler - квитанция в PDF. При сбое генератора предлагается печать HTML квитанции.
func ReceiptPDFHandler(s services.OrdersService, renderer export.DocumentRenderer) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order, ok := s.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		data, err := renderer.Render(r.Context(), order)
		if err != nil {
			if errors.Is(err, export.ErrRender) {
				writeError(w, http.StatusBadGateway, err.Error())
				return
			}
			logger.Error("Failed to render pdf:", err)
			writeError(w, http.StatusInternalServerError, "Failed to render receipt")
			return
		}
		attachment(w, "application/pdf", "receipt_"+order.ID+".pdf")
		w.Write(data)
	})
}

// ExportCSVHandler - выгрузка всех заказов в CSV; без заказов отвечает 204
func ExportCSVHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orders := s.All()
		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, orders); err != nil {
			logger.Error("Failed to export csv:", err)
			writeError(w, http.StatusInternalServerError, "Failed to export orders")
			return
		}
		attachment(w, "text/csv; charset=utf-8", export.CSVFileName(time.Now()))
		w.Write(buf.Bytes())
	})
}

// BackupHandler - полная резервная копия заказов и профилей
func BackupHandler(s services.OrdersService, p services.ProfilesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		var buf bytes.Buffer
		if err := export.WriteBackup(&buf, export.NewBackup(s.All(), p.All(), now)); err != nil {
			logger.Error("Failed to build backup:", err)
			writeError(w, http.StatusInternalServerError, "Failed to build backup")
			return
		}
		attachment(w, "application/json", export.BackupFileName(now))
		w.Write(buf.Bytes())
	})
}

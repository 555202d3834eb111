package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/denmor86/ya-stitchmate/internal/services"
	"github.com/go-chi/chi/v5"
)

// GetProfileHandler - профиль постоянного клиента по имени (?name=)
func GetProfileHandler(p services.ProfilesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		profile, ok := p.Lookup(name)
		if !ok {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeJSON(w, http.StatusOK, profile)
	})
}

type prefillResponse struct {
	Draft   models.OrderDraft `json:"draft"`
	Applied bool              `json:"applied"`
}

// PrefillOrderHandler - дополняет черновик заказа данными постоянного клиента по имени.
// Без профиля или без мерок в нём черновик возвращается как есть.
func PrefillOrderHandler(p services.ProfilesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft models.OrderDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			logger.Warn("Invalid request format:", err)
			writeError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		applied := false
		if profile, ok := p.Lookup(draft.Name); ok {
			applied = profile.ApplyTo(&draft)
		}
		writeJSON(w, http.StatusOK, prefillResponse{Draft: draft, Applied: applied})
	})
}

type templateResponse struct {
	Type   string   `json:"type"`
	Fields []string `json:"fields"`
}

// TemplatesHandler - все шаблоны мерок в порядке объявления
func TemplatesHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var response []templateResponse
		for _, t := range models.GarmentTypes() {
			response = append(response, templateResponse{Type: t, Fields: models.SizeTemplate(t)})
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// TemplateHandler - шаблон мерок для типа; неизвестный тип получает шаблон Other
func TemplateHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		garment := models.NormalizeGarment(chi.URLParam(r, "type"))
		writeJSON(w, http.StatusOK, templateResponse{Type: garment, Fields: models.SizeTemplate(garment)})
	})
}

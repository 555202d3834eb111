package services

import (
	"slices"
	"strings"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/models"
)

// Режимы сортировки списка заказов
const (
	SortDateDesc    = "date_desc"
	SortDateAsc     = "date_asc"
	SortBalanceDesc = "balance_desc"
	SortBalanceAsc  = "balance_asc"
)

// View - отфильтрованный и отсортированный список. Входная коллекция не изменяется.
// Фильтр ищет подстроку без учёта регистра в имени, телефоне или адресе.
// Неизвестный режим сортировки обрабатывается как date_desc.
func View(orders []models.Order, filter string, sortMode string) []models.Order {
	filter = strings.ToLower(strings.TrimSpace(filter))

	list := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, filter) {
			list = append(list, o)
		}
	}

	switch sortMode {
	case SortDateAsc:
		slices.SortStableFunc(list, func(a, b models.Order) int { return strings.Compare(a.Date, b.Date) })
	case SortBalanceDesc:
		slices.SortStableFunc(list, func(a, b models.Order) int { return b.Remaining.Cmp(a.Remaining) })
	case SortBalanceAsc:
		slices.SortStableFunc(list, func(a, b models.Order) int { return a.Remaining.Cmp(b.Remaining) })
	default:
		slices.SortStableFunc(list, func(a, b models.Order) int { return strings.Compare(b.Date, a.Date) })
	}
	return list
}

func matches(o models.Order, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Name), filter) ||
		strings.Contains(strings.ToLower(o.Phone), filter) ||
		strings.Contains(strings.ToLower(o.Address), filter)
}

// IsOverdue - срок сдачи задан, строго раньше сегодняшней даты, и есть остаток к оплате
func IsOverdue(o models.Order, now time.Time) bool {
	if o.Due == "" || !o.Remaining.IsPositive() {
		return false
	}
	due, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(o.Due), now.Location())
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	return due.Before(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
}

// Responses - список для выдачи с признаком просрочки, вычисляемым на момент now
func Responses(orders []models.Order, now time.Time) []models.OrderResponse {
	response := make([]models.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, models.OrderResponse{Order: o, Overdue: IsOverdue(o, now)})
	}
	return response
}

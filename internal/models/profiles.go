package models

import "time"

// Profile - последние известные данные постоянного клиента, ключ - имя клиента
type Profile struct {
	Type       string            `json:"type"`
	Sizes      map[string]string `json:"sizes"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Additional Additional        `json:"additional"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// ApplyTo - заполняет черновик заказа из профиля. Пустые поля профиля не затирают введённое.
// Профиль без мерок не применяется, возвращается false.
func (p Profile) ApplyTo(d *OrderDraft) bool {
	if d == nil || p.Sizes == nil {
		return false
	}
	if p.Type != "" {
		d.Type = p.Type
	}
	if p.Phone != "" {
		d.Phone = p.Phone
	}
	if p.Address != "" {
		d.Address = p.Address
	}
	if p.Additional.Has {
		d.Additional = p.Additional.Normalized()
	}
	d.Sizes = CollectSizes(d.Type, p.Sizes)
	return true
}

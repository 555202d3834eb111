package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// суммы в JSON хранятся числами, как в резервных копиях прежней версии
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout - формат дат заказа (дата приёма и срок сдачи)
const DateLayout = "2006-01-02"

// Additional - дополнительные изделия сверх основного
type Additional struct {
	Has   bool `json:"has"`
	Count int  `json:"count"`
}

// Normalized - приводит к согласованному виду: без флага количество всегда 0
func (a Additional) Normalized() Additional {
	if !a.Has || a.Count < 0 {
		return Additional{Has: a.Has}
	}
	return a
}

// Order - модель заказа ателье
type Order struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Num        int               `json:"num"`
	Type       string            `json:"type"`
	Sizes      map[string]string `json:"sizes"`
	Total      decimal.Decimal   `json:"total"`
	Advance    decimal.Decimal   `json:"advance"`
	Remaining  decimal.Decimal   `json:"remaining"`
	Date       string            `json:"date"`
	Due        string            `json:"due"`
	Additional Additional        `json:"additional"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// OrderResponse - заказ для выдачи в списке, с вычисляемым признаком просрочки
type OrderResponse struct {
	Order
	Overdue bool `json:"overdue"`
}

// Input - значение поля формы как его ввёл пользователь. В JSON допускается строка или число.
type Input string

func (i *Input) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = Input(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("input must be a string or a number: %w", err)
	}
	*i = Input(n.String())
	return nil
}

// OrderDraft - данные формы заказа до сохранения
type OrderDraft struct {
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	Num         Input             `json:"num"`
	Type        string            `json:"type"`
	Sizes       map[string]string `json:"sizes"`
	Total       Input             `json:"total"`
	Advance     Input             `json:"advance"`
	Date        string            `json:"date"`
	Due         string            `json:"due"`
	Additional  Additional        `json:"additional"`
	SaveProfile bool              `json:"saveProfile"`
}

package validators

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/go-playground/validator/v10"
)

// ValidationError - ошибка заполнения формы, показывается пользователю
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// draftRules - обязательные поля черновика после нормализации
type draftRules struct {
	Name string `validate:"required"`
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateDraft проверяет черновик заказа. Единственное обязательное поле - имя клиента.
func ValidateDraft(d models.OrderDraft) error {
	rules := draftRules{Name: strings.TrimSpace(d.Name)}
	err := instance().Struct(rules)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Field: "name", Message: "please enter recipient name"}
	}
	return err
}

var quantityPrefix = regexp.MustCompile(`^[+-]?\d+`)

// ParseQuantity разбирает количество изделий по целому префиксу ("3 pcs" даёт 3).
// Нечисловое значение или меньше 1 даёт 1.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(quantityPrefix.FindString(strings.TrimSpace(s)))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

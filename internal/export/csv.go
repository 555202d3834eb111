package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/shopspring/decimal"
)

// CSVHeader - порядок колонок выгрузки
var CSVHeader = []string{"id", "name", "phone", "address", "date", "due", "type", "num", "total", "advance", "remaining", "sizes", "additional"}

var ErrCSVHeader = errors.New("unexpected csv header")

// WriteCSV - одна строка на заказ; экранирование разделителей и кавычек делает encoding/csv
func WriteCSV(w io.Writer, orders []models.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, o := range orders {
		if err := cw.Write(csvRecord(o)); err != nil {
			return fmt.Errorf("failed to write order %s: %w", o.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFileName - имя файла выгрузки с датой
func CSVFileName(now time.Time) string {
	return "stitchmate_orders_" + now.Format(models.DateLayout) + ".csv"
}

func csvRecord(o models.Order) []string {
	return []string{
		o.ID,
		o.Name,
		o.Phone,
		o.Address,
		o.Date,
		o.Due,
		o.Type,
		strconv.Itoa(o.Num),
		o.Total.String(),
		o.Advance.String(),
		o.Remaining.String(),
		joinSizes(o.Type, o.Sizes),
		strconv.FormatBool(o.Additional.Has) + ":" + strconv.Itoa(o.Additional.Count),
	}
}

func joinSizes(garment string, sizes map[string]string) string {
	entries := models.SizeEntries(garment, sizes)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Label+":"+e.Value)
	}
	return strings.Join(parts, "|")
}

// ParseCSV - обратный разбор выгрузки. Мерки возвращаются строками, как и хранятся.
// Принимается и выгрузка без колонки additional.
func ParseCSV(r io.Reader) ([]models.Order, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrCSVHeader
	}
	header := records[0]
	if !slices.Equal(header, CSVHeader) && !slices.Equal(header, CSVHeader[:len(CSVHeader)-1]) {
		return nil, fmt.Errorf("%w: %v", ErrCSVHeader, header)
	}

	orders := make([]models.Order, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", i+2, len(header), len(rec))
		}
		order, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func parseRecord(rec []string) (models.Order, error) {
	num, err := strconv.Atoi(rec[7])
	if err != nil {
		return models.Order{}, fmt.Errorf("invalid num: %w", err)
	}
	amounts := make([]decimal.Decimal, 3)
	for i, field := range rec[8:11] {
		if amounts[i], err = decimal.NewFromString(field); err != nil {
			return models.Order{}, fmt.Errorf("invalid %s: %w", CSVHeader[8+i], err)
		}
	}
	order := models.Order{
		ID:        rec[0],
		Name:      rec[1],
		Phone:     rec[2],
		Address:   rec[3],
		Date:      rec[4],
		Due:       rec[5],
		Type:      rec[6],
		Num:       num,
		Total:     amounts[0],
		Advance:   amounts[1],
		Remaining: amounts[2],
		Sizes:     splitSizes(rec[11]),
	}
	if len(rec) > 12 {
		if order.Additional, err = parseAdditional(rec[12]); err != nil {
			return models.Order{}, err
		}
	}
	return order, nil
}

func splitSizes(s string) map[string]string {
	sizes := map[string]string{}
	if s == "" {
		return sizes
	}
	for _, pair := range strings.Split(s, "|") {
		label, value, _ := strings.Cut(pair, ":")
		sizes[label] = value
	}
	return sizes
}

func parseAdditional(s string) (models.Additional, error) {
	if s == "" {
		return models.Additional{}, nil
	}
	hasStr, countStr, _ := strings.Cut(s, ":")
	has, err := strconv.ParseBool(hasStr)
	if err != nil {
		return models.Additional{}, fmt.Errorf("invalid additional: %w", err)
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return models.Additional{}, fmt.Errorf("invalid additional count: %w", err)
	}
	return models.Additional{Has: has, Count: count}, nil
}

package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/shopspring/decimal"
)

// CurrencySymbol - единственная валюта учёта
const CurrencySymbol = "₹"

// Money - сумма с символом валюты и двумя знаками после запятой
func Money(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(2)
}

// ReceiptOptions - оформление квитанции
type ReceiptOptions struct {
	ShopName  string
	AutoPrint bool
}

type receiptView struct {
	Shop      string
	Order     models.Order
	Sizes     string
	AutoPrint bool
}

// Все пользовательские строки проходят через автоэкранирование html/template.
const receiptHTML = `<!DOCTYPE html>
<html><head>
<meta charset="utf-8">
<title>Receipt - {{.Order.Name}}</title>
<style>
  body{font-family:Arial,Helvetica,sans-serif; padding:20px; color:#111}
  .box{max-width:600px;margin:0 auto;border:1px solid #ddd;padding:16px;border-radius:8px}
  h2{margin:0 0 8px}
  table{width:100%;border-collapse:collapse;margin-top:8px}
  td,th{padding:6px 8px;border-bottom:1px solid #eee;text-align:left}
  .totals{text-align:right;margin-top:12px}
  .muted{color:#666;font-size:13px}
</style>
</head><body>
<div class="box">
  <h2>{{.Shop}} — Receipt</h2>
  <div><strong>{{.Order.Name}}</strong>{{with .Order.Phone}}<br>📞 {{.}}{{end}}{{with .Order.Address}}<br>{{.}}{{end}}</div>
  <div class="muted">Order ID: {{.Order.ID}} • Date: {{.Order.Date}}{{with .Order.Due}} • Due: {{.}}{{end}}</div>
  <hr>
  <table>
    <tr><th>Item</th><th>Type</th><th>Qty</th><th>Amount</th></tr>
    <tr><td>Clothing</td><td>{{.Order.Type}}</td><td>{{.Order.Num}}</td><td>{{money .Order.Total}}</td></tr>
  </table>
  <div class="totals">
    <div>Advance: {{money .Order.Advance}}</div>
    <div><strong>Remaining: {{money .Order.Remaining}}</strong></div>
    <div>Total: {{money .Order.Total}}</div>
  </div>
  <hr>
  <div class="muted">Sizes:</div>
  <pre>{{.Sizes}}</pre>
  {{- if .Order.Additional.Has}}
  <div class="muted">Additional garments:</div>
  <div>{{.Order.Additional.Count}} extra item(s)</div>
  {{- end}}
  <p class="muted">Thank you for your business!</p>
</div>
{{- if .AutoPrint}}
<script>window.onload=function(){window.print();}</script>
{{- end}}
</body></html>
`

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{"money": Money}).Parse(receiptHTML))

// WriteReceipt - HTML квитанция для печати из браузера
func WriteReceipt(w io.Writer, order models.Order, opts ReceiptOptions) error {
	shop := opts.ShopName
	if shop == "" {
		shop = "StitchMate"
	}
	view := receiptView{
		Shop:      shop,
		Order:     order,
		Sizes:     models.FormatSizes(order.Type, order.Sizes),
		AutoPrint: opts.AutoPrint,
	}
	if err := receiptTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	return nil
}

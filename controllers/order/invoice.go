package orderControllers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/orderstore"
)

// Invoice is the printable view of one order: a pure transform, no state
// touched.
type Invoice struct {
	Number     string
	Date       string
	Order      models.Order
	Subtotal   float64
	Debit      float64
	FinalTotal float64
}

// BuildInvoice recomputes the subtotal from the line items rather than
// trusting the stored total, then deducts the debit for the final due.
func BuildInvoice(order models.Order) Invoice {
	subtotal := 0.0
	for _, it := range order.Items {
		subtotal += it.Price * float64(it.Quantity)
	}
	number := order.ID
	if len(number) > 8 {
		number = number[:8]
	}
	return Invoice{
		Number:     strings.ToUpper(number),
		Date:       order.CreatedAt.Format("02/01/2006"),
		Order:      order,
		Subtotal:   subtotal,
		Debit:      order.DebitMoney,
		FinalTotal: subtotal - order.DebitMoney,
	}
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"amount": func(it models.CartItem) float64 { return it.Price * float64(it.Quantity) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<title>Invoice {{.Number}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  @page { size: A4; margin: 50px; }
  body { font-family: Georgia, serif; padding: 40px; color: #1a1a1a; }
  .head { display: flex; justify-content: space-between; margin-bottom: 32px; }
  .brand { font-size: 28px; font-weight: bold; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  th, td { text-align: left; padding: 8px 4px; border-bottom: 1px solid #ddd; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 24px; width: 40%; margin-left: auto; }
  .totals div { display: flex; justify-content: space-between; padding: 4px 0; }
  .totals .due { font-weight: bold; border-top: 2px solid #1a1a1a; }
</style>
</head>
<body>
  <div class="head">
    <div>
      <div class="brand">42 Emperor</div>
      <div>Invoice #{{.Number}}</div>
      <div>Date: {{.Date}}</div>
    </div>
    <div>
      <div><strong>{{.Order.Name}}</strong></div>
      <div>{{.Order.Phone}}</div>
      <div>{{.Order.Address}}</div>
    </div>
  </div>
  <table>
    <tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Amount</th></tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.Name}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{printf "$%.2f" .Price}}</td>
      <td class="num">{{printf "$%.2f" (amount .)}}</td>
    </tr>
    {{end}}
  </table>
  <div class="totals">
    <div><span>Subtotal</span><span>{{printf "$%.2f" .Subtotal}}</span></div>
    <div><span>Debit</span><span>{{printf "-$%.2f" .Debit}}</span></div>
    <div class="due"><span>Total due</span><span>{{printf "$%.2f" .FinalTotal}}</span></div>
  </div>
  {{if .Order.Note}}<p style="margin-top:24px">Note: {{.Order.Note}}</p>{{end}}
</body>
</html>`))

// GET /admin/orders/:orderID/invoice
func RenderInvoice(store *orderstore.Dual) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		orders, _, err := store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}

		for _, o := range orders {
			if o.ID == orderID {
				c.Header("Content-Type", "text/html; charset=utf-8")
				if err := invoiceTemplate.Execute(c.Writer, BuildInvoice(o)); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
				}
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	}
}

package orderControllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/orderstore"
)

var csvHeader = []string{
	"order_id", "created_at", "name", "phone", "address", "note",
	"total", "item_id", "item_name", "item_qty", "item_price",
}

// BuildOrdersCSV flattens orders into one row per line item. Every field is
// double-quoted with embedded quotes doubled. Returns "" when there is
// nothing to export.
func BuildOrdersCSV(orders []models.Order) string {
	if len(orders) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow(&b, csvHeader)
	for _, o := range orders {
		for _, it := range o.Items {
			writeRow(&b, []string{
				o.ID,
				o.CreatedAt.Format(time.RFC3339),
				o.Name,
				o.Phone,
				o.Address,
				o.Note,
				fmt.Sprintf("%.2f", o.Total),
				it.ID,
				it.Name,
				fmt.Sprintf("%d", it.Quantity),
				fmt.Sprintf("%.2f", it.Price),
			})
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// GET /admin/orders/export-csv
func ExportOrdersCSV(store *orderstore.Dual) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, _, err := store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}

		csv := BuildOrdersCSV(orders)
		if csv == "" {
			c.Status(http.StatusNoContent)
			return
		}

		filename := fmt.Sprintf("orders_%d.csv", time.Now().UnixMilli())
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
	}
}

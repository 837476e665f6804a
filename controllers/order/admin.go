package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/orderstore"
)

type saveChangesInput struct {
	Status     *string  `json:"status"`
	Remark     *string  `json:"remark"`
	DebitMoney *float64 `json:"debit_money"`
}

// GET /admin/orders
// plus search params: order_number, name, phone, start_date, end_date, status
// (dates as YYYY-MM-DD). Loads remote-first with the fallback log behind it,
// then filters the loaded set in memory.
func GetOrders(store *orderstore.Dual) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, placement, err := store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}

		criteria := orderstore.Criteria{
			OrderNumber: c.Query("order_number"),
			Name:        c.Query("name"),
			Phone:       c.Query("phone"),
			Status:      c.Query("status"),
		}
		if v := c.Query("start_date"); v != "" {
			start, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
				return
			}
			criteria.StartDate = &start
		}
		if v := c.Query("end_date"); v != "" {
			end, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
				return
			}
			criteria.EndDate = &end
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": orderstore.Filter(orders, criteria),
			"source": placement.String(),
		})
	}
}

// PUT /admin/orders/:orderID
// Builds an edit session from only the fields present in the body; an empty
// body saves nothing. On success the updated order is returned so the
// console can mirror it into its views.
func SaveOrderChanges(store *orderstore.Dual) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var input saveChangesInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var session orderstore.EditSession
		if input.Status != nil {
			status, err := models.MapOrderStatus(*input.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			session.SetStatus(status)
		}
		if input.Remark != nil {
			session.SetRemark(*input.Remark)
		}
		if input.DebitMoney != nil {
			if *input.DebitMoney < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "debit_money cannot be negative"})
				return
			}
			session.SetDebitMoney(*input.DebitMoney)
		}

		if !session.Dirty() {
			c.JSON(http.StatusOK, gin.H{"message": "No changes to save"})
			return
		}

		outcome, err := store.Update(orderID, session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Order updated successfully",
			"order":   outcome.Order,
			"source":  outcome.Placement.String(),
		})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrder(store *orderstore.Dual) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		placement, err := store.Delete(orderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Order deleted successfully",
			"source":  placement.String(),
		})
	}
}

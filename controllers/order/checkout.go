package orderControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/cart"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/orderstore"
)

type checkoutInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

func (in *checkoutInput) validate() string {
	if strings.TrimSpace(in.Name) == "" {
		return "Full name is required"
	}
	if strings.TrimSpace(in.Phone) == "" {
		return "Phone number is required"
	}
	if strings.TrimSpace(in.Address) == "" {
		return "Address is required"
	}
	return ""
}

func generateOrderNumber() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /checkout
// Validation failures abort before anything is persisted and the cart is
// untouched. Past validation the cart is always cleared, whether the order
// landed remotely or in the fallback log.
func Checkout(store *orderstore.Dual, carts *cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		m := carts.Manager(sessionID.(string))

		var input checkoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		items := m.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		order := models.Order{
			OrderNumber: generateOrderNumber(),
			Name:        strings.TrimSpace(input.Name),
			Phone:       strings.TrimSpace(input.Phone),
			Address:     strings.TrimSpace(input.Address),
			Note:        strings.TrimSpace(input.Note),
			Items:       items,
			Total:       m.TotalPrice(),
			Status:      models.OrderStatusPending,
		}

		outcome, err := store.Insert(order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
			return
		}

		m.Clear()

		if outcome.Placement == orderstore.PlacedLocal {
			c.JSON(http.StatusCreated, gin.H{
				"message": "Order saved locally: server insert failed, saved as a fallback",
				"order":   outcome.Order,
			})
			return
		}

		broadcastNewOrder(outcome.Order)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed. Thanks " + outcome.Order.Name + ", your order id is " + outcome.Order.ID,
			"order":   outcome.Order,
		})
	}
}

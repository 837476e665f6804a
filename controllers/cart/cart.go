package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/cart"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

type addItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityInput struct {
	Quantity int `json:"quantity"`
}

func sessionCart(c *gin.Context, carts *cart.Provider) (*cart.Manager, bool) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return carts.Manager(sessionID.(string)), true
}

// GET /cart
func GetCart(carts *cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := sessionCart(c, carts)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":       m.Items(),
			"total_items": m.TotalItems(),
			"total_price": m.TotalPrice(),
		})
	}
}

// POST /cart
// Looks the product up so the cart line snapshots the catalog's current
// name, price, and image. Adding the same product again merges quantities.
func AddToCart(db *gorm.DB, carts *cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := sessionCart(c, carts)
		if !ok {
			return
		}

		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		notice := m.Add(models.CartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			ImageURL: product.ImageURL,
		}, input.Quantity)

		c.JSON(http.StatusOK, gin.H{
			"message":     notice,
			"items":       m.Items(),
			"total_items": m.TotalItems(),
			"total_price": m.TotalPrice(),
		})
	}
}

// PUT /cart/:product_id
func UpdateCartQuantity(carts *cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := sessionCart(c, carts)
		if !ok {
			return
		}

		var input updateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		m.UpdateQuantity(c.Param("product_id"), input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items":       m.Items(),
			"total_items": m.TotalItems(),
			"total_price": m.TotalPrice(),
		})
	}
}

// DELETE /cart/:product_id
func RemoveFromCart(carts *cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := sessionCart(c, carts)
		if !ok {
			return
		}
		m.Remove(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Removed from cart", "items": m.Items()})
	}
}

// DELETE /cart
func ClearCart(carts *cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := sessionCart(c, carts)
		if !ok {
			return
		}
		m.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/MayBaraniKoKo/emperor-gold-catalogue/controllers/cart"
	catalogControllers "github.com/MayBaraniKoKo/emperor-gold-catalogue/controllers/catalog"
	orderControllers "github.com/MayBaraniKoKo/emperor-gold-catalogue/controllers/order"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/middleware"
)

// SetupStorefrontRoutes registers the customer-facing endpoints: catalog
// browsing is open, cart and checkout need a session token.
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Browse Catalog ────────────────
	r.GET("/categories", catalogControllers.GetCategories(deps.DB))
	r.GET("/categories/:id", catalogControllers.GetCategoryByID(deps.DB))
	r.GET("/subcategories", catalogControllers.GetSubcategories(deps.DB))
	r.GET("/products", catalogControllers.GetProducts(deps.DB))
	r.GET("/products/:id", catalogControllers.GetProductByID(deps.DB))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireSession)
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))
		cartGroup.POST("", cartControllers.AddToCart(deps.DB, deps.Carts))
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartQuantity(deps.Carts))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(deps.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
	}

	// ──────────────── Checkout ────────────────
	r.POST("/checkout", middleware.RequireSession, orderControllers.Checkout(deps.Orders, deps.Carts))
}

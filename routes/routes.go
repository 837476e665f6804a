package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/cart"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/orderstore"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/storage"
)

// Deps carries everything the route groups need, wired once in main.
type Deps struct {
	DB      *gorm.DB
	Objects *storage.ObjectStore
	Carts   *cart.Provider
	Orders  *orderstore.Dual
}

// SetupRoutes is the single entry-point that wires up the public storefront,
// auth, and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public storefront: catalog reads, cart, checkout
	SetupStorefrontRoutes(r, deps)

	// Admin console (token-gated)
	SetupAdminRoutes(r, deps)
}

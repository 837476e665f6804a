package routes

import (
	"github.com/gin-gonic/gin"

	catalogControllers "github.com/MayBaraniKoKo/emperor-gold-catalogue/controllers/catalog"
	orderControllers "github.com/MayBaraniKoKo/emperor-gold-catalogue/controllers/order"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the auth gate.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", catalogControllers.CreateCategory(deps.DB, deps.Objects))
			categoryAdmin.PUT("/:id", catalogControllers.UpdateCategory(deps.DB, deps.Objects))
			categoryAdmin.DELETE("/:id", catalogControllers.DeleteCategory(deps.DB, deps.Objects))
		}

		// ─────────── Subcategory Management ───────────
		subcategoryAdmin := adminGroup.Group("/subcategories")
		{
			subcategoryAdmin.POST("", catalogControllers.CreateSubcategory(deps.DB, deps.Objects))
			subcategoryAdmin.PUT("/:id", catalogControllers.UpdateSubcategory(deps.DB, deps.Objects))
			subcategoryAdmin.DELETE("/:id", catalogControllers.DeleteSubcategory(deps.DB, deps.Objects))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", catalogControllers.CreateProduct(deps.DB, deps.Objects))
			productAdmin.PUT("/:id", catalogControllers.UpdateProduct(deps.DB, deps.Objects))
			productAdmin.DELETE("/:id", catalogControllers.DeleteProduct(deps.DB, deps.Objects))
			productAdmin.GET("/export-excel", catalogControllers.ExportProductsToExcel(deps.DB))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetOrders(deps.Orders))
			orderAdmin.PUT("/:orderID", orderControllers.SaveOrderChanges(deps.Orders))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrder(deps.Orders))
			orderAdmin.GET("/export-csv", orderControllers.ExportOrdersCSV(deps.Orders))
			orderAdmin.GET("/:orderID/invoice", orderControllers.RenderInvoice(deps.Orders))
		}
	}

	// Live order feed. Browsers cannot attach an Authorization header to a
	// websocket handshake, so this sits outside the gated group.
	r.GET("/admin/orders-feed", orderControllers.OrderFeedHandler)
}

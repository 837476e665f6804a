package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/storage"
)

const productFolder = "products"

// GET /products?category_id=&subcategory_id=&featured=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Order("display_order ASC")

		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if subcategoryID := c.Query("subcategory_id"); subcategoryID != "" {
			query = query.Where("subcategory_id = ?", subcategoryID)
		}
		if c.Query("featured") == "true" {
			query = query.Where("is_featured = ?", true)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /admin/products
func CreateProduct(db *gorm.DB, objects *storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		categoryID := c.PostForm("category_id")
		priceStr := c.PostForm("price")
		if name == "" || categoryID == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, category_id, and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		product := models.Product{
			CategoryID:    categoryID,
			Name:          name,
			Description:   c.PostForm("description"),
			Price:         price,
			OriginCountry: c.PostForm("origin_country"),
			InStock:       true,
		}
		if v := c.PostForm("subcategory_id"); v != "" {
			product.SubcategoryID = &v
		}
		if v := parseFloatField(c.PostForm("original_price")); v != nil {
			product.OriginalPrice = v
		}
		if v := parseFloatField(c.PostForm("discount")); v != nil {
			product.Discount = *v
		}
		if v := parseFloatField(c.PostForm("alcohol_percentage")); v != nil {
			product.AlcoholPercentage = v
		}
		if v := parseIntField(c.PostForm("volume_ml")); v != nil {
			product.VolumeML = v
		}
		if v := parseIntField(c.PostForm("display_order")); v != nil {
			product.DisplayOrder = *v
		}
		if v := c.PostForm("is_featured"); v != "" {
			product.IsFeatured = v == "true"
		}
		if v := c.PostForm("in_stock"); v != "" {
			product.InStock = v == "true"
		}

		if file, err := c.FormFile("image"); err == nil {
			url, err := objects.Save(c, file, productFolder, storage.ObjectName(file.Filename))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.ImageURL = url
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB, objects *storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("category_id"); v != "" {
			product.CategoryID = v
		}
		if v := c.PostForm("subcategory_id"); v != "" {
			product.SubcategoryID = &v
		}
		if v := c.PostForm("origin_country"); v != "" {
			product.OriginCountry = v
		}
		if v := parseFloatField(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := parseFloatField(c.PostForm("original_price")); v != nil {
			product.OriginalPrice = v
		}
		if v := parseFloatField(c.PostForm("discount")); v != nil {
			product.Discount = *v
		}
		if v := parseFloatField(c.PostForm("alcohol_percentage")); v != nil {
			product.AlcoholPercentage = v
		}
		if v := parseIntField(c.PostForm("volume_ml")); v != nil {
			product.VolumeML = v
		}
		if v := parseIntField(c.PostForm("display_order")); v != nil {
			product.DisplayOrder = *v
		}
		if v := c.PostForm("is_featured"); v != "" {
			product.IsFeatured = v == "true"
		}
		if v := c.PostForm("in_stock"); v != "" {
			product.InStock = v == "true"
		}

		if file, err := c.FormFile("image"); err == nil {
			if product.ImageURL != "" {
				objects.Remove(product.ImageURL)
			}
			url, err := objects.Save(c, file, productFolder, storage.ObjectName(file.Filename))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.ImageURL = url
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB, objects *storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if product.ImageURL != "" {
			objects.Remove(product.ImageURL)
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

func parseFloatField(val string) *float64 {
	if val == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return &f
	}
	return nil
}

func parseIntField(val string) *int {
	if val == "" {
		return nil
	}
	if i, err := strconv.Atoi(val); err == nil {
		return &i
	}
	return nil
}

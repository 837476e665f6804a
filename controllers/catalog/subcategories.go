package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/storage"
)

const subcategoryFolder = "subcategories"

// POST /admin/subcategories
func CreateSubcategory(db *gorm.DB, objects *storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		categoryID := c.PostForm("category_id")
		if name == "" || categoryID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and category_id are required"})
			return
		}

		sub := models.Subcategory{
			CategoryID:  categoryID,
			Name:        name,
			Description: c.PostForm("description"),
		}
		if v := c.PostForm("display_order"); v != "" {
			order, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid display_order"})
				return
			}
			sub.DisplayOrder = order
		}

		if file, err := c.FormFile("image"); err == nil {
			url, err := objects.Save(c, file, subcategoryFolder, storage.ObjectName(file.Filename))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			sub.ImageURL = url
		}

		if err := db.Create(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

// GET /subcategories?category_id=
func GetSubcategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("display_order ASC")
		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var subs []models.Subcategory
		if err := query.Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategories"})
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

// PUT /admin/subcategories/:id
func UpdateSubcategory(db *gorm.DB, objects *storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.Subcategory
		if err := db.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			sub.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			sub.Description = v
		}
		if v := c.PostForm("category_id"); v != "" {
			sub.CategoryID = v
		}
		if v := c.PostForm("display_order"); v != "" {
			if order, err := strconv.Atoi(v); err == nil {
				sub.DisplayOrder = order
			}
		}

		if file, err := c.FormFile("image"); err == nil {
			if sub.ImageURL != "" {
				objects.Remove(sub.ImageURL)
			}
			url, err := objects.Save(c, file, subcategoryFolder, storage.ObjectName(file.Filename))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			sub.ImageURL = url
		}

		if err := db.Save(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subcategory"})
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

// DELETE /admin/subcategories/:id
func DeleteSubcategory(db *gorm.DB, objects *storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.Subcategory
		if err := db.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}

		if sub.ImageURL != "" {
			objects.Remove(sub.ImageURL)
		}

		if err := db.Delete(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subcategory"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
	}
}

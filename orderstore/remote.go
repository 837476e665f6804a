package orderstore

import (
	"gorm.io/gorm"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

// Remote is the server-side orders table. Split out as an interface so the
// fallback policy in Dual can be exercised against a failing stub.
type Remote interface {
	Insert(order *models.Order) error
	Get(id string) (models.Order, error)
	List() ([]models.Order, error)
	Update(id string, changes map[string]any) error
	Delete(id string) error
}

type gormRemote struct {
	db *gorm.DB
}

func NewRemote(db *gorm.DB) Remote {
	return &gormRemote{db: db}
}

func (r *gormRemote) Insert(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *gormRemote) Get(id string) (models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *gormRemote) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormRemote) Update(id string, changes map[string]any) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRemote) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

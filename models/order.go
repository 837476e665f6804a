package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting handling
	OrderStatusProcessing OrderStatus = "processing" // Being prepared for delivery
	OrderStatusCompleted  OrderStatus = "completed"  // Paid and delivered
	OrderStatusDebit      OrderStatus = "debit"      // Delivered with an outstanding balance
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before delivery
)

// MapOrderStatus validates a raw status string against the known set.
func MapOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusCompleted):
		return OrderStatusCompleted, nil
	case string(OrderStatusDebit):
		return OrderStatusDebit, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// CartItem is one product line in a cart. Orders keep the same shape as a
// point-in-time snapshot, so a later price change never rewrites history.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url,omitempty"`
}

// CartItems is stored as a single jsonb column on orders.
type CartItems []CartItem

func (items CartItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *CartItems) Scan(value any) error {
	if value == nil {
		*items = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// Order is the canonical shape used across the remote table and the local
// fallback log. The remote table keeps its own column names (customer_name,
// total_price, ...); the gorm tags own that mapping.
type Order struct {
	ID          string      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber string      `gorm:"column:order_number;uniqueIndex" json:"order_number,omitempty"`
	Name        string      `gorm:"column:customer_name;not null" json:"name"`
	Phone       string      `gorm:"column:customer_phone;not null" json:"phone"`
	Address     string      `gorm:"column:customer_address;not null" json:"address"`
	Note        string      `json:"note,omitempty"`
	Items       CartItems   `gorm:"type:jsonb" json:"items"`
	Total       float64     `gorm:"column:total_price" json:"total"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Remark      string      `json:"remark,omitempty"`
	DebitMoney  float64     `gorm:"column:debit_money;default:0" json:"debit_money"`
	CreatedAt   time.Time   `json:"created_at"`
}

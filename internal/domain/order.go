package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is an order as returned by the marketplace API. The summary
// endpoints (/orders/my-purchases, /orders/my-sales) omit ProductID and
// Seller; the detail endpoint (/orders/{id}) fills them in. Status is owned
// by the remote system and never changed client-side.
type Order struct {
	ID        string      `json:"id"`
	BuyerID   string      `json:"buyer_id,omitempty"`
	ProductID string      `json:"product_id,omitempty"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
	Seller    *User       `json:"users,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type User struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

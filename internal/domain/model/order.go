package model

import "time"

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// ValidOrderStatus reports whether s belongs to the fixed status enum.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// PaymentDependent reports whether reaching s requires a payment precondition.
func (s OrderStatus) PaymentDependent() bool {
	return s == OrderStatusShipped || s == OrderStatusDelivered
}

// PaymentMethod identifies how an order is paid for.
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// Prepaid reports whether the method requires payment before shipment.
func (m PaymentMethod) Prepaid() bool {
	return m != PaymentMethodCOD
}

// Order describes a customer purchase managed by the admin panel.
type Order struct {
	ID            int64
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	TotalPrice    float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem is a purchased line used only for total recomputation.
type OrderItem struct {
	ID       int64
	OrderID  int64
	Quantity int
	Price    float64
}

package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Admins() AdminRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	Events() EventRepository
}

package enum

// ── Group A: State machines (CHECK constrained in DB) ──

const (
	OrderStatusPending          = "PENDING"
	OrderStatusConfirmed        = "CONFIRMED"
	OrderStatusPickedUp         = "PICKED_UP"
	OrderStatusInProcess        = "IN_PROCESS"
	OrderStatusReadyForDelivery = "READY_FOR_DELIVERY"
	OrderStatusDelivered        = "DELIVERED"
	OrderStatusCancelled        = "CANCELLED"
)

const (
	ServiceStatusActive   = "ACTIVE"
	ServiceStatusInactive = "INACTIVE"
)

// ── Group C: Borderline (CHECK constrained in DB) ──

const (
	UserRoleCustomer = "CUSTOMER"
	UserRoleAdmin    = "ADMIN"
)

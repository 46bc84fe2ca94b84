package domain

// Lifecycle statuses shared by users, consumers, sellers and verticals.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDeleted  = "deleted"
)

// Order state machine, in stage order. Fulfilled means delivered or done.
const (
	OrderStatusDraft      = "draft"
	OrderStatusInProgress = "inprogress"
	OrderStatusPending    = "pending"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusDone       = "done"
	OrderStatusCancelled  = "cancelled"
	OrderStatusAbandoned  = "abandoned"
)

// Transaction statuses.
const (
	TransStatusDraft      = "draft"
	TransStatusAuthorized = "authorized"
	TransStatusCaptured   = "captured"
	TransStatusFailed     = "failed"
	TransStatusRefunded   = "refunded"
	TransStatusCancelled  = "cancelled"
)

// Customer segments by lifetime spend.
const (
	SegmentVIP        = "VIP"
	SegmentRegular    = "Regular"
	SegmentOccasional = "Occasional"
	SegmentOneTime    = "One-time"
)

// Seller types.
const (
	SellerTypeVendor     = "vendor"
	SellerTypeAuthorized = "authorized"
)

// IsFulfilled reports whether an order status counts toward consumer,
// seller and commodity rollups.
func IsFulfilled(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusDone
}

// IsPaid reports whether an order status implies a successful payment
// (the order progressed past the payment stage).
func IsPaid(status string) bool {
	switch status {
	case OrderStatusInProgress, OrderStatusShipped, OrderStatusDelivered, OrderStatusDone:
		return true
	}
	return false
}

// IsShippedStage and IsDeliveredStage gate the later lifecycle timestamps.
func IsShippedStage(status string) bool {
	switch status {
	case OrderStatusShipped, OrderStatusDelivered, OrderStatusDone:
		return true
	}
	return false
}

func IsDeliveredStage(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusDone
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the shared identity record. Every user is either a consumer or a
// seller; the role record carries the same id.
type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Phone     string    `db:"phone"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Consumer profile. TotalOrders, TotalSpent, CustomerSegment and
// FirstOrderDate are rollups owned by the aggregation pass; they stay zeroed
// until every order has been generated.
type Consumer struct {
	ID              string          `db:"id"`
	Birthday        time.Time       `db:"birthday"`
	Gender          string          `db:"gender"`
	FirstOrderDate  *time.Time      `db:"first_order_date"`
	TotalOrders     int             `db:"total_orders"`
	TotalSpent      decimal.Decimal `db:"total_spent"`
	CustomerSegment string          `db:"customer_segment"`
}

// Seller profile. RatingAvg, TotalSales and TotalOrders are aggregation
// rollups, same ownership rule as Consumer.
type Seller struct {
	ID           string          `db:"id"`
	Type         string          `db:"type"`
	Introduction string          `db:"introduction"`
	Address      string          `db:"address"`
	City         string          `db:"city"`
	Province     string          `db:"province"`
	Country      string          `db:"country"`
	RatingAvg    decimal.Decimal `db:"rating_avg"`
	TotalSales   decimal.Decimal `db:"total_sales"`
	TotalOrders  int             `db:"total_orders"`
}

// Vertical is a category record. The set is persisted to a master file and
// reloaded on later runs so ids stay stable across generations.
type Vertical struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Status      string `db:"status"`
}

// SellerVertical links a seller to one of its categories (many-to-many).
type SellerVertical struct {
	SellerID   string    `db:"seller_id"`
	VerticalID string    `db:"vertical_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Address is a consumer shipping address. Exactly one address per consumer
// has IsDefault set (the first one generated).
type Address struct {
	ID           string          `db:"id"`
	UserID       string          `db:"user_id"`
	AddressLine1 string          `db:"address_line_1"`
	AddressLine2 string          `db:"address_line_2"`
	City         string          `db:"city"`
	Province     string          `db:"province"`
	Country      string          `db:"country"`
	PostalCode   string          `db:"postal_code"`
	Phone        string          `db:"phone"`
	ReceiverName string          `db:"receiver_name"`
	IsDefault    bool            `db:"is_default"`
	Latitude     decimal.Decimal `db:"latitude"`
	Longitude    decimal.Decimal `db:"longitude"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// Card is a tokenized payment instrument. Token is the SHA-256 of the raw
// number; the raw number itself is never stored.
type Card struct {
	ID         string    `db:"id"`
	ConsumerID string    `db:"consumer_id"`
	Token      string    `db:"tk"`
	Provider   string    `db:"provider"`
	Last4      string    `db:"last4"`
	CardHolder string    `db:"card_holder"`
	ExpYear    int       `db:"exp_year"`
	ExpMonth   int       `db:"exp_month"`
	Status     string    `db:"status"`
	IsDefault  bool      `db:"is_default"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Commodity is a catalog item. VerticalID is always one of the owning
// seller's assigned verticals unless the run executed in degraded mode.
// TotalSold, ReviewCount and RatingAvg are aggregation rollups.
type Commodity struct {
	ID               string          `db:"id"`
	SellerID         string          `db:"seller_id"`
	SKU              string          `db:"sku"`
	Name             string          `db:"name"`
	Price            decimal.Decimal `db:"price"`
	CostPrice        decimal.Decimal `db:"cost_price"`
	Quantity         int             `db:"quantity"`
	ReservedQuantity int             `db:"reserved_quantity"`
	ReorderLevel     int             `db:"reorder_level"`
	ReorderQuantity  int             `db:"reorder_quantity"`
	WeightKg         decimal.Decimal `db:"weight_kg"`
	Description      string          `db:"description"`
	TechnicalInfo    string          `db:"technical_info"`
	GuaranteeInfo    string          `db:"guarantee_info"`
	ManufacturerName string          `db:"manufacturer_name"`
	VerticalID       string          `db:"vertical_id"`
	Status           string          `db:"status"`
	RatingAvg        decimal.Decimal `db:"rating_avg"`
	ReviewCount      int             `db:"review_count"`
	TotalSold        int             `db:"total_sold"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// Order carries a snapshot of the delivery address and the quantized money
// breakdown. Lifecycle timestamps are only set up to the stage the status
// has reached; later-stage pointers stay nil.
type Order struct {
	ID                string          `db:"id"`
	ConsumerID        string          `db:"consumer_id"`
	SellerID          string          `db:"seller_id"`
	Status            string          `db:"status"`
	DeliveryAddress   string          `db:"delivery_address"`
	DeliveryPostal    string          `db:"delivery_postal_code"`
	DeliveryReceiver  string          `db:"delivery_receiver"`
	DeliveryPhone     string          `db:"delivery_phone"`
	DeliveryCity      string          `db:"delivery_city"`
	DeliveryCountry   string          `db:"delivery_country"`
	DeliveryLatitude  decimal.Decimal `db:"delivery_latitude"`
	DeliveryLongitude decimal.Decimal `db:"delivery_longitude"`
	SubtotalAmount    decimal.Decimal `db:"subtotal_amount"`
	TaxAmount         decimal.Decimal `db:"tax_amount"`
	ShippingFee       decimal.Decimal `db:"shipping_fee"`
	DiscountAmount    decimal.Decimal `db:"discount_amount"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	CreatedAt         time.Time       `db:"created_at"`
	ConfirmedAt       *time.Time      `db:"confirmed_at"`
	PaidAt            *time.Time      `db:"paid_at"`
	ShippedAt         *time.Time      `db:"shipped_at"`
	DeliveredAt       *time.Time      `db:"delivered_at"`
	CompletedAt       *time.Time      `db:"completed_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
	DaysToShip        *int            `db:"days_to_ship"`
	DaysToDeliver     *int            `db:"days_to_deliver"`
}

// OrderLine is one commodity position of an order.
// LineTotal = UnitPrice*Quantity - DiscountApplied, quantized to 4 decimals.
type OrderLine struct {
	OrderID         string          `db:"order_id"`
	CommodityID     string          `db:"commodity_id"`
	Quantity        int             `db:"quantity"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	UnitCost        decimal.Decimal `db:"unit_cost"`
	LineTotal       decimal.Decimal `db:"line_total"`
	DiscountApplied decimal.Decimal `db:"discount_applied"`
}

// Transaction is the payment attempt for an order. The card always belongs
// to the order's consumer and Amount equals the order total.
type Transaction struct {
	ID                     string          `db:"id"`
	OrderID                string          `db:"order_id"`
	CardID                 string          `db:"card_id"`
	PaymentMethod          string          `db:"payment_method"`
	TransactionType        string          `db:"transaction_type"`
	Amount                 decimal.Decimal `db:"amount"`
	Status                 string          `db:"status"`
	CreatedAt              time.Time       `db:"created_at"`
	AuthorizedAt           *time.Time      `db:"authorized_at"`
	CompletedAt            *time.Time      `db:"completed_at"`
	GatewayTransactionID   string          `db:"gateway_transaction_id"`
	GatewayResponseCode    string          `db:"gateway_response_code"`
	GatewayResponseMessage string          `db:"gateway_response_message"`
	IPAddress              string          `db:"ip_address"`
	UserAgent              string          `db:"user_agent"`
}

// Review is only ever created for fulfilled orders; Rate is 1..5.
type Review struct {
	ID                 string    `db:"id"`
	OrderID            string    `db:"order_id"`
	CommodityID        string    `db:"commodity_id"`
	ConsumerID         string    `db:"consumer_id"`
	SellerID           string    `db:"seller_id"`
	Rate               int       `db:"rate"`
	Comment            string    `db:"comment"`
	Status             string    `db:"status"`
	IsVerifiedPurchase bool      `db:"is_verified_purchase"`
	HelpfulCount       int       `db:"helpful_count"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
	PublishedAt        time.Time `db:"published_at"`
}

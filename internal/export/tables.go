package export

import (
	"strconv"
	"time"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/pkg/money"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// tableSpec pairs a file with its header and row encoder. The set is
// ordered the way downstream insertion wants the files consumed.
type tableSpec struct {
	file   string
	header []string
	rows   func(ds *domain.Dataset) [][]string
}

var tables = []tableSpec{
	{
		file:   "users.csv",
		header: []string{"id", "username", "phone", "name", "email", "status", "created_at", "updated_at"},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Users))
			for _, u := range ds.Users {
				out = append(out, []string{
					u.ID, u.Username, u.Phone, u.Name, u.Email, u.Status,
					timestamp(u.CreatedAt), timestamp(u.UpdatedAt),
				})
			}
			return out
		},
	},
	{
		file:   "consumers.csv",
		header: []string{"id", "birthday", "gender", "first_order_date", "total_orders", "total_spent", "customer_segment"},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Consumers))
			for _, c := range ds.Consumers {
				out = append(out, []string{
					c.ID, date(c.Birthday), c.Gender, dateOrEmpty(c.FirstOrderDate),
					strconv.Itoa(c.TotalOrders), money.Format(c.TotalSpent), c.CustomerSegment,
				})
			}
			return out
		},
	},
	{
		file:   "sellers.csv",
		header: []string{"id", "type", "introduction", "address", "city", "province", "country", "rating_avg", "total_sales", "total_orders"},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Sellers))
			for _, s := range ds.Sellers {
				out = append(out, []string{
					s.ID, s.Type, s.Introduction, s.Address, s.City, s.Province, s.Country,
					money.FormatRating(s.RatingAvg), money.Format(s.TotalSales), strconv.Itoa(s.TotalOrders),
				})
			}
			return out
		},
	},
	{
		file:   "verticals.csv",
		header: []string{"id", "name", "description", "status"},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Verticals))
			for _, v := range ds.Verticals {
				out = append(out, []string{v.ID, v.Name, v.Description, v.Status})
			}
			return out
		},
	},
	{
		file:   "seller_vertical.csv",
		header: []string{"seller_id", "vertical_id", "created_at", "updated_at"},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.SellerVerticals))
			for _, sv := range ds.SellerVerticals {
				out = append(out, []string{sv.SellerID, sv.VerticalID, timestamp(sv.CreatedAt), timestamp(sv.UpdatedAt)})
			}
			return out
		},
	},
	{
		file: "address_books.csv",
		header: []string{
			"id", "user_id", "address_line_1", "address_line_2", "city", "province", "country",
			"postal_code", "phone", "receiver_name", "is_default", "latitude", "longitude",
			"created_at", "updated_at",
		},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Addresses))
			for _, a := range ds.Addresses {
				out = append(out, []string{
					a.ID, a.UserID, a.AddressLine1, a.AddressLine2, a.City, a.Province, a.Country,
					a.PostalCode, a.Phone, a.ReceiverName, boolean(a.IsDefault),
					a.Latitude.StringFixed(7), a.Longitude.StringFixed(7),
					timestamp(a.CreatedAt), timestamp(a.UpdatedAt),
				})
			}
			return out
		},
	},
	{
		file: "commodities.csv",
		header: []string{
			"id", "seller_id", "sku", "name", "price", "cost_price", "quantity", "reserved_quantity",
			"reorder_level", "reorder_quantity", "weight_kg", "description", "technical_info",
			"guarantee_info", "manufacturer_name", "vertical_id", "status", "rating_avg",
			"review_count", "total_sold", "created_at", "updated_at",
		},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Commodities))
			for _, c := range ds.Commodities {
				out = append(out, []string{
					c.ID, c.SellerID, c.SKU, c.Name, money.Format(c.Price), money.Format(c.CostPrice),
					strconv.Itoa(c.Quantity), strconv.Itoa(c.ReservedQuantity),
					strconv.Itoa(c.ReorderLevel), strconv.Itoa(c.ReorderQuantity),
					money.Format(c.WeightKg), c.Description, c.TechnicalInfo,
					c.GuaranteeInfo, c.ManufacturerName, c.VerticalID, c.Status,
					money.FormatRating(c.RatingAvg), strconv.Itoa(c.ReviewCount), strconv.Itoa(c.TotalSold),
					timestamp(c.CreatedAt), timestamp(c.UpdatedAt),
				})
			}
			return out
		},
	},
	{
		file: "cards.csv",
		header: []string{
			"id", "consumer_id", "tk", "provider", "last4", "card_holder", "exp_year", "exp_month",
			"status", "is_default", "created_at", "updated_at",
		},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Cards))
			for _, c := range ds.Cards {
				out = append(out, []string{
					c.ID, c.ConsumerID, c.Token, c.Provider, c.Last4, c.CardHolder,
					strconv.Itoa(c.ExpYear), strconv.Itoa(c.ExpMonth), c.Status, boolean(c.IsDefault),
					timestamp(c.CreatedAt), timestamp(c.UpdatedAt),
				})
			}
			return out
		},
	},
	{
		file: "orders.csv",
		header: []string{
			"id", "consumer_id", "seller_id", "status", "delivery_address", "delivery_postal_code",
			"delivery_receiver", "delivery_phone", "delivery_city", "delivery_country",
			"delivery_latitude", "delivery_longitude", "subtotal_amount", "tax_amount",
			"shipping_fee", "discount_amount", "total_amount", "created_at", "confirmed_at",
			"paid_at", "shipped_at", "delivered_at", "completed_at", "updated_at",
			"days_to_ship", "days_to_deliver",
		},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Orders))
			for _, o := range ds.Orders {
				out = append(out, []string{
					o.ID, o.ConsumerID, o.SellerID, o.Status, o.DeliveryAddress, o.DeliveryPostal,
					o.DeliveryReceiver, o.DeliveryPhone, o.DeliveryCity, o.DeliveryCountry,
					o.DeliveryLatitude.StringFixed(7), o.DeliveryLongitude.StringFixed(7),
					money.Format(o.SubtotalAmount), money.Format(o.TaxAmount),
					money.Format(o.ShippingFee), money.Format(o.DiscountAmount), money.Format(o.TotalAmount),
					timestamp(o.CreatedAt), timestampOrEmpty(o.ConfirmedAt),
					timestampOrEmpty(o.PaidAt), timestampOrEmpty(o.ShippedAt),
					timestampOrEmpty(o.DeliveredAt), timestampOrEmpty(o.CompletedAt),
					timestamp(o.UpdatedAt), intOrEmpty(o.DaysToShip), intOrEmpty(o.DaysToDeliver),
				})
			}
			return out
		},
	},
	{
		file:   "order_commodities.csv",
		header: []string{"order_id", "commodity_id", "quantity", "unit_price", "unit_cost", "line_total", "discount_applied"},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.OrderLines))
			for _, l := range ds.OrderLines {
				out = append(out, []string{
					l.OrderID, l.CommodityID, strconv.Itoa(l.Quantity),
					money.Format(l.UnitPrice), money.Format(l.UnitCost),
					money.Format(l.LineTotal), money.Format(l.DiscountApplied),
				})
			}
			return out
		},
	},
	{
		file: "transactions.csv",
		header: []string{
			"id", "order_id", "card_id", "payment_method", "transaction_type", "amount", "status",
			"created_at", "authorized_at", "completed_at", "gateway_transaction_id",
			"gateway_response_code", "gateway_response_message", "ip_address", "user_agent",
		},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Transactions))
			for _, t := range ds.Transactions {
				out = append(out, []string{
					t.ID, t.OrderID, t.CardID, t.PaymentMethod, t.TransactionType,
					money.Format(t.Amount), t.Status, timestamp(t.CreatedAt),
					timestampOrEmpty(t.AuthorizedAt), timestampOrEmpty(t.CompletedAt),
					t.GatewayTransactionID, t.GatewayResponseCode, t.GatewayResponseMessage,
					t.IPAddress, t.UserAgent,
				})
			}
			return out
		},
	},
	{
		file: "reviews.csv",
		header: []string{
			"id", "order_id", "commodity_id", "consumer_id", "seller_id", "rate", "comment", "status",
			"is_verified_purchase", "helpful_count", "created_at", "updated_at", "published_at",
		},
		rows: func(ds *domain.Dataset) [][]string {
			out := make([][]string, 0, len(ds.Reviews))
			for _, r := range ds.Reviews {
				out = append(out, []string{
					r.ID, r.OrderID, r.CommodityID, r.ConsumerID, r.SellerID,
					strconv.Itoa(r.Rate), r.Comment, r.Status, boolean(r.IsVerifiedPurchase),
					strconv.Itoa(r.HelpfulCount), timestamp(r.CreatedAt),
					timestamp(r.UpdatedAt), timestamp(r.PublishedAt),
				})
			}
			return out
		},
	},
}

func timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func timestampOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}

func date(t time.Time) string {
	return t.Format(dateLayout)
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func boolean(b bool) string {
	return strconv.FormatBool(b)
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

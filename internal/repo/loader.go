// Package repo loads a generated dataset into PostgreSQL. Tables are
// inserted in foreign-key order, one batch per table.
package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/internal/pg"
)

type Loader struct {
	db pg.Database
}

func New(db pg.Database) *Loader {
	return &Loader{db: db}
}

// Load inserts every table of the dataset. Parents go before children so
// the foreign keys hold at every point of the load.
func (l *Loader) Load(ctx context.Context, ds *domain.Dataset) error {
	steps := []struct {
		table string
		batch *pgx.Batch
	}{
		{"users", l.usersBatch(ds.Users)},
		{"consumers", l.consumersBatch(ds.Consumers)},
		{"sellers", l.sellersBatch(ds.Sellers)},
		{"verticals", l.verticalsBatch(ds.Verticals)},
		{"seller_vertical", l.sellerVerticalsBatch(ds.SellerVerticals)},
		{"address_books", l.addressesBatch(ds.Addresses)},
		{"commodities", l.commoditiesBatch(ds.Commodities)},
		{"cards", l.cardsBatch(ds.Cards)},
		{"orders", l.ordersBatch(ds.Orders)},
		{"order_commodities", l.orderLinesBatch(ds.OrderLines)},
		{"transactions", l.transactionsBatch(ds.Transactions)},
		{"reviews", l.reviewsBatch(ds.Reviews)},
	}

	for _, step := range steps {
		if err := l.flush(ctx, step.table, step.batch); err != nil {
			return err
		}
		zap.L().Info("loaded table", zap.String("table", step.table), zap.Int("rows", step.batch.Len()))
	}
	return nil
}

func (l *Loader) flush(ctx context.Context, table string, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	br := l.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			zap.L().Error("can't insert row", zap.String("table", table), zap.Error(err))
			return err
		}
	}
	return br.Close()
}

func (l *Loader) usersBatch(users []domain.User) *pgx.Batch {
	query := `
        INSERT INTO users (id, username, phone, name, email, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	batch := &pgx.Batch{}
	for _, u := range users {
		batch.Queue(query, u.ID, u.Username, u.Phone, u.Name, u.Email, u.Status, u.CreatedAt, u.UpdatedAt)
	}
	return batch
}

func (l *Loader) consumersBatch(consumers []domain.Consumer) *pgx.Batch {
	query := `
        INSERT INTO consumers (id, birthday, gender, first_order_date, total_orders, total_spent, customer_segment)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	batch := &pgx.Batch{}
	for _, c := range consumers {
		batch.Queue(query, c.ID, c.Birthday, c.Gender, c.FirstOrderDate, c.TotalOrders, c.TotalSpent, c.CustomerSegment)
	}
	return batch
}

func (l *Loader) sellersBatch(sellers []domain.Seller) *pgx.Batch {
	query := `
        INSERT INTO sellers (id, type, introduction, address, city, province, country, rating_avg, total_sales, total_orders)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	batch := &pgx.Batch{}
	for _, s := range sellers {
		batch.Queue(query, s.ID, s.Type, s.Introduction, s.Address, s.City, s.Province, s.Country,
			s.RatingAvg, s.TotalSales, s.TotalOrders)
	}
	return batch
}

func (l *Loader) verticalsBatch(verticals []domain.Vertical) *pgx.Batch {
	query := `
        INSERT INTO verticals (id, name, description, status)
        VALUES ($1, $2, $3, $4)
    `
	batch := &pgx.Batch{}
	for _, v := range verticals {
		batch.Queue(query, v.ID, v.Name, v.Description, v.Status)
	}
	return batch
}

func (l *Loader) sellerVerticalsBatch(links []domain.SellerVertical) *pgx.Batch {
	query := `
        INSERT INTO seller_vertical (seller_id, vertical_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
    `
	batch := &pgx.Batch{}
	for _, sv := range links {
		batch.Queue(query, sv.SellerID, sv.VerticalID, sv.CreatedAt, sv.UpdatedAt)
	}
	return batch
}

func (l *Loader) addressesBatch(addresses []domain.Address) *pgx.Batch {
	query := `
        INSERT INTO address_books (id, user_id, address_line_1, address_line_2, city, province, country,
                                   postal_code, phone, receiver_name, is_default, latitude, longitude,
                                   created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `
	batch := &pgx.Batch{}
	for _, a := range addresses {
		batch.Queue(query, a.ID, a.UserID, a.AddressLine1, a.AddressLine2, a.City, a.Province, a.Country,
			a.PostalCode, a.Phone, a.ReceiverName, a.IsDefault, a.Latitude, a.Longitude,
			a.CreatedAt, a.UpdatedAt)
	}
	return batch
}

func (l *Loader) commoditiesBatch(commodities []domain.Commodity) *pgx.Batch {
	query := `
        INSERT INTO commodities (id, seller_id, sku, name, price, cost_price, quantity, reserved_quantity,
                                 reorder_level, reorder_quantity, weight_kg, description, technical_info,
                                 guarantee_info, manufacturer_name, vertical_id, status, rating_avg,
                                 review_count, total_sold, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
    `
	batch := &pgx.Batch{}
	for _, c := range commodities {
		batch.Queue(query, c.ID, c.SellerID, c.SKU, c.Name, c.Price, c.CostPrice, c.Quantity, c.ReservedQuantity,
			c.ReorderLevel, c.ReorderQuantity, c.WeightKg, c.Description, c.TechnicalInfo,
			c.GuaranteeInfo, c.ManufacturerName, c.VerticalID, c.Status, c.RatingAvg,
			c.ReviewCount, c.TotalSold, c.CreatedAt, c.UpdatedAt)
	}
	return batch
}

func (l *Loader) cardsBatch(cards []domain.Card) *pgx.Batch {
	query := `
        INSERT INTO cards (id, consumer_id, tk, provider, last4, card_holder, exp_year, exp_month,
                           status, is_default, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	batch := &pgx.Batch{}
	for _, c := range cards {
		batch.Queue(query, c.ID, c.ConsumerID, c.Token, c.Provider, c.Last4, c.CardHolder, c.ExpYear, c.ExpMonth,
			c.Status, c.IsDefault, c.CreatedAt, c.UpdatedAt)
	}
	return batch
}

func (l *Loader) ordersBatch(orders []domain.Order) *pgx.Batch {
	query := `
        INSERT INTO orders (id, consumer_id, seller_id, status, delivery_address, delivery_postal_code,
                            delivery_receiver, delivery_phone, delivery_city, delivery_country,
                            delivery_latitude, delivery_longitude, subtotal_amount, tax_amount,
                            shipping_fee, discount_amount, total_amount, created_at, confirmed_at,
                            paid_at, shipped_at, delivered_at, completed_at, updated_at,
                            days_to_ship, days_to_deliver)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
                $21, $22, $23, $24, $25, $26)
    `
	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(query, o.ID, o.ConsumerID, o.SellerID, o.Status, o.DeliveryAddress, o.DeliveryPostal,
			o.DeliveryReceiver, o.DeliveryPhone, o.DeliveryCity, o.DeliveryCountry,
			o.DeliveryLatitude, o.DeliveryLongitude, o.SubtotalAmount, o.TaxAmount,
			o.ShippingFee, o.DiscountAmount, o.TotalAmount, o.CreatedAt, o.ConfirmedAt,
			o.PaidAt, o.ShippedAt, o.DeliveredAt, o.CompletedAt, o.UpdatedAt,
			o.DaysToShip, o.DaysToDeliver)
	}
	return batch
}

func (l *Loader) orderLinesBatch(lines []domain.OrderLine) *pgx.Batch {
	query := `
        INSERT INTO order_commodities (order_id, commodity_id, quantity, unit_price, unit_cost, line_total, discount_applied)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(query, line.OrderID, line.CommodityID, line.Quantity, line.UnitPrice, line.UnitCost,
			line.LineTotal, line.DiscountApplied)
	}
	return batch
}

func (l *Loader) transactionsBatch(transactions []domain.Transaction) *pgx.Batch {
	query := `
        INSERT INTO transactions (id, order_id, card_id, payment_method, transaction_type, amount, status,
                                  created_at, authorized_at, completed_at, gateway_transaction_id,
                                  gateway_response_code, gateway_response_message, ip_address, user_agent)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `
	batch := &pgx.Batch{}
	for _, t := range transactions {
		batch.Queue(query, t.ID, t.OrderID, t.CardID, t.PaymentMethod, t.TransactionType, t.Amount, t.Status,
			t.CreatedAt, t.AuthorizedAt, t.CompletedAt, t.GatewayTransactionID,
			t.GatewayResponseCode, t.GatewayResponseMessage, t.IPAddress, t.UserAgent)
	}
	return batch
}

func (l *Loader) reviewsBatch(reviews []domain.Review) *pgx.Batch {
	query := `
        INSERT INTO reviews (id, order_id, commodity_id, consumer_id, seller_id, rate, comment, status,
                             is_verified_purchase, helpful_count, created_at, updated_at, published_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	batch := &pgx.Batch{}
	for _, r := range reviews {
		batch.Queue(query, r.ID, r.OrderID, r.CommodityID, r.ConsumerID, r.SellerID, r.Rate, r.Comment, r.Status,
			r.IsVerifiedPurchase, r.HelpfulCount, r.CreatedAt, r.UpdatedAt, r.PublishedAt)
	}
	return batch
}

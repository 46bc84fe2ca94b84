package domain

// Dataset is the complete output of one generation run, in foreign-key
// dependency order. DegradedCatalog flags the documented fallback where
// commodities were assigned verticals outside their seller's set because no
// seller had any vertical.
type Dataset struct {
	Users           []User
	Consumers       []Consumer
	Sellers         []Seller
	Verticals       []Vertical
	SellerVerticals []SellerVertical
	Addresses       []Address
	Cards           []Card
	Commodities     []Commodity
	Orders          []Order
	OrderLines      []OrderLine
	Transactions    []Transaction
	Reviews         []Review

	DegradedCatalog bool
}

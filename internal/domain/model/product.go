package model

// Product is the catalog entry orders draw stock from. Only the fields
// the order flow needs are carried here; stock must never go negative.
type Product struct {
	ID            int64
	Name          string
	Price         float64
	Image         string
	StockQuantity int
}

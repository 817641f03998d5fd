package bookstore

// Member is a registered customer. Members are created only through
// seed data; no editing operation exists.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Book is an inventory item. Stock is mutated only by the sale
// engine's decrement step.
type Book struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

// Sale links one member and one book. Total is denormalized: it is
// computed at insert/update time and never recomputed afterwards, so a
// later book price change does not touch past sales.
type Sale struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	MemberID string `json:"member_id"`
	BookID   string `json:"book_id"`
	Quantity int64  `json:"quantity"`
	Discount int64  `json:"discount"`
	Total    int64  `json:"total"`
}

// SaleListItem is the lightweight projection shown when the user picks
// a sale to update or delete.
type SaleListItem struct {
	SaleID     int64  `json:"sale_id"`
	MemberName string `json:"member_name"`
	Date       string `json:"date"`
}

// ReportRow is one entry of the sale report. Seq is the 1-based
// position in the listing, not the sale id.
type ReportRow struct {
	Seq        int    `json:"seq"`
	SaleID     int64  `json:"sale_id"`
	Date       string `json:"date"`
	MemberName string `json:"member_name"`
	BookTitle  string `json:"book_title"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int64  `json:"quantity"`
	Discount   int64  `json:"discount"`
	Total      int64  `json:"total"`
}

package bookstore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference is returned when a sale names an unknown
	// member or book. Both cases collapse into this one error.
	ErrInvalidReference = errors.New("member or book id invalid")

	// ErrSaleNotFound is returned by update and delete when the sale
	// id does not exist.
	ErrSaleNotFound = errors.New("sale not found")
)

// InsufficientStockError reports a requested quantity above the book's
// current stock. It carries the stock so callers can display it.
type InsufficientStockError struct {
	Stock int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock (current stock: %d)", e.Stock)
}

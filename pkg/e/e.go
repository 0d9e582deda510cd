package e

import "fmt"

var (
	// Internal errors
	ErrTransactionNotFound = fmt.Errorf("transaction not found")
	ErrEmptyCatalog        = fmt.Errorf("catalog is empty")
	ErrInternalServerError = fmt.Errorf("internal server error")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidTopK      = fmt.Errorf("k must be a positive integer")
	ErrInvalidBins      = fmt.Errorf("bins must be a positive integer")
	ErrInvalidTopBy     = fmt.Errorf("top metric must be one of: value, rating")
	ErrInvalidRating    = fmt.Errorf("rating must be between 0 and 5")
	ErrInvalidDiscount  = fmt.Errorf("discount must be between 0 and 100")
	ErrUnknownCategory  = fmt.Errorf("unknown category")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
)

// Wrap wraps an error with a context message.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

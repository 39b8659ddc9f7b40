// Package queries contains read operations against the database.
// Query handlers bypass the domain model and issue SQL directly, returning
// read models shaped for the caller. This is the read side of the CQRS split.
package queries

const (
	// DefaultPageSize is used when the caller does not specify a page size.
	DefaultPageSize = 20

	// MaxPageSize caps the page size a caller can request.
	MaxPageSize = 100
)

// Page is a normalized pagination request. Page numbers start at 1.
type Page struct {
	number int
	size   int
}

// NewPage normalizes raw pagination input: non-positive numbers become the
// first page, non-positive sizes become DefaultPageSize, and oversized
// requests are capped at MaxPageSize.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{number: number, size: size}
}

// Number returns the 1-based page number.
func (p Page) Number() int {
	return p.number
}

// Size returns the page size.
func (p Page) Size() int {
	return p.size
}

// Offset returns the row offset for SQL LIMIT/OFFSET pagination.
func (p Page) Offset() int {
	return (p.number - 1) * p.size
}

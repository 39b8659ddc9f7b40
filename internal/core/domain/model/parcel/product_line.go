package parcel

import (
	"errors"
	"fmt"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

// ErrProductLineIsNotConstructed is returned when a ProductLine was not
// created through NewProductLine.
var ErrProductLineIsNotConstructed = errors.New("ProductLine must be created via NewProductLine constructor")

// ProductLine associates a product with a parcel: how many units are packed
// and at what unit price. Lines are removed together with their parcel.
type ProductLine struct {
	productID kernel.UUID
	quantity  int
	unitPrice float64
	addedAt   time.Time

	isConstructed bool
}

// NewProductLine creates a product association for a parcel.
// Quantity must be positive; the unit price must not be negative.
func NewProductLine(productID kernel.UUID, quantity int, unitPrice float64, addedAt time.Time) (ProductLine, error) {
	if err := productID.Validate(); err != nil {
		return ProductLine{}, err
	}
	if quantity <= 0 {
		return ProductLine{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return ProductLine{}, errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%f is negative", unitPrice))
	}

	return ProductLine{
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		addedAt:       addedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the line was created through NewProductLine.
func (l ProductLine) Validate() error {
	if !l.isConstructed {
		return ErrProductLineIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (l ProductLine) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the number of packed units.
func (l ProductLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l ProductLine) UnitPrice() float64 {
	return l.unitPrice
}

// AddedAt returns when the line was attached to the parcel.
func (l ProductLine) AddedAt() time.Time {
	return l.addedAt
}

// Package client contains the sending and receiving parties of a shipment.
// Both are plain reference entities: the lifecycle engine only resolves them
// by identifier and reads their display data.
package client

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

var (
	// ErrSenderIsNotConstructed is returned when a Sender was not created
	// through NewSender.
	ErrSenderIsNotConstructed = errors.New("Sender must be created via NewSender constructor")

	// ErrRecipientIsNotConstructed is returned when a Recipient was not
	// created through NewRecipient.
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")
)

// contact holds the fields shared by senders and recipients.
type contact struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string

	isConstructed bool
}

func newContact(id kernel.UUID, name, email, phone, address string) (contact, error) {
	if err := id.Validate(); err != nil {
		return contact{}, err
	}
	if name == "" {
		return contact{}, errs.NewValueIsRequiredError("name")
	}

	return contact{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		address:       address,
		isConstructed: true,
	}, nil
}

// Sender is the client shipping a parcel.
type Sender struct {
	contact
}

// NewSender creates a sender. The name is required; contact details are
// optional free text.
func NewSender(id kernel.UUID, name, email, phone, address string) (*Sender, error) {
	c, err := newContact(id, name, email, phone, address)
	if err != nil {
		return nil, err
	}
	return &Sender{contact: c}, nil
}

// RestoreSender reconstructs a sender from persistence.
func RestoreSender(id kernel.UUID, name, email, phone, address string) (*Sender, error) {
	return NewSender(id, name, email, phone, address)
}

// Validate ensures the Sender instance was properly constructed.
func (s *Sender) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSenderIsNotConstructed
	}
	return nil
}

// Recipient is the party a parcel is delivered to.
type Recipient struct {
	contact
}

// NewRecipient creates a recipient. The name is required; contact details
// are optional free text.
func NewRecipient(id kernel.UUID, name, email, phone, address string) (*Recipient, error) {
	c, err := newContact(id, name, email, phone, address)
	if err != nil {
		return nil, err
	}
	return &Recipient{contact: c}, nil
}

// RestoreRecipient reconstructs a recipient from persistence.
func RestoreRecipient(id kernel.UUID, name, email, phone, address string) (*Recipient, error) {
	return NewRecipient(id, name, email, phone, address)
}

// Validate ensures the Recipient instance was properly constructed.
func (r *Recipient) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipientIsNotConstructed
	}
	return nil
}

// ID returns the party's unique identifier.
func (c *contact) ID() kernel.UUID {
	return c.id
}

// Name returns the party's display name.
func (c *contact) Name() string {
	return c.name
}

// Email returns the party's email address, which may be empty.
func (c *contact) Email() string {
	return c.email
}

// Phone returns the party's phone number, which may be empty.
func (c *contact) Phone() string {
	return c.phone
}

// Address returns the party's postal address, which may be empty.
func (c *contact) Address() string {
	return c.address
}

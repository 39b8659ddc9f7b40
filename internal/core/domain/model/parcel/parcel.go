package parcel

import (
	"errors"
	"fmt"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// CreatedComment is the audit comment recorded for the initial history entry.
const CreatedComment = "Parcel created"

// Parcel is the aggregate root for a tracked shipment. It manages the
// parcel's lifecycle from registration through courier assignment and status
// changes to delivery or cancellation.
//
// Invariants maintained by the aggregate:
//   - weight is positive
//   - status, priority, destination city, sender, recipient, and zone are
//     always present
//   - the creation timestamp is set exactly once and never mutated
//   - every mutation appends exactly one history entry; the history is
//     append-only and ordered by non-decreasing timestamp
type Parcel struct {
	id              kernel.UUID
	description     string
	weight          float64
	status          Status
	priority        Priority
	destinationCity string
	createdAt       time.Time
	courierID       *kernel.UUID
	senderID        kernel.UUID
	recipientID     kernel.UUID
	zoneID          kernel.UUID
	products        []ProductLine
	history         []HistoryEntry

	isConstructed bool
}

// NewParcel registers a new parcel. The status is forced to StatusCreated and
// the first history entry is recorded at createdAt with CreatedComment.
// The description is optional free text; every other argument is validated.
func NewParcel(
	id kernel.UUID,
	description string,
	weight float64,
	priority Priority,
	destinationCity string,
	senderID, recipientID, zoneID kernel.UUID,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        StatusCreated,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDescription(description),
		p.setWeight(weight),
		p.setPriority(priority),
		p.setDestinationCity(destinationCity),
		p.setSenderID(senderID),
		p.setRecipientID(recipientID),
		p.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	if err := p.recordHistory(StatusCreated, CreatedComment, createdAt); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence without recording any
// history. History entries must be supplied in non-decreasing timestamp order.
func RestoreParcel(
	id kernel.UUID,
	description string,
	weight float64,
	status Status,
	priority Priority,
	destinationCity string,
	senderID, recipientID, zoneID kernel.UUID,
	courierID *kernel.UUID,
	createdAt time.Time,
	products []ProductLine,
	history []HistoryEntry,
) (*Parcel, error) {
	p := &Parcel{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDescription(description),
		p.setWeight(weight),
		p.setStatus(status),
		p.setPriority(priority),
		p.setDestinationCity(destinationCity),
		p.setSenderID(senderID),
		p.setRecipientID(recipientID),
		p.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cid := *courierID
		p.courierID = &cid
	}

	for _, line := range products {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		p.products = append(p.products, line)
	}

	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		p.history = append(p.history, entry)
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
// Call it when reconstructing parcels from persistence.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Description returns the free-text description.
func (p *Parcel) Description() string {
	return p.description
}

// Weight returns the parcel's weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// Status returns the current delivery status.
func (p *Parcel) Status() Status {
	return p.status
}

// Priority returns the handling priority.
func (p *Parcel) Priority() Priority {
	return p.priority
}

// DestinationCity returns the destination city.
func (p *Parcel) DestinationCity() string {
	return p.destinationCity
}

// CreatedAt returns the immutable creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// Courier returns the assigned courier's ID, or nil when unassigned.
func (p *Parcel) Courier() *kernel.UUID {
	return p.courierID
}

// SenderID returns the sending client's identifier.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// RecipientID returns the recipient's identifier.
func (p *Parcel) RecipientID() kernel.UUID {
	return p.recipientID
}

// ZoneID returns the delivery zone's identifier.
func (p *Parcel) ZoneID() kernel.UUID {
	return p.zoneID
}

// Products returns a copy of the parcel's product lines in insertion order.
func (p *Parcel) Products() []ProductLine {
	return append([]ProductLine(nil), p.products...)
}

// History returns a copy of the audit trail in recording order
// (non-decreasing timestamps).
func (p *Parcel) History() []HistoryEntry {
	return append([]HistoryEntry(nil), p.history...)
}

// AddProductLine attaches a product association to the parcel.
// Lines are kept in insertion order.
func (p *Parcel) AddProductLine(line ProductLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	p.products = append(p.products, line)
	return nil
}

// AssignCourier assigns the parcel to a courier and records a history entry
// describing the assignment. The status is not altered. Re-assignment is
// permitted and overwrites the previous courier.
func (p *Parcel) AssignCourier(courierID kernel.UUID, courierName string, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	cid := courierID
	p.courierID = &cid
	return p.recordHistory(p.status, "Parcel assigned to courier: "+courierName, at)
}

// ChangeStatus applies a status transition through the status machine and
// records a history entry with the caller-supplied comment (may be empty).
func (p *Parcel) ChangeStatus(next Status, comment string, at time.Time) error {
	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}

	p.status = newStatus
	return p.recordHistory(newStatus, comment, at)
}

// UpdateDetails replaces the mutable descriptive fields. Status, creation
// timestamp, references, and history are untouched; no history entry is
// recorded for detail edits.
func (p *Parcel) UpdateDetails(description string, weight float64, priority Priority, destinationCity string) error {
	return errors.Join(
		p.setDescription(description),
		p.setWeight(weight),
		p.setPriority(priority),
		p.setDestinationCity(destinationCity),
	)
}

// recordHistory appends one audit entry. The timestamp is clamped so it is
// never earlier than the previous entry's, keeping the trail non-decreasing
// even if the wall clock steps backwards.
func (p *Parcel) recordHistory(status Status, comment string, at time.Time) error {
	if n := len(p.history); n > 0 && at.Before(p.history[n-1].RecordedAt()) {
		at = p.history[n-1].RecordedAt()
	}

	entry, err := NewHistoryEntry(kernel.NewUUID(), p.id, status, at, comment)
	if err != nil {
		return err
	}

	p.history = append(p.history, entry)
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setDescription(description string) error {
	p.description = description
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%f is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Parcel) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	p.priority = priority
	return nil
}

func (p *Parcel) setDestinationCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("destinationCity")
	}
	p.destinationCity = city
	return nil
}

func (p *Parcel) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderId", err)
	}
	p.senderID = id
	return nil
}

func (p *Parcel) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}
	p.recipientID = id
	return nil
}

func (p *Parcel) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("zoneId", err)
	}
	p.zoneID = id
	return nil
}

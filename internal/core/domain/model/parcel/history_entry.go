package parcel

import (
	"errors"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is one immutable audit record of a parcel's state at a point
// in time. Entries are append-only: they are never updated, reordered, or
// reassigned to another parcel. The recorded timestamp is server-assigned
// and non-decreasing per parcel.
type HistoryEntry struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	status     Status
	recordedAt time.Time
	comment    string

	isConstructed bool
}

// NewHistoryEntry creates an audit record for the given parcel and status.
// The comment is free text and may be empty.
func NewHistoryEntry(id, parcelID kernel.UUID, status Status, recordedAt time.Time, comment string) (HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		status.Validate(),
	); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		recordedAt:    recordedAt,
		comment:       comment,
		isConstructed: true,
	}, nil
}

// RestoreHistoryEntry reconstructs an entry from persistence.
// Validation matches NewHistoryEntry; the timestamp is taken as stored.
func RestoreHistoryEntry(id, parcelID kernel.UUID, status Status, recordedAt time.Time, comment string) (HistoryEntry, error) {
	return NewHistoryEntry(id, parcelID, status, recordedAt, comment)
}

// Validate ensures the entry was created through a constructor.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h HistoryEntry) ID() kernel.UUID {
	return h.id
}

// ParcelID returns the identifier of the parcel this entry belongs to.
func (h HistoryEntry) ParcelID() kernel.UUID {
	return h.parcelID
}

// Status returns the parcel status recorded by this entry.
func (h HistoryEntry) Status() Status {
	return h.status
}

// RecordedAt returns the server-assigned timestamp of the entry.
func (h HistoryEntry) RecordedAt() time.Time {
	return h.recordedAt
}

// Comment returns the free-text comment, which may be empty.
func (h HistoryEntry) Comment() string {
	return h.comment
}

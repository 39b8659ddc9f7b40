// Package parcel contains the Parcel aggregate and its building blocks:
// the delivery status machine, priority levels, the append-only delivery
// history, product line associations, and the sparse search criteria used
// to query the parcel store.
//
// The aggregate enforces the lifecycle invariants: weight is positive,
// required references are always present, the creation timestamp is set
// exactly once, and every mutation appends exactly one history entry whose
// timestamp is never earlier than the previous one.
package parcel

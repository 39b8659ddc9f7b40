// Package kernel contains shared value objects used across all domain models.
// These types carry no business rules of their own; they exist so that every
// aggregate identifies and validates its building blocks the same way.
package kernel

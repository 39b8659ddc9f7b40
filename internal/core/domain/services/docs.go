// Package services contains stateless domain services that implement rules
// spanning more than one value of the parcel model. The filter compiler
// translates a sparse SearchCriteria into a conjunctive list of filter
// clauses that any parcel store can execute; it performs no I/O itself.
package services

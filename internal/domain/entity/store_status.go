package entity

// StoreStatus is the operational status of a store. The zero value means
// the status has not been recorded.
type StoreStatus string

const (
	StoreStatusUnset             StoreStatus = ""
	StoreStatusOperational       StoreStatus = "operational"
	StoreStatusTemporarilyClosed StoreStatus = "temporarily_closed"
	StoreStatusPermanentlyClosed StoreStatus = "permanently_closed"
)

// Valid reports whether the status is one of the known values.
func (s StoreStatus) Valid() bool {
	switch s {
	case StoreStatusUnset, StoreStatusOperational, StoreStatusTemporarilyClosed, StoreStatusPermanentlyClosed:
		return true
	}

	return false
}

package enum

// TableStatus tracks whether a dining table currently has an open order.
type TableStatus string

const (
	TableStatusAvailable TableStatus = "Available"
	TableStatusOccupied  TableStatus = "Occupied"
)

// Valid reports whether the table status is one of the known values.
func (s TableStatus) Valid() bool {
	return s == TableStatusAvailable || s == TableStatusOccupied
}

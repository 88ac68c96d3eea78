package request

// CreateTableRequest creates a single table. Zero means auto-number.
type CreateTableRequest struct {
	TableNumber int `json:"tableNumber" binding:"min=0"`
}

// CreateTablesRequest creates a run of sequentially numbered tables
type CreateTablesRequest struct {
	Count int `json:"count" binding:"required,min=1,max=200"`
}

// TableStatusRequest represents a table status change
type TableStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

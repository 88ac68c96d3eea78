package request

// ExpenseRequest is one expense entry on a day's sheet
type ExpenseRequest struct {
	Date          string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Item          string   `json:"item" binding:"required,min=1,max=255"`
	Quantity      *float64 `json:"quantity" binding:"omitempty,min=0"`
	Price         *float64 `json:"price" binding:"omitempty,min=0"`
	TotalPrice    *float64 `json:"totalPrice" binding:"omitempty,min=0"`
	ModeOfPayment string   `json:"modeOfPayment" binding:"omitempty,max=50"`
	Status        string   `json:"status" binding:"omitempty,max=50"`
}

// DeleteExpenseRangeRequest removes every sheet between two dates
type DeleteExpenseRangeRequest struct {
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

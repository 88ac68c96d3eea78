package entity

// ReceiptHeader is the restaurant block printed at the top of a receipt.
type ReceiptHeader struct {
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	GSTIN          string `json:"gstin,omitempty"`
}

// ReceiptItem is one printed line of a customer receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// Receipt is the printable view of a finalized bill.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	BillNumber    int64         `json:"billNumber"`
	TableNumber   int           `json:"tableNumber"`
	Date          string        `json:"date"`
	PaymentMethod string        `json:"paymentMethod"`
	Items         []ReceiptItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	CGST          float64       `json:"cgst"`
	SGST          float64       `json:"sgst"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
}

// KitchenTicket is the printable kitchen order for a staged hold bill.
type KitchenTicket struct {
	KOTNumber   int64         `json:"kotNumber"`
	TableNumber int           `json:"tableNumber"`
	Date        string        `json:"date"`
	Items       []ReceiptItem `json:"items"`
	Names       string        `json:"names,omitempty"`
}

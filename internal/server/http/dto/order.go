package dto

// OrderResponse is the JSON form of an order.
type OrderResponse struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Location string  `json:"location"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`
}

// OrderRequest is accepted by create and update. Absent fields stay nil.
type OrderRequest struct {
	ID       *string  `json:"id"`
	Customer *string  `json:"customer"`
	Location *string  `json:"location"`
	Product  *string  `json:"product"`
	Quantity *int     `json:"quantity"`
	Total    *float64 `json:"total"`
	Status   *string  `json:"status"`
	Date     *string  `json:"date"`
}

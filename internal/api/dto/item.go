package dto

type ItemRequest struct {
	ItemID   string  `json:"item_id"`
	Type     string  `json:"type"`
	Subtype  string  `json:"subtype"`
	Quantity int     `json:"quantity"`
	WeightKg float64 `json:"weight_kg"`
}

type ItemResponse struct {
	ID        int     `json:"id"`
	ItemID    string  `json:"item_id"`
	Type      string  `json:"type"`
	Subtype   string  `json:"subtype"`
	Quantity  int     `json:"quantity"`
	WeightKg  float64 `json:"weight_kg"`
	Stackable bool    `json:"stackable"`
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

type DeleteItemResponse struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

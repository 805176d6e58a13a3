package item

// Price is a pointer so a missing field is distinguishable from zero; both
// are rejected, with different messages.
type CreateItemReq struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
}

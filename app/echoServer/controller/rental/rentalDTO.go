package rental

type OpenRentalReq struct {
	ItemID    string `json:"itemId" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

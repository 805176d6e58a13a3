// model/rental.go
package model

import "time"

type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalReturned RentalStatus = "returned"
)

type Rental struct {
	ID         string       `json:"id"`
	ItemID     string       `json:"itemId"`
	StartDate  time.Time    `json:"startDate"`
	EndDate    time.Time    `json:"endDate"`
	Status     RentalStatus `json:"status"`
	Created    time.Time    `json:"created"`
	ReturnDate *time.Time   `json:"returnDate,omitempty"`
}

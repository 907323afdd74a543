package models

import "time"

const (
	BuyerSequenceName = "buyer-info"
	BidSequenceName   = "bid-info"
)

// Buyer is a participant identified by a sequence id and, uniquely, by email.
type Buyer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName" example:"Johnny"`
	LastName  string `json:"lastName"  example:"Walker"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pin       int    `json:"pin"`
	Phone     string `json:"phone"     example:"9876543210"`
	Email     string `json:"email"     example:"johnny@example.com"`
} // @name Buyer

// Bid is a buyer's offer on a product. BidAmount holds decimal digits.
type Bid struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	BidAmount string `json:"bidAmount" example:"150"`
	BuyerID   int64  `json:"buyerId"`
} // @name Bid

// BidWithBuyer is a bid joined with its owner for product listings.
type BidWithBuyer struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	BidAmount string `json:"bidAmount"`
	Buyer     *Buyer `json:"buyer"`
} // @name BidResponse

// Product is owned by the seller service and only ever read from it.
type Product struct {
	ID                  int64  `json:"id"`
	ProductName         string `json:"productName"`
	ShortDescription    string `json:"shortDescription"`
	DetailedDescription string `json:"detailedDescription"`
	Category            string `json:"category"`
	StartingPrice       string `json:"startingPrice"`
	BidEndDate          string `json:"bidEndDate"` // dd-MM-yyyy
	SellerID            int64  `json:"sellerId"`
}

// AuditEntry is one recorded placement or amendment of a bid.
type AuditEntry struct {
	ID         int64     `json:"id"`
	EventID    string    `json:"eventId"`
	Action     string    `json:"action"    example:"amended"`
	BidID      int64     `json:"bidId"`
	ProductID  int64     `json:"productId"`
	BuyerID    int64     `json:"buyerId"`
	BidAmount  string    `json:"bidAmount"`
	RecordedAt time.Time `json:"recordedAt"`
} // @name AuditEntry

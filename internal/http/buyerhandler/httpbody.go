package buyerhandler

import "eauctionbuyer/internal/models"

type BidRequest struct {
	ProductID int64  `json:"productId" example:"101"`
	BidAmount string `json:"bidAmount" example:"150"`
} // @name BidRequest

type BuyerRequest struct {
	FirstName string `json:"firstName" example:"Johnny"`
	LastName  string `json:"lastName"  example:"Walker"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pin       int    `json:"pin"`
	Phone     string `json:"phone"     example:"9876543210"`
	Email     string `json:"email"     example:"johnny@example.com"`
} // @name BuyerRequest

// Field checks are left to the services so every violation maps to the
// same error taxonomy.
type PlaceBidBody struct {
	BidRequest   BidRequest   `json:"bidRequest"`
	BuyerRequest BuyerRequest `json:"buyerRequest"`
} // @name PlaceBidRequest

type PlaceBidResponse struct {
	Status string        `json:"status" example:"OK"`
	Bid    *models.Bid   `json:"bid"`
	Buyer  *models.Buyer `json:"buyer"`
} // @name PlaceBidResponse

type ErrorResponse struct {
	Error string `json:"error"`
} // @name ErrorResponse

func (r BuyerRequest) toBuyer() models.Buyer {
	return models.Buyer{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Pin:       r.Pin,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

// Package bidflow composes the buyer directory, the bid ledger and the audit
// trail into the use cases exposed over HTTP.
package bidflow

import (
	"context"

	"eauctionbuyer/internal/apperrors"
	"eauctionbuyer/internal/bidaudit"
	"eauctionbuyer/internal/models"
	"eauctionbuyer/internal/services/bid"
	"eauctionbuyer/internal/services/buyer"

	"go.uber.org/zap"
)

//go:generate mockgen -source=bidflow_svc.go -destination=mock_bidflow_svc.go -package=bidflow

type IBidFlowService interface {
	// PlaceBid registers (or re-saves) the buyer, then places the bid for it.
	PlaceBid(ctx context.Context, b models.Buyer, productID int64, amount string) (*models.Bid, *models.Buyer, error)
	// AmendBid changes the amount of the bid the buyer with email holds on productID.
	AmendBid(ctx context.Context, email string, productID int64, amount string) (*models.Bid, error)
	ListBids(ctx context.Context) ([]models.Bid, error)
	ListBidsForProduct(ctx context.Context, productID int64) ([]models.BidWithBuyer, error)
	ListBidsForBuyer(ctx context.Context, buyerID int64) ([]models.Bid, error)
	BidHistory(ctx context.Context, bidID int64) ([]models.AuditEntry, error)
}

type bidFlowService struct {
	buyers buyer.IBuyerService
	bids   bid.IBidService
	audit  bidaudit.IAuditLog
}

var _ IBidFlowService = (*bidFlowService)(nil)

func NewBidFlowService(buyers buyer.IBuyerService, bids bid.IBidService, audit bidaudit.IAuditLog) IBidFlowService {
	return &bidFlowService{
		buyers: buyers,
		bids:   bids,
		audit:  audit,
	}
}

func (svc *bidFlowService) PlaceBid(ctx context.Context, b models.Buyer, productID int64, amount string) (*models.Bid, *models.Buyer, error) {
	registered, err := svc.buyers.ResolveOrCreate(ctx, b)
	if err != nil {
		return nil, nil, err
	}
	placed, err := svc.bids.Place(ctx, models.Bid{
		ProductID: productID,
		BidAmount: amount,
		BuyerID:   registered.ID,
	})
	if err != nil {
		return nil, nil, err
	}
	svc.record(ctx, bidaudit.ActionPlaced, *placed)
	return placed, registered, nil
}

func (svc *bidFlowService) AmendBid(ctx context.Context, email string, productID int64, amount string) (*models.Bid, error) {
	owner, err := svc.buyers.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	updated, err := svc.bids.Amend(ctx, owner.ID, productID, amount)
	if err != nil {
		return nil, err
	}
	svc.record(ctx, bidaudit.ActionAmended, *updated)
	return updated, nil
}

// record never fails the request: the bid is already committed.
func (svc *bidFlowService) record(ctx context.Context, action string, b models.Bid) {
	if err := svc.audit.Publish(ctx, bidaudit.NewEvent(action, b)); err != nil {
		zap.L().Warn("bid_audit_publish", zap.String("action", action), zap.Int64("bid_id", b.ID), zap.Error(err))
	}
}

func (svc *bidFlowService) ListBids(ctx context.Context) ([]models.Bid, error) {
	return svc.bids.ListAll(ctx)
}

func (svc *bidFlowService) ListBidsForProduct(ctx context.Context, productID int64) ([]models.BidWithBuyer, error) {
	bids, err := svc.bids.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]models.BidWithBuyer, 0, len(bids))
	if len(bids) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(bids))
	for _, b := range bids {
		ids = append(ids, b.BuyerID)
	}
	owners, err := svc.buyers.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, b := range bids {
		row := models.BidWithBuyer{ID: b.ID, ProductID: b.ProductID, BidAmount: b.BidAmount}
		if owner, ok := owners[b.BuyerID]; ok {
			row.Buyer = &owner
		}
		out = append(out, row)
	}
	return out, nil
}

func (svc *bidFlowService) ListBidsForBuyer(ctx context.Context, buyerID int64) ([]models.Bid, error) {
	return svc.bids.ListByBuyer(ctx, buyerID)
}

func (svc *bidFlowService) BidHistory(ctx context.Context, bidID int64) ([]models.AuditEntry, error) {
	list, err := svc.audit.History(ctx, bidID)
	return list, apperrors.Guard(err)
}

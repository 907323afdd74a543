package bid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eauctionbuyer/internal/apperrors"
	"eauctionbuyer/internal/bidrules"
	"eauctionbuyer/internal/catalog"
	"eauctionbuyer/internal/database/repository"
	"eauctionbuyer/internal/models"
	"eauctionbuyer/internal/sequence"

	"go.uber.org/zap"
)

//go:generate mockgen -source=bid_svc.go -destination=mock_bid_svc.go -package=bid

type IBidService interface {
	ListAll(ctx context.Context) ([]models.Bid, error)
	ListByProduct(ctx context.Context, productID int64) ([]models.Bid, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]models.Bid, error)
	// Place validates a new bid against the live product and stores it.
	Place(ctx context.Context, b models.Bid) (*models.Bid, error)
	// Amend sets a new amount on the existing bid of the (product, buyer) pair.
	Amend(ctx context.Context, buyerID, productID int64, newAmount string) (*models.Bid, error)
}

type bidService struct {
	repo    repository.BidRepository
	seq     sequence.ISequenceService
	catalog catalog.IProductCatalog
	now     func() time.Time
}

var _ IBidService = (*bidService)(nil)

// NewBidService builds the ledger. now decides "today" for bid windows;
// nil means time.Now.
func NewBidService(repo repository.BidRepository, seq sequence.ISequenceService,
	cat catalog.IProductCatalog, now func() time.Time) IBidService {
	if now == nil {
		now = time.Now
	}
	return &bidService{
		repo:    repo,
		seq:     seq,
		catalog: cat,
		now:     now,
	}
}

func (svc *bidService) ListAll(ctx context.Context) ([]models.Bid, error) {
	list, err := svc.repo.FindAll(ctx)
	return list, apperrors.Guard(err)
}

func (svc *bidService) ListByProduct(ctx context.Context, productID int64) ([]models.Bid, error) {
	list, err := svc.repo.FindByProductID(ctx, productID)
	return list, apperrors.Guard(err)
}

func (svc *bidService) ListByBuyer(ctx context.Context, buyerID int64) ([]models.Bid, error) {
	list, err := svc.repo.FindByBuyerID(ctx, buyerID)
	return list, apperrors.Guard(err)
}

func (svc *bidService) Place(ctx context.Context, b models.Bid) (*models.Bid, error) {
	out, err := svc.place(ctx, b)
	if err != nil {
		return nil, apperrors.Guard(err)
	}
	return out, nil
}

func (svc *bidService) place(ctx context.Context, b models.Bid) (*models.Bid, error) {
	product, err := svc.catalog.Fetch(ctx, b.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("The bid cannot be placed as the product doesn't exist [productId: %d]", b.ProductID)
	}

	existing, err := svc.repo.FindByProductAndBuyer(ctx, b.ProductID, b.BuyerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, duplicateBid(existing, product)
	}

	if !bidrules.BidWindowOpen(svc.now(), product.BidEndDate) {
		return nil, apperrors.InvalidOperation("The bid cannot be placed as the product's bidEndDate is in "+
			"the past from the current date [bidEndDate: %s]", product.BidEndDate)
	}

	if err := validateAmount(b.BidAmount, product.StartingPrice); err != nil {
		return nil, err
	}

	b.ID, err = svc.seq.NextValue(ctx, models.BidSequenceName)
	if err != nil {
		return nil, err
	}
	if err := svc.repo.Insert(ctx, &b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost the race against a concurrent placement for the same pair
			zap.L().Info("bid_insert_conflict", zap.Int64("product_id", b.ProductID), zap.Int64("buyer_id", b.BuyerID))
			return nil, apperrors.Conflict("The bid cannot be placed as there is an existing bid available "+
				"for the given product [productId: %d, buyerId: %d]", b.ProductID, b.BuyerID)
		}
		return nil, err
	}
	zap.L().Info("bid_placed",
		zap.Int64("bid_id", b.ID),
		zap.Int64("product_id", b.ProductID),
		zap.Int64("buyer_id", b.BuyerID),
		zap.String("amount", b.BidAmount),
	)
	return &b, nil
}

func (svc *bidService) Amend(ctx context.Context, buyerID, productID int64, newAmount string) (*models.Bid, error) {
	out, err := svc.amend(ctx, buyerID, productID, newAmount)
	if err != nil {
		return nil, apperrors.Guard(err)
	}
	return out, nil
}

// amend does not re-check the amount format or the starting price; only
// placement does.
func (svc *bidService) amend(ctx context.Context, buyerID, productID int64, newAmount string) (*models.Bid, error) {
	existing, err := svc.repo.FindByProductAndBuyer(ctx, productID, buyerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, noBidToUpdate(productID, buyerID)
	}

	product, err := svc.catalog.Fetch(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("The bid cannot be updated as the product no more exist [productId: %d]", productID)
	}

	if !bidrules.BidWindowOpen(svc.now(), product.BidEndDate) {
		return nil, apperrors.InvalidOperation("The bid cannot be updated as the bidEndDate is "+
			"in the past from the current date [bidEndDate: %s]", product.BidEndDate)
	}

	updated, err := svc.repo.UpdateAmount(ctx, productID, buyerID, newAmount)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, noBidToUpdate(productID, buyerID)
	}
	zap.L().Info("bid_amended",
		zap.Int64("bid_id", updated.ID),
		zap.String("from", existing.BidAmount),
		zap.String("to", updated.BidAmount),
	)
	return updated, nil
}

func validateAmount(amount, startingPrice string) error {
	value, err := bidrules.ParseAmount(amount)
	if err != nil {
		return apperrors.InvalidData("The bid cannot be placed as the bidAmount is either empty or not numeric "+
			"or lesser than the product's startingPrice [bidAmount: %s]", amount)
	}
	minimum, err := bidrules.ParseAmount(startingPrice)
	if err != nil {
		return fmt.Errorf("product startingPrice %q: %w", startingPrice, err)
	}
	if value < minimum {
		return apperrors.InvalidData("The bid cannot be placed as the bidAmount is either empty or not numeric "+
			"or lesser than the product's startingPrice [bidAmount: %s, startingPrice: %s]", amount, startingPrice)
	}
	return nil
}

func duplicateBid(existing *models.Bid, product *models.Product) error {
	return apperrors.Conflict("The bid cannot be placed as there is an existing bid available for the given "+
		"product [productId: %d, productName: %s, bidAmount: %s, buyerId: %d]",
		existing.ProductID, product.ProductName, existing.BidAmount, existing.BuyerID)
}

func noBidToUpdate(productID, buyerID int64) error {
	return apperrors.NotFound("The bid cannot be updated as there is no bid exist for the given product "+
		"[productId: %d, buyerId: %d]", productID, buyerID)
}

package bid

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"eauctionbuyer/internal/apperrors"
	"eauctionbuyer/internal/database/repository"
	"eauctionbuyer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ product, buyer int64 }

// memBidRepo enforces the (product, buyer) uniqueness the Postgres schema does.
type memBidRepo struct {
	mu   sync.Mutex
	bids map[pair]models.Bid
}

func newMemBidRepo() *memBidRepo { return &memBidRepo{bids: map[pair]models.Bid{}} }

func (r *memBidRepo) FindAll(context.Context) ([]models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Bid, 0, len(r.bids))
	for _, b := range r.bids {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBidRepo) FindByProductID(context.Context, int64) ([]models.Bid, error) { return nil, nil }
func (r *memBidRepo) FindByBuyerID(context.Context, int64) ([]models.Bid, error)   { return nil, nil }
func (r *memBidRepo) MaxID(context.Context) (int64, error)                         { return 0, nil }

func (r *memBidRepo) FindByProductAndBuyer(_ context.Context, productID, buyerID int64) (*models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bids[pair{productID, buyerID}]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memBidRepo) Insert(_ context.Context, b *models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := pair{b.ProductID, b.BuyerID}
	if _, ok := r.bids[k]; ok {
		return repository.ErrDuplicate
	}
	r.bids[k] = *b
	return nil
}

func (r *memBidRepo) UpdateAmount(_ context.Context, productID, buyerID int64, amount string) (*models.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := pair{productID, buyerID}
	b, ok := r.bids[k]
	if !ok {
		return nil, nil
	}
	b.BidAmount = amount
	r.bids[k] = b
	return &b, nil
}

type openCatalog struct{}

func (openCatalog) Fetch(_ context.Context, id int64) (*models.Product, error) {
	return &models.Product{ID: id, StartingPrice: "100", BidEndDate: tomorrow}, nil
}

type counterSeq struct{ n atomic.Int64 }

func (s *counterSeq) NextValue(context.Context, string) (int64, error) { return s.n.Add(1), nil }
func (s *counterSeq) EnsureFloor(context.Context, string, int64) error { return nil }

func TestPlace_ConcurrentSamePairOnlyOneWins(t *testing.T) {
	repo := newMemBidRepo()
	svc := NewBidService(repo, &counterSeq{}, openCatalog{}, func() time.Time { return fixedNow })

	const n = 16
	var wg sync.WaitGroup
	var won, conflicted atomic.Int32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Place(context.Background(), models.Bid{ProductID: 101, BuyerID: 3, BidAmount: strconv.Itoa(100 + i)})
			switch {
			case err == nil:
				won.Add(1)
			case assert.ErrorIs(t, err, apperrors.ErrResourceConflict):
				conflicted.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
	assert.Equal(t, int32(n-1), conflicted.Load())
	all, _ := repo.FindAll(context.Background())
	assert.Len(t, all, 1)
}

func TestAmend_ConcurrentAmendmentsApplyWhole(t *testing.T) {
	repo := newMemBidRepo()
	require.NoError(t, repo.Insert(context.Background(), &models.Bid{ID: 1, ProductID: 101, BuyerID: 3, BidAmount: "150"}))
	svc := NewBidService(repo, &counterSeq{}, openCatalog{}, func() time.Time { return fixedNow })

	attempted := map[string]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		amount := strconv.Itoa(200 + i)
		attempted[amount] = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.Amend(context.Background(), 3, 101, amount)
			if assert.NoError(t, err) {
				assert.Equal(t, int64(1), got.ID)
			}
		}()
	}
	wg.Wait()

	final, err := repo.FindByProductAndBuyer(context.Background(), 101, 3)
	require.NoError(t, err)
	assert.True(t, attempted[final.BidAmount], "final amount %s was never attempted", final.BidAmount)
	assert.Equal(t, int64(1), final.ID)
}

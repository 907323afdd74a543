package syncseq

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"eauctionbuyer/internal/database/repository"
	"eauctionbuyer/internal/models"
	"eauctionbuyer/internal/sequence"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncOnce_RaisesEachSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	bids := repository.NewMockBidRepository(ctrl)
	buyers := repository.NewMockBuyerRepository(ctrl)
	seq := sequence.NewMockISequenceService(ctrl)

	bids.EXPECT().MaxID(gomock.Any()).Return(int64(40), nil)
	buyers.EXPECT().MaxID(gomock.Any()).Return(int64(7), nil)
	seq.EXPECT().EnsureFloor(gomock.Any(), models.BidSequenceName, int64(40)).Return(nil)
	seq.EXPECT().EnsureFloor(gomock.Any(), models.BuyerSequenceName, int64(7)).Return(nil)

	err := syncOnce(context.Background(), seq, []Source{
		{Sequence: models.BidSequenceName, Table: bids},
		{Sequence: models.BuyerSequenceName, Table: buyers},
	})
	require.NoError(t, err)
}

func TestSyncOnce_EmptyTableLeavesCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	bids := repository.NewMockBidRepository(ctrl)
	seq := sequence.NewMockISequenceService(ctrl)

	bids.EXPECT().MaxID(gomock.Any()).Return(int64(0), nil)

	err := syncOnce(context.Background(), seq, []Source{{Sequence: models.BidSequenceName, Table: bids}})
	require.NoError(t, err)
}

func TestSyncOnce_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	bids := repository.NewMockBidRepository(ctrl)
	seq := sequence.NewMockISequenceService(ctrl)

	bids.EXPECT().MaxID(gomock.Any()).Return(int64(0), errors.New("pg down"))

	err := syncOnce(context.Background(), seq, []Source{{Sequence: models.BidSequenceName, Table: bids}})
	assert.ErrorContains(t, err, "pg down")
}

type countingTable struct{ calls atomic.Int32 }

func (c *countingTable) MaxID(context.Context) (int64, error) {
	c.calls.Add(1)
	return 5, nil
}

type floorRecorder struct{ floors atomic.Int64 }

func (f *floorRecorder) NextValue(context.Context, string) (int64, error) { return 0, nil }

func (f *floorRecorder) EnsureFloor(_ context.Context, _ string, floor int64) error {
	f.floors.Store(floor)
	return nil
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	seq := &floorRecorder{}
	table := &countingTable{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, Run(ctx, seq, 10*time.Millisecond, Source{Sequence: models.BidSequenceName, Table: table}))
	assert.Equal(t, int32(1), table.calls.Load(), "first pass runs before Run returns")
	assert.Equal(t, int64(5), seq.floors.Load())

	assert.Eventually(t, func() bool { return table.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestRun_FirstPassFailureIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	bids := repository.NewMockBidRepository(ctrl)
	bids.EXPECT().MaxID(gomock.Any()).Return(int64(0), errors.New("pg down"))

	err := Run(context.Background(), &floorRecorder{}, time.Minute, Source{Sequence: models.BidSequenceName, Table: bids})
	assert.Error(t, err)
}

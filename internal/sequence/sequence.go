package sequence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "seq:"

//go:generate mockgen -source=sequence.go -destination=mock_sequence.go -package=sequence

// ISequenceService hands out ids that increase monotonically per sequence name.
type ISequenceService interface {
	NextValue(ctx context.Context, name string) (int64, error)
	// EnsureFloor raises the named counter to at least floor.
	EnsureFloor(ctx context.Context, name string, floor int64) error
}

type sequenceService struct {
	rdc *redis.Client
}

func NewSequenceService(rdc *redis.Client) ISequenceService {
	return &sequenceService{rdc: rdc}
}

func Key(name string) string { return keyPrefix + name }

// NextValue relies on INCR being atomic, so concurrent callers never share an id.
func (s *sequenceService) NextValue(ctx context.Context, name string) (int64, error) {
	v, err := s.rdc.Incr(ctx, Key(name)).Result()
	if err != nil {
		return 0, fmt.Errorf("next value of %s: %w", name, err)
	}
	return v, nil
}

func (s *sequenceService) EnsureFloor(ctx context.Context, name string, floor int64) error {
	err := s.rdc.FCall(ctx, "sequence_floor", []string{Key(name)}, floor).Err()
	if err != nil {
		return fmt.Errorf("ensure floor of %s: %w", name, err)
	}
	return nil
}

package buyer

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"eauctionbuyer/internal/apperrors"
	"eauctionbuyer/internal/bidrules"
	"eauctionbuyer/internal/database/repository"
	"eauctionbuyer/internal/models"
	"eauctionbuyer/internal/sequence"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	firstNameMin = 5
	firstNameMax = 30
	lastNameMin  = 5
	lastNameMax  = 25
	phoneLen     = 10
)

//go:generate mockgen -source=buyer_svc.go -destination=mock_buyer_svc.go -package=buyer

type IBuyerService interface {
	// ResolveOrCreate validates the buyer and stores it, reusing the id of an
	// existing buyer with the same email.
	ResolveOrCreate(ctx context.Context, b models.Buyer) (*models.Buyer, error)
	GetByEmail(ctx context.Context, email string) (*models.Buyer, error)
	// GetMany omits ids that do not exist.
	GetMany(ctx context.Context, ids []int64) (map[int64]models.Buyer, error)
}

type buyerService struct {
	repo     repository.BuyerRepository
	seq      sequence.ISequenceService
	validate *validator.Validate
}

var _ IBuyerService = (*buyerService)(nil)

func NewBuyerService(repo repository.BuyerRepository, seq sequence.ISequenceService) IBuyerService {
	return &buyerService{
		repo:     repo,
		seq:      seq,
		validate: validator.New(),
	}
}

func (svc *buyerService) ResolveOrCreate(ctx context.Context, b models.Buyer) (*models.Buyer, error) {
	if err := svc.validateBuyer(b); err != nil {
		return nil, err
	}

	out, err := svc.resolveAndSave(ctx, b)
	if errors.Is(err, repository.ErrDuplicate) {
		// another request registered the same email between our lookup and save
		zap.L().Info("buyer_email_raced", zap.String("email", b.Email))
		out, err = svc.resolveAndSave(ctx, b)
	}
	if err != nil {
		return nil, apperrors.Guard(err)
	}
	return out, nil
}

func (svc *buyerService) resolveAndSave(ctx context.Context, b models.Buyer) (*models.Buyer, error) {
	existing, err := svc.repo.FindByEmail(ctx, b.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		b.ID = existing.ID
	} else {
		b.ID, err = svc.seq.NextValue(ctx, models.BuyerSequenceName)
		if err != nil {
			return nil, err
		}
	}
	if err := svc.repo.Save(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (svc *buyerService) GetByEmail(ctx context.Context, email string) (*models.Buyer, error) {
	b, err := svc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Technical(err)
	}
	if b == nil {
		return nil, apperrors.NotFound("The requested Buyer doesn't exist [buyerEmail: %s]", email)
	}
	return b, nil
}

func (svc *buyerService) GetMany(ctx context.Context, ids []int64) (map[int64]models.Buyer, error) {
	found, err := svc.repo.FindAllByID(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, apperrors.Technical(err)
	}
	out := make(map[int64]models.Buyer, len(found))
	for _, b := range found {
		out[b.ID] = b
	}
	return out, nil
}

func (svc *buyerService) validateBuyer(b models.Buyer) error {
	if n := utf8.RuneCountInString(b.FirstName); isBlank(b.FirstName) || n < firstNameMin || n > firstNameMax {
		return apperrors.InvalidData("The buyer cannot be added as the firstName parameter is either empty "+
			"or not as per specified length as between %d and %d [firstName: %s, length: %d]",
			firstNameMin, firstNameMax, b.FirstName, n)
	}
	if n := utf8.RuneCountInString(b.LastName); isBlank(b.LastName) || n < lastNameMin || n > lastNameMax {
		return apperrors.InvalidData("The buyer cannot be added as the lastName parameter is either empty "+
			"or not as per specified length as between %d and %d [lastName: %s, length: %d]",
			lastNameMin, lastNameMax, b.LastName, n)
	}
	if n := utf8.RuneCountInString(b.Phone); !bidrules.IsDigits(b.Phone) || n != phoneLen {
		return apperrors.InvalidData("The buyer cannot be added as the phone parameter is either empty "+
			"or not numeric or not as per specified length as %d [phone: %s, length: %d]",
			phoneLen, b.Phone, n)
	}
	if isBlank(b.Email) || svc.validate.Var(b.Email, "email") != nil {
		return apperrors.InvalidData("The buyer cannot be added as the email parameter is either empty "+
			"or not a valid email address [email: %s]", b.Email)
	}
	return nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

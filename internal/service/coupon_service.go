package service

import (
	"context"

	"shopmatic/internal/entity"
)

type CouponService struct {
	repo CouponRepository
}

func NewCouponService(repo CouponRepository) *CouponService {
	return &CouponService{repo: repo}
}

func (s *CouponService) Create(ctx context.Context, code string, amount float64) (*entity.Coupon, error) {
	if code == "" || amount == 0 {
		return nil, entity.BadRequest("Please Enter All Fields")
	}
	return s.repo.Create(ctx, &entity.Coupon{Code: code, Amount: amount})
}

// Discount resolves a coupon code to its discount amount.
func (s *CouponService) Discount(ctx context.Context, code string) (float64, error) {
	coupon, err := s.repo.ByCode(ctx, code)
	if err != nil {
		return 0, err
	}
	if coupon == nil {
		return 0, entity.BadRequest("Invalid Coupon Code")
	}
	return coupon.Amount, nil
}

func (s *CouponService) All(ctx context.Context) ([]*entity.Coupon, error) {
	return s.repo.All(ctx)
}

func (s *CouponService) Delete(ctx context.Context, id int) error {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return entity.BadRequest("Invalid Coupon Id")
	}
	return s.repo.Delete(ctx, id)
}

package entity

type Coupon struct {
	ID     int     `json:"_id"`
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

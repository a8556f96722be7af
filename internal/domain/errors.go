package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCancelNotAllowed = errors.New("order can not be cancelled in its current status")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrDuplicateOrder   = errors.New("order id already exists")
)

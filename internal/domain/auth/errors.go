package auth

import "errors"

var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrEmployeeClaimNeeded = errors.New("token carries no employee identity")
	ErrManagerRequired     = errors.New("manager privilege required")
)

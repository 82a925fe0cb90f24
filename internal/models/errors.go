package models

import (
	"errors"
)

var (
	ErrAdvertisementNotFound    = errors.New("models: advertisement not found")
	ErrUserNotFound             = errors.New("models: user not found")
	ErrMessageNotFound          = errors.New("models: message not found")
	ErrImageNotFound            = errors.New("models: image not found")
	ErrEmptyImage               = errors.New("models: empty image payload")
	ErrMultipleAdvertisements   = errors.New("models: more than one advertisement matches")
	ErrUnknownReference         = errors.New("models: referenced user does not exist")
	ErrInvalidCredentials       = errors.New("models: invalid credentials")
	ErrDuplicateEmail           = errors.New("models: duplicate email")
	ErrInvalidRealEstateType    = errors.New("models: invalid real estate type")
	ErrInvalidAdvertisementType = errors.New("models: invalid advertisement type")
)

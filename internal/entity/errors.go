package entity

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidState         = errors.New("invoice not in a valid payable state")
	ErrConfigurationMissing = errors.New("no lightning node configured")
	ErrNodeFailure          = errors.New("lightning node failure")
	ErrExpired              = errors.New("invoice expired")
	ErrAlreadyIssued        = errors.New("payment request already issued")
)

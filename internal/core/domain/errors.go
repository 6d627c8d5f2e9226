package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrEmptyOrder              = errors.New("order must contain at least one item")
	ErrInsufficientStock       = errors.New("not enough stock for requested quantity")
	ErrProductInactive         = errors.New("product is not available for purchase")
	ErrInvalidStatusTransition = errors.New("order status transition is not allowed")
	ErrOrderUnderReview        = errors.New("order is under fraud review and requires admin action")
	ErrOrderNotUnderReview     = errors.New("order is not under fraud review")
	ErrOrderAlreadyPaid        = errors.New("order is already paid")
	ErrOrderCancelled          = errors.New("order is cancelled")
	ErrNotMobileMoneyOrder     = errors.New("order payment method is not mobile money")
	ErrAmountMismatch          = errors.New("payment amount does not match order total")
	ErrInvalidPhoneNumber      = errors.New("payer phone number is invalid")
	ErrFlashSaleNotStarted     = errors.New("flash sale has not started yet")
	ErrFlashSaleExpired        = errors.New("flash sale has ended")
	ErrFlashSaleSoldOut        = errors.New("flash sale is sold out")

	// * Gateway errors.
	ErrGatewayUnavailable = errors.New("payment gateway request failed")
)

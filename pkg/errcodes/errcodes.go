package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Feed source failures. Both are recovered inside the loader.
	NetworkFailure    failure.ErrorCode = "NetworkFailure"
	MalformedResponse failure.ErrorCode = "MalformedResponse"

	AuctionNotFound  failure.ErrorCode = "AuctionNotFound"
	AuctionEnded     failure.ErrorCode = "AuctionEnded"
	InvalidAuctionID failure.ErrorCode = "InvalidAuctionID"
	InvalidCategory  failure.ErrorCode = "InvalidCategory"
	InvalidStatus    failure.ErrorCode = "InvalidStatus"
	InvalidView      failure.ErrorCode = "InvalidView"
	InvalidBidAmount failure.ErrorCode = "InvalidBidAmount"
	InvalidRecord    failure.ErrorCode = "InvalidRecord"
	SignInRequired   failure.ErrorCode = "SignInRequired"
)

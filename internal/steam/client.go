package steam

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrJobCancelled indicates the remote job backing a request was
	// cancelled before it produced a result, usually because the
	// connection dropped.
	ErrJobCancelled = errors.New("remote job cancelled")

	// ErrRemoteJobFailed indicates the remote reported a failure for the
	// job backing a request.
	ErrRemoteJobFailed = errors.New("remote job failed")
)

// RequestError wraps a remote failure with the operation that produced it.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("steam: %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is one of the remote-job failures that the
// poll loop treats as routine: log and carry on at the normal cadence.
func IsTransient(err error) bool {
	return errors.Is(err, ErrJobCancelled) || errors.Is(err, ErrRemoteJobFailed)
}

// Client is the remote PICS interface consumed by the pipeline.
//
//go:generate mockgen -destination=mocks/mock_client.go -package=mocks github.com/PawVamp/SteamDatabaseBackend/internal/steam Client
type Client interface {
	// GetChangesSince requests all product changes after the given change
	// number. The flags control whether per-product change lists are
	// included in the response; the poller always requests both.
	GetChangesSince(ctx context.Context, changeNumber uint32, sendAppChangeList, sendPackageChangeList bool) (*ChangesResponse, error)

	// GetAccessTokens requests access tokens for the given products.
	GetAccessTokens(ctx context.Context, appIDs, packageIDs []uint32) (*AccessTokens, error)

	// GetProductInfo requests product metadata, presenting any tokens
	// carried by the requests.
	GetProductInfo(ctx context.Context, apps, packages []ProductInfoRequest) (*ProductInfoResult, error)
}

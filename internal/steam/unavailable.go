package steam

import "context"

// unavailableClient is the placeholder transport used until a real PICS
// connection is wired in. Every request reports a remote job failure, which
// the pipeline already treats as a routine transient condition.
type unavailableClient struct{}

// NewUnavailableClient returns a Client whose requests always fail with
// ErrRemoteJobFailed.
func NewUnavailableClient() Client {
	return unavailableClient{}
}

func (unavailableClient) GetChangesSince(context.Context, uint32, bool, bool) (*ChangesResponse, error) {
	return nil, &RequestError{Op: "get changes", Err: ErrRemoteJobFailed}
}

func (unavailableClient) GetAccessTokens(context.Context, []uint32, []uint32) (*AccessTokens, error) {
	return nil, &RequestError{Op: "get access tokens", Err: ErrRemoteJobFailed}
}

func (unavailableClient) GetProductInfo(context.Context, []ProductInfoRequest, []ProductInfoRequest) (*ProductInfoResult, error) {
	return nil, &RequestError{Op: "get product info", Err: ErrRemoteJobFailed}
}

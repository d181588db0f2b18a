// Package steam defines the contract this service has with the remote Steam
// PICS interface: the change feed, access token grants, and product info.
// The concrete network client lives behind the Client interface so the
// pipeline can be driven by any transport.
package steam

// FeedChange is a single changed product inside one feed response.
type FeedChange struct {
	// ID is the app or package identifier, depending on which map the
	// change arrived in.
	ID uint32

	// ChangeNumber is the changelist that produced this change.
	ChangeNumber uint32

	// NeedsToken reports whether the product's metadata cannot be fetched
	// without first acquiring an access token.
	NeedsToken bool
}

// ChangesResponse is the result of one "changes since N" request.
type ChangesResponse struct {
	// CurrentChangeNumber is the feed position after this response.
	CurrentChangeNumber uint32

	// AppChanges and PackageChanges are keyed by product identifier.
	AppChanges     map[uint32]FeedChange
	PackageChanges map[uint32]FeedChange
}

// Empty reports whether the response carries no product changes at all.
func (r *ChangesResponse) Empty() bool {
	return len(r.AppChanges) == 0 && len(r.PackageChanges) == 0
}

// AccessTokens is the result of a token acquisition request. Products the
// remote refused a token for are listed in the denied slices.
type AccessTokens struct {
	AppTokens     map[uint32]uint64
	PackageTokens map[uint32]uint64

	AppsDenied     []uint32
	PackagesDenied []uint32
}

// ProductInfoRequest asks for the metadata of one product, optionally
// presenting a previously granted access token.
type ProductInfoRequest struct {
	ID          uint32
	AccessToken uint64
}

// ProductInfo is the per-product result of a product info request. The raw
// metadata payload is opaque to this service; parsing it is the job of the
// downstream processors.
type ProductInfo struct {
	ID           uint32
	ChangeNumber uint32

	// MissingToken marks products the remote would only describe with a
	// token we did not present.
	MissingToken bool

	// KeyValues is the raw serialized metadata blob.
	KeyValues []byte
}

// ProductInfoResult bundles app and package metadata from one request.
type ProductInfoResult struct {
	Apps     []ProductInfo
	Packages []ProductInfo
}

package render

import "github.com/goliatone/go-docx-markdown/internal/identity"

// AssetKind classifies a referenced binary asset.
type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetFile  AssetKind = "file"
)

// Asset is an external binary referenced by the rendered output. Token is
// written into the Markdown verbatim so callers can rewrite it once the asset
// has been resolved. ID is derived from Token and stays stable across renders.
type Asset struct {
	ID    string    `json:"id"`
	Token string    `json:"token"`
	Kind  AssetKind `json:"kind"`
}

// AssetRegistry records assets in first-encounter order.
type AssetRegistry struct {
	order []string
	items map[string]Asset
}

// NewAssetRegistry returns an empty registry.
func NewAssetRegistry() *AssetRegistry {
	return &AssetRegistry{items: map[string]Asset{}}
}

// Add registers token. A token seen before keeps its position and takes the
// latest kind. Empty tokens are ignored.
func (a *AssetRegistry) Add(kind AssetKind, token string) {
	if token == "" {
		return
	}
	asset, ok := a.items[token]
	if !ok {
		a.order = append(a.order, token)
		asset = Asset{ID: identity.AssetUUID(token).String(), Token: token}
	}
	asset.Kind = kind
	a.items[token] = asset
}

// Get looks up an asset by token.
func (a *AssetRegistry) Get(token string) (Asset, bool) {
	if a == nil {
		return Asset{}, false
	}
	asset, ok := a.items[token]
	return asset, ok
}

// Tokens returns the registered tokens in encounter order.
func (a *AssetRegistry) Tokens() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.order...)
}

// All returns the registered assets in encounter order.
func (a *AssetRegistry) All() []Asset {
	if a == nil {
		return nil
	}
	out := make([]Asset, 0, len(a.order))
	for _, token := range a.order {
		out = append(out, a.items[token])
	}
	return out
}

// Len reports the number of registered assets.
func (a *AssetRegistry) Len() int {
	if a == nil {
		return 0
	}
	return len(a.order)
}

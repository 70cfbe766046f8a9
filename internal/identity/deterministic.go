// Package identity derives stable identifiers for documents and assets so
// repeated renders of the same source correlate across logs and manifests.
package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from key. Callers prefix keys by kind so
// a document id and an asset token never collide.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// RenderUUID identifies the rendering of a document.
func RenderUUID(documentID string) uuid.UUID {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return uuid.Nil
	}
	return UUID("docxmd:render:" + documentID)
}

// AssetUUID identifies an image or file token independent of its kind.
func AssetUUID(token string) uuid.UUID {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil
	}
	return UUID("docxmd:asset:" + token)
}

package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := RenderUUID("doxcnA")
	second := RenderUUID(" doxcnA ")
	if first == uuid.Nil || first != second {
		t.Fatalf("expected stable id, got %s and %s", first, second)
	}
}

func TestUUIDSeparatesKinds(t *testing.T) {
	if RenderUUID("token") == AssetUUID("token") {
		t.Fatalf("render and asset ids should not collide")
	}
}

func TestUUIDBlankKey(t *testing.T) {
	if UUID("  ") != uuid.Nil || RenderUUID("") != uuid.Nil || AssetUUID("") != uuid.Nil {
		t.Fatalf("blank keys should map to uuid.Nil")
	}
}

package mtag

import "testing"

func TestApplyReturnsNewValue(t *testing.T) {
	base := TagSet{"artist": "a"}
	next := base.Apply(map[string]any{"Album": "b"})

	if len(base) != 1 {
		t.Fatalf("receiver mutated: %v", base)
	}
	if next["album"] != "b" || next["artist"] != "a" {
		t.Fatalf("unexpected merge result: %v", next)
	}
}

func TestApplyFoldOverwrites(t *testing.T) {
	base := TagSet{"artist": "a"}
	next := base.Apply(map[string]any{"ARTIST": "b"})

	if len(next) != 1 || next["artist"] != "b" {
		t.Fatalf("fold should collapse keys, got %v", next)
	}
}

func TestApplyEmptySequenceDeletesInheritedKey(t *testing.T) {
	base := TagSet{"genre": []any{"rock"}}
	next := base.Apply(map[string]any{"genre": []any{}})

	if _, ok := next["genre"]; ok {
		t.Fatalf("expected deletion, got %v", next)
	}
}

func TestFoldKey(t *testing.T) {
	if FoldKey("TrackNumber") != "tracknumber" {
		t.Fatalf("unexpected fold: %q", FoldKey("TrackNumber"))
	}
	// Case folding is stronger than lowercasing for some scripts.
	if FoldKey("STRASSE") != FoldKey("strasse") {
		t.Fatal("folded keys should match case-insensitively")
	}
}

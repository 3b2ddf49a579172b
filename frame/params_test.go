package frame

import (
	"strings"
	"testing"
)

func TestMergeParams_OverridePrecedence(t *testing.T) {
	merged, err := MergeParams(DefaultParams(), []Override{
		{Key: "child-border-width", Value: 2},
		{Key: "title", Value: "peek"},
		{Key: "child-border-width", Value: 3}, // last write wins
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if merged.ChildBorderWidth != 3 {
		t.Fatalf("expected last override to win, got border width %d", merged.ChildBorderWidth)
	}
	if merged.Title != "peek" {
		t.Fatalf("expected title override, got %q", merged.Title)
	}
	// untouched keys keep their defaults
	if !merged.NoAcceptFocus || !merged.Undecorated {
		t.Fatalf("expected untouched defaults to survive: %+v", merged)
	}
}

func TestMergeParams_UnknownKeyFails(t *testing.T) {
	_, err := MergeParams(DefaultParams(), []Override{{Key: "z-order", Value: 1}})
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "z-order") {
		t.Fatalf("error should name the key: %v", err)
	}
}

func TestMergeParams_MistypedValueFails(t *testing.T) {
	_, err := MergeParams(DefaultParams(), []Override{{Key: "min-width", Value: "wide"}})
	if err == nil {
		t.Fatalf("expected error for mistyped value")
	}
}

func TestDiffParams(t *testing.T) {
	target := DefaultParams()

	live := target
	if diff := DiffParams(live, target); len(diff) != 0 {
		t.Fatalf("expected no diff for identical params, got %v", diff)
	}

	// a host leaking its global scroll bar and fringe settings
	live.ScrollBars = true
	live.LeftFringe = 8

	diff := DiffParams(live, target)
	if len(diff) != 2 {
		t.Fatalf("expected 2 differing keys, got %v", diff)
	}

	keys := map[string]any{}
	for _, ov := range diff {
		keys[ov.Key] = ov.Value
	}
	if keys["scroll-bars"] != false {
		t.Fatalf("expected scroll-bars=false in diff, got %v", keys)
	}
	if keys["left-fringe"] != 0 {
		t.Fatalf("expected left-fringe=0 in diff, got %v", keys)
	}
}

func TestContentLocals_ReadOnlyUndecorated(t *testing.T) {
	locals := ContentLocals()

	for key, want := range map[string]string{
		"read-only":      "on",
		"truncate-lines": "on",
		"cursor":         "off",
		"status-line":    "off",
		"left-margin":    "0",
	} {
		if got := locals[key]; got != want {
			t.Fatalf("expected %s=%s, got %q", key, want, got)
		}
	}
}

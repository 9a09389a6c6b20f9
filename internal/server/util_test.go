package server

import (
	"strings"
	"testing"
)

func TestNewRoomCodeAlphabet(t *testing.T) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	for i := 0; i < 100; i++ {
		code := newRoomCode()
		if len(code) != 6 {
			t.Fatalf("expected 6 characters, got %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("character %q outside alphabet in %q", r, code)
			}
		}
	}
}

func TestPickPlayerColor(t *testing.T) {
	if color := pickPlayerColor(nil); color != playerPalette[0] {
		t.Fatalf("expected first palette color, got %s", color)
	}
	if color := pickPlayerColor(playerPalette[:2]); color != playerPalette[2] {
		t.Fatalf("expected third palette color, got %s", color)
	}
	// Host color never blocks palette assignment.
	if color := pickPlayerColor([]string{hostColor}); color != playerPalette[0] {
		t.Fatalf("expected first palette color, got %s", color)
	}
	// Exhausted palette falls back to some palette color.
	fallback := pickPlayerColor(playerPalette)
	found := false
	for _, color := range playerPalette {
		if color == fallback {
			found = true
		}
	}
	if !found {
		t.Fatalf("fallback %s not in palette", fallback)
	}
}

func TestNewHiddenNumberRange(t *testing.T) {
	seen := make(map[int]struct{})
	for i := 0; i < 2000; i++ {
		n := newHiddenNumber()
		if n < 0 || n > 100 {
			t.Fatalf("hidden number out of range: %d", n)
		}
		seen[n] = struct{}{}
	}
	if len(seen) < 50 {
		t.Fatalf("distribution looks degenerate: %d distinct values", len(seen))
	}
}

func TestValidateName(t *testing.T) {
	if _, err := validateName("  Ada  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name, _ := validateName("  Ada  "); name != "Ada" {
		t.Fatalf("expected trimmed name, got %q", name)
	}
	if _, err := validateName("   "); err == nil {
		t.Fatal("expected error for blank name")
	}
	if _, err := validateName(strings.Repeat("a", 51)); err == nil {
		t.Fatal("expected error for long name")
	}
	if _, err := validateName(strings.Repeat("a", 50)); err != nil {
		t.Fatalf("50 characters should pass, got %v", err)
	}
	// Limits count characters, not bytes.
	if _, err := validateName(strings.Repeat("é", 50)); err != nil {
		t.Fatalf("50 multibyte characters should pass, got %v", err)
	}
	if _, err := validateName(strings.Repeat("é", 51)); err == nil {
		t.Fatal("expected error for 51 multibyte characters")
	}
}

func TestValidateContent(t *testing.T) {
	if _, err := validateContent("   "); err == nil {
		t.Fatal("expected error for blank content")
	}
	if content, err := validateContent("  fine  "); err != nil || content != "fine" {
		t.Fatalf("expected trimmed content, got %q (%v)", content, err)
	}
	if _, err := validateContent(strings.Repeat("a", 201)); err == nil {
		t.Fatal("expected error for long content")
	}
	if _, err := validateContent(strings.Repeat("ü", 200)); err != nil {
		t.Fatalf("200 multibyte characters should pass, got %v", err)
	}
	if _, err := validateContent(strings.Repeat("ü", 201)); err == nil {
		t.Fatal("expected error for 201 multibyte characters")
	}
}

func TestValidatePosition(t *testing.T) {
	for _, ok := range []int{0, 50, 100} {
		if err := validatePosition(ok); err != nil {
			t.Fatalf("position %d should pass, got %v", ok, err)
		}
	}
	for _, bad := range []int{-1, 101, 1000} {
		if err := validatePosition(bad); err == nil {
			t.Fatalf("position %d should fail", bad)
		}
	}
}

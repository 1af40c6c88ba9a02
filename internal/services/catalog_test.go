package services

import (
	"strings"
	"testing"
)

func TestGameType(t *testing.T) {
	cases := []struct {
		gameNumber int
		wantType   string
		wantOK     bool
	}{
		{1, "eye_tracking_reading", true},
		{2, "speech_fluency", true},
		{3, "handwriting", true},
		{4, "pattern_recognition", true},
		{5, "response_time", true},
		{0, "", false},
		{6, "", false},
		{-1, "", false},
	}
	for _, tc := range cases {
		got, ok := GameType(tc.gameNumber)
		if ok != tc.wantOK || got != tc.wantType {
			t.Fatalf("GameType(%d) = (%q, %v), want (%q, %v)", tc.gameNumber, got, ok, tc.wantType, tc.wantOK)
		}
	}
}

func TestGameInfoForAttachesPassageToFirstGameOnly(t *testing.T) {
	for n := 1; n <= TotalGames; n++ {
		info, ok := GameInfoFor("en", n)
		if !ok {
			t.Fatalf("GameInfoFor(en, %d) not ok", n)
		}
		if n == 1 {
			if info.Content == nil || info.Content.Passage == "" {
				t.Fatalf("game 1 should carry a reading passage")
			}
		} else if info.Content != nil {
			t.Fatalf("game %d should not carry content, got %+v", n, info.Content)
		}
		if info.GameNumber != n {
			t.Fatalf("game number mismatch: got %d want %d", info.GameNumber, n)
		}
		if info.Title == "" || info.Instructions == "" || info.Duration <= 0 {
			t.Fatalf("incomplete catalog entry for game %d: %+v", n, info)
		}
	}
}

func TestGameInfoForHindi(t *testing.T) {
	info, ok := GameInfoFor("hi", 1)
	if !ok {
		t.Fatalf("GameInfoFor(hi, 1) not ok")
	}
	if info.Title == "Reading Task" {
		t.Fatalf("expected localized title, got english")
	}
	if info.Content == nil || !strings.Contains(info.Content.Passage, "लोमड़ी") {
		t.Fatalf("expected hindi passage, got %+v", info.Content)
	}
}

func TestGameInfoForUnknownLanguageFallsBack(t *testing.T) {
	fallback, _ := GameInfoFor(DefaultLanguage, 2)
	info, ok := GameInfoFor("sw", 2)
	if !ok {
		t.Fatalf("GameInfoFor(sw, 2) not ok")
	}
	if info.Title != fallback.Title || info.Instructions != fallback.Instructions {
		t.Fatalf("unknown language should fall back to %q catalog", DefaultLanguage)
	}
}

func TestGameInfoForOutOfRange(t *testing.T) {
	if _, ok := GameInfoFor("en", 0); ok {
		t.Fatalf("game 0 should not exist")
	}
	if _, ok := GameInfoFor("en", TotalGames+1); ok {
		t.Fatalf("game %d should not exist", TotalGames+1)
	}
}

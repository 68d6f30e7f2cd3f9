package gamify

import "testing"

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{-10, 1},
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{4500, 10},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.level {
			t.Errorf("LevelForXP(%d)=%d, want %d", c.xp, got, c.level)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	if got := LevelProgress(0); got != 0 {
		t.Fatalf("LevelProgress(0)=%v", got)
	}
	if got := LevelProgress(250); got != 0.5 {
		t.Fatalf("LevelProgress(250)=%v", got)
	}
	// A fresh level starts at zero progress, not full.
	if got := LevelProgress(500); got != 0 {
		t.Fatalf("LevelProgress(500)=%v", got)
	}
}

func TestXPToNextLevel(t *testing.T) {
	if got := XPToNextLevel(0); got != 500 {
		t.Fatalf("XPToNextLevel(0)=%d", got)
	}
	if got := XPToNextLevel(499); got != 1 {
		t.Fatalf("XPToNextLevel(499)=%d", got)
	}
	if got := XPToNextLevel(500); got != 500 {
		t.Fatalf("XPToNextLevel(500)=%d", got)
	}
}

func TestIsSkill(t *testing.T) {
	for _, s := range Skills() {
		if !IsSkill(s) {
			t.Errorf("IsSkill(%q)=false", s)
		}
	}
	if IsSkill("") || IsSkill("juggling") {
		t.Fatalf("unknown skill accepted")
	}
}

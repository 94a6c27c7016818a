package database

import (
	"context"
	"strings"
	"testing"
)

func TestSeed_DefaultFixturesWithReset(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	fixtures, err := DefaultFixtures()
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, db, fixtures, true); err != nil {
			t.Fatalf("seed run %d: %v", i, err)
		}
	}

	var cards, videos, charts, points int64
	db.Model(&ContentCard{}).Count(&cards)
	db.Model(&ContentVideo{}).Count(&videos)
	db.Model(&ContentChart{}).Count(&charts)
	db.Model(&ContentChartData{}).Count(&points)

	if cards != int64(len(fixtures.Cards)) || videos != int64(len(fixtures.Videos)) || charts != int64(len(fixtures.Charts)) {
		t.Fatalf("unexpected counts cards=%d videos=%d charts=%d", cards, videos, charts)
	}
	if points != 7 {
		t.Fatalf("expected 7 chart points got %d", points)
	}
}

func TestSeed_ExtendInfoText(t *testing.T) {
	fixtures, err := LoadFixtures(strings.NewReader(`{"videos":[
		{"title":"obj","extendInfo":{"a":1}},
		{"title":"str","extendInfo":"{not json"},
		{"title":"none"}
	]}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got := []string{
		extendInfoText(fixtures.Videos[0].ExtendInfo),
		extendInfoText(fixtures.Videos[1].ExtendInfo),
		extendInfoText(fixtures.Videos[2].ExtendInfo),
	}
	want := []string{`{"a":1}`, "{not json", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fixture %d: expected %q got %q", i, want[i], got[i])
		}
	}
}

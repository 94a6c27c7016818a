package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mbox/internal/content"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestContentStore_ListOrdersByCreatedAtDesc(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		row := ContentCard{Title: fmt.Sprintf("card-%d", i), CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed card: %v", err)
		}
	}

	store := NewContentStore(db)
	records, total, err := store.List(ctx, content.KindCard, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5 got %d", total)
	}
	if len(records) != 2 || records[0].Title != "card-4" || records[1].Title != "card-3" {
		t.Fatalf("unexpected first page: %+v", records)
	}

	records, _, err = store.List(ctx, content.KindCard, 3, 2)
	if err != nil {
		t.Fatalf("list page 3: %v", err)
	}
	if len(records) != 1 || records[0].Title != "card-0" {
		t.Fatalf("unexpected last page: %+v", records)
	}
}

func TestContentStore_ListPastOverflowingOffsetIsEmpty(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	for i := 0; i < 3; i++ {
		if err := db.Create(&ContentCard{Title: fmt.Sprintf("card-%d", i)}).Error; err != nil {
			t.Fatalf("seed card: %v", err)
		}
	}

	records, total, err := NewContentStore(db).List(ctx, content.KindCard, 92233720368547760, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3 got %d", total)
	}
	if len(records) != 0 {
		t.Fatalf("expected no rows past the last page, got %d", len(records))
	}
}

func TestContentStore_FindNotFound(t *testing.T) {
	store := NewContentStore(newTestDB(t))
	if _, err := store.Find(context.Background(), content.KindVideo, 999999); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentStore_FindMapsColumns(t *testing.T) {
	db := newTestDB(t)
	row := ContentVideo{Title: "clip", Duration: "03:00", Resolution: "1080p", ExtendInfo: `{"views":1}`}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed video: %v", err)
	}

	rec, err := NewContentStore(db).Find(context.Background(), content.KindVideo, uint64(row.ID))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if rec.ID != uint64(row.ID) || rec.Columns["duration"] != "03:00" || rec.ExtendInfo != `{"views":1}` {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestContentStore_SeriesOrderedBySortOrder(t *testing.T) {
	db := newTestDB(t)
	chart := ContentChart{
		Title: "c",
		Points: []ContentChartData{
			{XLabel: "C", YValue: 3, SortOrder: 2},
			{XLabel: "A", YValue: 1, SortOrder: 0},
			{XLabel: "B", YValue: 2, SortOrder: 1},
		},
	}
	other := ContentChart{Title: "other", Points: []ContentChartData{{XLabel: "Z", YValue: 9, SortOrder: 0}}}
	if err := db.Create(&chart).Error; err != nil {
		t.Fatalf("seed chart: %v", err)
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed chart: %v", err)
	}

	series, err := NewContentStore(db).Series(context.Background(), []uint64{uint64(chart.ID)})
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	points := series[uint64(chart.ID)]
	if len(points) != 3 {
		t.Fatalf("expected 3 points got %d", len(points))
	}
	for i, want := range []string{"A", "B", "C"} {
		if points[i].Label != want {
			t.Fatalf("point %d: expected %s got %s", i, want, points[i].Label)
		}
	}
	if _, ok := series[uint64(other.ID)]; ok {
		t.Fatalf("series for charts not requested must not be returned")
	}
}

func TestContentStore_UnknownKind(t *testing.T) {
	store := NewContentStore(newTestDB(t))
	if _, _, err := store.List(context.Background(), content.Kind("poster"), 1, 10); !errors.Is(err, content.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

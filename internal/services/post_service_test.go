package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tripchat/tripchat-backend/internal/domain"
)

func newPostServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("post_svc_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.AnonymousPost{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func validInput() CreatePostInput {
	return CreatePostInput{
		Title:    "도쿄 집 구하기",
		Content:  "보증금이 비싸요",
		Nickname: "익명1",
		Password: "pw1234",
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	s := &PostService{DB: newPostServiceDB(t)}
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreatePostInput)
	}{
		{"missing title", func(in *CreatePostInput) { in.Title = "  " }},
		{"missing content", func(in *CreatePostInput) { in.Content = "" }},
		{"missing nickname", func(in *CreatePostInput) { in.Nickname = "\t" }},
		{"missing password", func(in *CreatePostInput) { in.Password = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := s.Create(ctx, in); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestCreate_EncodesPasswordAndDefaultsCategory(t *testing.T) {
	db := newPostServiceDB(t)
	s := &PostService{DB: db}

	post, err := s.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Category != domain.DefaultPostCategory {
		t.Fatalf("expected default category %q, got %q", domain.DefaultPostCategory, post.Category)
	}

	var stored domain.AnonymousPost
	if err := db.First(&stored, "id = ?", post.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	want := base64.StdEncoding.EncodeToString([]byte("pw1234"))
	if stored.Password != want {
		t.Fatalf("password stored as %q, want base64 %q", stored.Password, want)
	}
	if stored.Password == "pw1234" {
		t.Fatalf("plaintext password persisted")
	}
}

func TestCreate_KeepsExplicitCategory(t *testing.T) {
	s := &PostService{DB: newPostServiceDB(t)}

	in := validInput()
	in.Category = "질문"
	post, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Category != "질문" {
		t.Fatalf("category overridden: %q", post.Category)
	}
}

func TestGet_ReturnsPreIncrementCountAndBumps(t *testing.T) {
	db := newPostServiceDB(t)
	s := &PostService{DB: db}
	ctx := context.Background()

	created, err := s.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// First fetch reports 0 but leaves 1 behind.
	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ViewCount != 0 {
		t.Fatalf("first fetch should report pre-increment 0, got %d", got.ViewCount)
	}

	// Second fetch reports 1 and leaves 2. No per-viewer dedup.
	got, err = s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ViewCount != 1 {
		t.Fatalf("second fetch should report 1, got %d", got.ViewCount)
	}

	var stored domain.AnonymousPost
	if err := db.First(&stored, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.ViewCount != 2 {
		t.Fatalf("stored count should be 2 after two fetches, got %d", stored.ViewCount)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := &PostService{DB: newPostServiceDB(t)}
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListPage_CountsAndPages(t *testing.T) {
	db := newPostServiceDB(t)
	s := &PostService{DB: db}
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 45; i++ {
		p := domain.AnonymousPost{
			ID:        fmt.Sprintf("p%02d", i),
			Title:     "t",
			Content:   "c",
			Nickname:  "n",
			Password:  "cHc=",
			Category:  domain.DefaultPostCategory,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	items, total, err := s.ListPage(ctx, "", 1, 20)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 45 || len(items) != 20 {
		t.Fatalf("page 1: total=%d len=%d", total, len(items))
	}
	// Newest first: p44 leads page 1.
	if items[0].ID != "p44" {
		t.Fatalf("expected p44 first, got %s", items[0].ID)
	}

	items, _, err = s.ListPage(ctx, "", 3, 20)
	if err != nil {
		t.Fatalf("ListPage p3: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("page 3 should hold the 5 leftovers, got %d", len(items))
	}
}

func TestListPage_DefaultsOutOfRangeInputs(t *testing.T) {
	s := &PostService{DB: newPostServiceDB(t)}

	items, total, err := s.ListPage(context.Background(), "", -3, 0)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 0 || items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil page, got total=%d items=%#v", total, items)
	}
}

func TestListPage_SummariesOmitContent(t *testing.T) {
	db := newPostServiceDB(t)
	s := &PostService{DB: db}

	if _, err := s.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	items, _, err := s.ListPage(context.Background(), "", 1, 10)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(items))
	}
	// PostSummary carries no content or password field at all; spot-check the
	// fields it does carry.
	if items[0].Title == "" || items[0].Nickname == "" {
		t.Fatalf("summary missing fields: %+v", items[0])
	}
}

func TestDelete_PasswordGate(t *testing.T) {
	db := newPostServiceDB(t)
	s := &PostService{DB: db}
	ctx := context.Background()

	created, err := s.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(ctx, created.ID, ""); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
	if err := s.Delete(ctx, "missing", "pw1234"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if err := s.Delete(ctx, created.ID, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	// The failed attempts must not have removed the row.
	if _, err := s.Get(ctx, created.ID); err != nil {
		t.Fatalf("post gone after failed deletes: %v", err)
	}

	if err := s.Delete(ctx, created.ID, "pw1234"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, created.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
}

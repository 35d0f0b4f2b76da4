package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	if (CoffeeChat{}).TableName() != "coffee_chats" {
		t.Fatalf("CoffeeChat.TableName() = %q; want %q", (CoffeeChat{}).TableName(), "coffee_chats")
	}
	if (AnonymousPost{}).TableName() != "anonymous_posts" {
		t.Fatalf("AnonymousPost.TableName() = %q; want %q", (AnonymousPost{}).TableName(), "anonymous_posts")
	}
	if (Idempotency{}).TableName() != "idempotency" {
		t.Fatalf("Idempotency.TableName() = %q; want %q", (Idempotency{}).TableName(), "idempotency")
	}
}

func TestCoffeeChat_IsFull(t *testing.T) {
	cases := []struct {
		current, max int
		want         bool
	}{
		{0, 5, false},
		{4, 5, false},
		{5, 5, true},
		{6, 5, true}, // over-capacity still reads as full
	}
	for _, tc := range cases {
		c := CoffeeChat{CurrentParticipants: tc.current, MaxParticipants: tc.max}
		if got := c.IsFull(); got != tc.want {
			t.Fatalf("IsFull(%d/%d) = %v; want %v", tc.current, tc.max, got, tc.want)
		}
	}
}

func TestMigrations_Indexes_TagsAndStatusCheck(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&CoffeeChat{}, &AnonymousPost{}, &Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	// Tables exist
	for _, tbl := range []any{&CoffeeChat{}, &AnonymousPost{}, &Idempotency{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}

	// Indexes from tags exist
	if !m.HasIndex(&CoffeeChat{}, "idx_chat_country") {
		t.Fatalf("expected index idx_chat_country on coffee_chats")
	}
	if !m.HasIndex(&AnonymousPost{}, "idx_post_category") {
		t.Fatalf("expected index idx_post_category on anonymous_posts")
	}
	if !m.HasIndex(&AnonymousPost{}, "idx_post_created") {
		t.Fatalf("expected index idx_post_created on anonymous_posts")
	}
	if !m.HasIndex(&Idempotency{}, "ux_client_route_key") {
		t.Fatalf("expected unique index ux_client_route_key on idempotency")
	}

	now := time.Now().UTC()

	// Tags round-trip through the JSON serializer column.
	ch := &CoffeeChat{
		ID:              "c1",
		Title:           "도쿄 커피챗",
		Host:            "김민수",
		Country:         "일본",
		MaxParticipants: 5,
		Tags:            []string{"IT", "이직"},
		Status:          ChatStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(ch).Error; err != nil {
		t.Fatalf("insert chat: %v", err)
	}
	var gotChat CoffeeChat
	if err := db.First(&gotChat, "id = ?", "c1").Error; err != nil {
		t.Fatalf("readback chat: %v", err)
	}
	if len(gotChat.Tags) != 2 || gotChat.Tags[0] != "IT" || gotChat.Tags[1] != "이직" {
		t.Fatalf("tags round-trip failed: %#v", gotChat.Tags)
	}

	// Check constraint rejects unknown status values.
	bad := &CoffeeChat{
		ID:              "c2",
		Title:           "x",
		Host:            "h",
		Country:         "kr",
		MaxParticipants: 1,
		Status:          "CANCELLED",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(bad).Error; err == nil {
		t.Fatalf("expected check-constraint violation for unknown status")
	}

	// Unique index rejects duplicate (client_id, route, key).
	rec := &Idempotency{
		ID:         "id-1",
		ClientID:   "ip:1.2.3.4",
		Route:      "/api/coffee-chats",
		Key:        "k1",
		ResourceID: "c1",
		Status:     201,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("insert idempotency: %v", err)
	}
	dup := &Idempotency{
		ID:         "id-2",
		ClientID:   "ip:1.2.3.4",
		Route:      "/api/coffee-chats",
		Key:        "k1",
		ResourceID: "c2",
		Status:     201,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	}
	if err := db.Create(dup).Error; err == nil {
		t.Fatalf("expected UNIQUE constraint violation on (client_id, route, key)")
	}
}

func TestAnonymousPost_PasswordNeverSerialized(t *testing.T) {
	p := AnonymousPost{
		ID:        "p1",
		Title:     "제목",
		Content:   "본문",
		Nickname:  "익명",
		Password:  "c2VjcmV0",
		Category:  DefaultPostCategory,
		ViewCount: 3,
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "c2VjcmV0") || strings.Contains(s, "password") {
		t.Fatalf("password leaked into JSON: %s", s)
	}
	if !strings.Contains(s, `"category":"일반"`) || !strings.Contains(s, `"viewCount":3`) {
		t.Fatalf("unexpected JSON shape: %s", s)
	}
}

func TestPostSummary_ExcludesContent(t *testing.T) {
	sum := PostSummary{ID: "p1", Title: "제목", Nickname: "익명", Category: "여행"}
	b, err := json.Marshal(sum)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "content") {
		t.Fatalf("summary must not carry content: %s", b)
	}
}

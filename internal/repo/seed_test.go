package repo

import (
	"context"
	"testing"

	"github.com/tripchat/tripchat-backend/internal/domain"
)

func TestSeedCoffeeChats_EmptyTable(t *testing.T) {
	db := newChatRepoDB(t, &domain.CoffeeChat{})

	n, err := SeedCoffeeChats(context.Background(), db)
	if err != nil {
		t.Fatalf("SeedCoffeeChats: %v", err)
	}
	if n != len(sampleCoffeeChats) {
		t.Fatalf("expected %d inserted, got %d", len(sampleCoffeeChats), n)
	}

	list, err := ListCoffeeChats(context.Background(), db, ChatFilter{})
	if err != nil {
		t.Fatalf("ListCoffeeChats: %v", err)
	}
	if len(list) != len(sampleCoffeeChats) {
		t.Fatalf("expected %d rows, got %d", len(sampleCoffeeChats), len(list))
	}
	for _, c := range list {
		if c.ID == "" {
			t.Fatalf("seeded chat without id: %+v", c)
		}
	}
}

func TestSeedCoffeeChats_NoOpWhenPopulated(t *testing.T) {
	db := newChatRepoDB(t, &domain.CoffeeChat{})
	seedChat(t, db, domain.CoffeeChat{ID: "existing", Title: "t", Host: "h", Country: "KR", MaxParticipants: 2})

	n, err := SeedCoffeeChats(context.Background(), db)
	if err != nil {
		t.Fatalf("SeedCoffeeChats: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no-op on populated table, inserted %d", n)
	}
}

func TestSeedCoffeeChats_Error_NoTable(t *testing.T) {
	db := newChatRepoDB(t /* no migrations */)
	if _, err := SeedCoffeeChats(context.Background(), db); err == nil {
		t.Fatalf("expected error when table missing")
	}
}

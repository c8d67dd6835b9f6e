package service

import (
	"context"
	"errors"
	"testing"
)

func TestContents_MergedViewSortedByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	contents, err := env.catalog.Contents(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 11 {
		t.Fatalf("built-in content count: got %d want 11", len(contents))
	}
	if contents[0].Name != "Beer" || contents[len(contents)-1].Name != "Wine" {
		t.Fatalf("sort order: got first %q last %q", contents[0].Name, contents[len(contents)-1].Name)
	}
}

func TestAddContent_SortsCaseInsensitively(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	added, err := env.catalog.AddContent(ctx, "apple juice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected a generated id")
	}

	contents, err := env.catalog.Contents(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 12 {
		t.Fatalf("content count: got %d want 12", len(contents))
	}
	if contents[0].Name != "apple juice" {
		t.Fatalf("expected lowercase name sorted first, got %q", contents[0].Name)
	}
}

func TestAddContent_RejectsEmptyName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.catalog.AddContent(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	contents, err := env.catalog.Contents(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 11 {
		t.Fatalf("rejected add must not persist, got %d contents", len(contents))
	}
}

func TestCups_MergedViewSortedByAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.catalog.AddCup(ctx, "Mug", 250); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cups, err := env.catalog.Cups(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cups) != 7 {
		t.Fatalf("cup count: got %d want 7", len(cups))
	}
	if cups[1].Name != "Mug" {
		t.Fatalf("expected the 250 ml cup between 200 and 300, got %q at index 1", cups[1].Name)
	}
	for i := 1; i < len(cups); i++ {
		if cups[i].Amount < cups[i-1].Amount {
			t.Fatalf("cups not sorted by amount: %d before %d", cups[i-1].Amount, cups[i].Amount)
		}
	}
}

func TestAddCup_RejectsInvalidAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, amount := range []int{0, -100} {
		if _, err := env.catalog.AddCup(ctx, "Broken", amount); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("amount %d: expected ErrInvalidInput, got %v", amount, err)
		}
	}
	if _, err := env.catalog.AddCup(ctx, "", 300); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}

	cups, err := env.catalog.Cups(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cups) != 6 {
		t.Fatalf("rejected adds must not persist, got %d cups", len(cups))
	}
}

func TestClear_KeepsBuiltins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.catalog.AddContent(ctx, "Smoothie"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := env.catalog.AddCup(ctx, "Mug", 250); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := env.catalog.ClearContents(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := env.catalog.ClearCups(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contents, _ := env.catalog.Contents(ctx)
	cups, _ := env.catalog.Cups(ctx)
	if len(contents) != 11 || len(cups) != 6 {
		t.Fatalf("clear must keep built-ins: got %d contents, %d cups", len(contents), len(cups))
	}
}

func TestLookupByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	content, err := env.catalog.ContentByID(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Name != "Water" {
		t.Fatalf("content 1: got %q want Water", content.Name)
	}

	cup, err := env.catalog.CupByID(ctx, "6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cup.Name != "Large Bottle" || cup.Amount != 1500 {
		t.Fatalf("cup 6: got %q/%d", cup.Name, cup.Amount)
	}

	if _, err := env.catalog.ContentByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := env.catalog.CupByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/lofr-in/storefront/internal/events"
	"github.com/lofr-in/storefront/internal/models"
)

type fakeBackend struct {
	products []models.Product
	err      error
}

func (f *fakeBackend) GetWishlist(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeBackend) AddToWishlist(ctx context.Context, productID string) error {
	if f.err != nil {
		return f.err
	}
	f.products = append(f.products, models.Product{ID: productID})
	return nil
}

func (f *fakeBackend) RemoveFromWishlist(ctx context.Context, productID string) error {
	return f.err
}

func (f *fakeBackend) ClearWishlist(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.products = nil
	return nil
}

func TestService_LoadRebuildsIDSet(t *testing.T) {
	backend := &fakeBackend{products: []models.Product{{ID: "p1"}, {ID: "p2"}}}
	svc := NewService(backend, events.NewBus())

	products, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(products) != 2 || svc.Count() != 2 {
		t.Errorf("products/count = %d/%d, want 2/2", len(products), svc.Count())
	}
	if !svc.Contains("p1") || svc.Contains("p3") {
		t.Error("membership must reflect the loaded wishlist")
	}

	// A later load replaces the set wholesale.
	backend.products = []models.Product{{ID: "p3"}}
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if svc.Contains("p1") || !svc.Contains("p3") {
		t.Error("reload must replace the previous membership")
	}
}

func TestService_MutationsPublishEvents(t *testing.T) {
	bus := events.NewBus()
	published := 0
	bus.Subscribe(events.WishlistUpdated, func() { published++ })
	svc := NewService(&fakeBackend{}, bus)
	ctx := context.Background()

	if err := svc.Add(ctx, "p1"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !svc.Contains("p1") {
		t.Error("added product must be a member immediately")
	}
	if err := svc.Remove(ctx, "p1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if svc.Contains("p1") {
		t.Error("removed product must leave the set immediately")
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if published != 3 {
		t.Errorf("wishlist.updated published %d times, want 3", published)
	}
}

func TestService_BackendFailureLeavesStateAlone(t *testing.T) {
	bus := events.NewBus()
	published := 0
	bus.Subscribe(events.WishlistUpdated, func() { published++ })

	backend := &fakeBackend{products: []models.Product{{ID: "p1"}}}
	svc := NewService(backend, bus)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	backend.err = errors.New("backend down")
	if err := svc.Remove(context.Background(), "p1"); err == nil {
		t.Fatal("Remove() expected error")
	}
	if !svc.Contains("p1") {
		t.Error("failed remove must not change membership")
	}
	if published != 0 {
		t.Errorf("wishlist.updated published %d times, want 0", published)
	}
}

package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/lofr-in/storefront/internal/api"
	"github.com/lofr-in/storefront/internal/events"
	"github.com/lofr-in/storefront/internal/models"
	"github.com/lofr-in/storefront/internal/session"
)

type fakeBackend struct {
	cart models.Cart
	err  error

	added   []api.AddToCartRequest
	updated [][3]string
	removed []string
	cleared int
}

func (f *fakeBackend) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := f.cart
	return &c, nil
}

func (f *fakeBackend) AddToCart(ctx context.Context, req api.AddToCartRequest) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, req)
	return nil
}

func (f *fakeBackend) UpdateCartQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, [3]string{cartID, productID, ""})
	return nil
}

func (f *fakeBackend) RemoveCartItem(ctx context.Context, cartID, productID string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, productID)
	return nil
}

func (f *fakeBackend) ClearCart(ctx context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.cleared++
	return nil
}

type fakeLookup struct {
	products map[string]models.Product
	err      error
}

func (f *fakeLookup) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, &api.Error{Status: 404, Message: "product not found"}
	}
	return &p, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loggedInStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(session.Session{Token: "tok", UserID: "u1"}); err != nil {
		t.Fatalf("saving session: %v", err)
	}
	return store
}

func TestService_Load(t *testing.T) {
	shirt := models.Product{ID: "p1", Name: "Linen Shirt", Price: 100}

	t.Run("requires login", func(t *testing.T) {
		store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
		svc := NewService(&fakeBackend{}, &fakeLookup{}, store, events.NewBus(), discardLogger())
		if _, err := svc.Load(context.Background()); !errors.Is(err, session.ErrNotLoggedIn) {
			t.Errorf("Load() error = %v, want ErrNotLoggedIn", err)
		}
	})

	t.Run("populated product reference is used directly", func(t *testing.T) {
		backend := &fakeBackend{cart: models.Cart{
			ID: "cart1",
			Items: []models.CartItem{
				{Product: models.ProductRef{ID: "p1", Product: &shirt}, Quantity: 2, Size: "M"},
			},
		}}
		lookup := &fakeLookup{err: errors.New("should not be called")}
		svc := NewService(backend, lookup, loggedInStore(t), events.NewBus(), discardLogger())

		lines, err := svc.Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(lines) != 1 || lines[0].Product.Name != "Linen Shirt" || lines[0].Quantity != 2 {
			t.Errorf("lines = %+v, want the populated shirt line", lines)
		}
		if svc.CartID() != "cart1" {
			t.Errorf("CartID() = %q, want cart1", svc.CartID())
		}
	})

	t.Run("bare product ID is enriched via lookup", func(t *testing.T) {
		backend := &fakeBackend{cart: models.Cart{
			Items: []models.CartItem{
				{Product: models.ProductRef{ID: "p1"}, Quantity: 1},
			},
		}}
		lookup := &fakeLookup{products: map[string]models.Product{"p1": shirt}}
		svc := NewService(backend, lookup, loggedInStore(t), events.NewBus(), discardLogger())

		lines, err := svc.Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(lines) != 1 || lines[0].Product.Price != 100 {
			t.Errorf("lines = %+v, want enriched shirt line", lines)
		}
	})

	t.Run("failed enrichment keeps the line with zero pricing", func(t *testing.T) {
		backend := &fakeBackend{cart: models.Cart{
			Items: []models.CartItem{
				{Product: models.ProductRef{ID: "gone"}, Quantity: 1},
			},
		}}
		lookup := &fakeLookup{products: map[string]models.Product{}}
		svc := NewService(backend, lookup, loggedInStore(t), events.NewBus(), discardLogger())

		lines, err := svc.Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(lines) != 1 || lines[0].Product.ID != "gone" || lines[0].Product.Price != 0 {
			t.Errorf("lines = %+v, want placeholder line for unfetchable product", lines)
		}
	})

	t.Run("empty reference is skipped", func(t *testing.T) {
		backend := &fakeBackend{cart: models.Cart{
			Items: []models.CartItem{
				{Product: models.ProductRef{}, Quantity: 1},
			},
		}}
		svc := NewService(backend, &fakeLookup{}, loggedInStore(t), events.NewBus(), discardLogger())

		lines, err := svc.Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(lines) != 0 {
			t.Errorf("lines = %+v, want none", lines)
		}
	})
}

func TestService_MutationsPublishEvents(t *testing.T) {
	backend := &fakeBackend{}
	bus := events.NewBus()
	published := 0
	bus.Subscribe(events.CartUpdated, func() { published++ })
	svc := NewService(backend, &fakeLookup{}, loggedInStore(t), bus, discardLogger())
	ctx := context.Background()

	if err := svc.Add(ctx, "p1", 2, "M"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := svc.UpdateQuantity(ctx, "p1", 3); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	if err := svc.Remove(ctx, "p1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if published != 4 {
		t.Errorf("cart.updated published %d times, want 4 (one per mutation)", published)
	}
	if len(backend.added) != 1 || backend.added[0].UserID != "u1" || backend.added[0].Size != "M" {
		t.Errorf("added = %+v, want one add for u1 size M", backend.added)
	}
	if backend.cleared != 1 {
		t.Errorf("cleared = %d, want 1", backend.cleared)
	}
}

func TestService_MutationFailuresDoNotPublish(t *testing.T) {
	backend := &fakeBackend{err: errors.New("backend down")}
	bus := events.NewBus()
	published := 0
	bus.Subscribe(events.CartUpdated, func() { published++ })
	svc := NewService(backend, &fakeLookup{}, loggedInStore(t), bus, discardLogger())
	ctx := context.Background()

	if err := svc.Add(ctx, "p1", 1, ""); err == nil {
		t.Error("Add() expected error")
	}
	if err := svc.Clear(ctx); err == nil {
		t.Error("Clear() expected error")
	}
	if published != 0 {
		t.Errorf("cart.updated published %d times, want 0 on failures", published)
	}
}

func TestService_InvalidQuantity(t *testing.T) {
	svc := NewService(&fakeBackend{}, &fakeLookup{}, loggedInStore(t), events.NewBus(), discardLogger())
	ctx := context.Background()

	if err := svc.Add(ctx, "p1", 0, ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Add(qty 0) error = %v, want ErrInvalidQuantity", err)
	}
	if err := svc.UpdateQuantity(ctx, "p1", -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("UpdateQuantity(-1) error = %v, want ErrInvalidQuantity", err)
	}
}

func TestService_RefreshCount(t *testing.T) {
	store := loggedInStore(t)
	backend := &fakeBackend{cart: models.Cart{
		Items: []models.CartItem{
			{Product: models.ProductRef{ID: "p1"}, Quantity: 1},
			{Product: models.ProductRef{ID: "p2"}, Quantity: 3},
		},
	}}
	svc := NewService(backend, &fakeLookup{}, store, events.NewBus(), discardLogger())

	svc.RefreshCount(context.Background())
	if got := store.Current().CartCount; got != 2 {
		t.Errorf("cart count = %d, want 2", got)
	}

	backend.err = errors.New("backend down")
	svc.RefreshCount(context.Background())
	if got := store.Current().CartCount; got != 2 {
		t.Errorf("cart count after failed refresh = %d, want previous value 2", got)
	}
}

// Package app wires the storefront services together. The Context is
// built once at startup and passed by injection; there are no ambient
// globals.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/lofr-in/storefront/internal/admin"
	"github.com/lofr-in/storefront/internal/api"
	"github.com/lofr-in/storefront/internal/auth"
	"github.com/lofr-in/storefront/internal/cart"
	"github.com/lofr-in/storefront/internal/checkout"
	"github.com/lofr-in/storefront/internal/config"
	"github.com/lofr-in/storefront/internal/coupon"
	"github.com/lofr-in/storefront/internal/events"
	"github.com/lofr-in/storefront/internal/gateway"
	"github.com/lofr-in/storefront/internal/orders"
	"github.com/lofr-in/storefront/internal/session"
	"github.com/lofr-in/storefront/internal/wishlist"
)

// Context holds every constructed service for the lifetime of the
// process.
type Context struct {
	Config   *config.Config
	Logger   *slog.Logger
	Sessions *session.Store
	Bus      *events.Bus
	API      *api.Client
	Products *cart.CachedProducts
	Cart     *cart.Service
	Wishlist *wishlist.Service
	Coupons  *coupon.Validator
	Auth     *auth.Service
	Orders   *orders.History
	Admin    *admin.Service
	Gateway  gateway.Authorizer
}

// New builds the application context.
func New(cfg *config.Config, logger *slog.Logger) *Context {
	sessions := session.NewStore(cfg.SessionFile)
	bus := events.NewBus()

	client := api.NewClient(
		cfg.APIBase,
		time.Duration(cfg.RequestTimeout)*time.Second,
		logger,
		api.WithTokenProvider(sessions.Token),
		api.WithAuthErrorHook(func() {
			logger.Warn("session expired, clearing local session")
			if err := sessions.Clear(); err != nil {
				logger.Error("clearing session failed", "error", err)
			}
		}),
	)

	products := cart.NewCachedProducts(client)
	cartSvc := cart.NewService(client, products, sessions, bus, logger)

	app := &Context{
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		Bus:      bus,
		API:      client,
		Products: products,
		Cart:     cartSvc,
		Wishlist: wishlist.NewService(client, bus),
		Coupons:  coupon.NewValidator(client),
		Auth:     auth.NewService(client, sessions),
		Orders:   orders.NewHistory(client, sessions),
		Admin:    admin.NewService(client, sessions),
		Gateway:  gateway.NewCallbackListener(cfg.CallbackAddr, logger),
	}

	// The cart badge count listener: re-fetch canonical state on every
	// cart change, same as the web header did.
	bus.Subscribe(events.CartUpdated, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeout)*time.Second)
		defer cancel()
		cartSvc.RefreshCount(ctx)
	})

	return app
}

// NewCheckout starts a fresh checkout session rendered through the given
// notifier and navigator.
func (c *Context) NewCheckout(notify checkout.Notifier, nav checkout.Navigator) *checkout.Checkout {
	return checkout.New(c.API, c.Cart, c.Coupons, c.Gateway, c.Sessions, notify, nav, c.Logger)
}

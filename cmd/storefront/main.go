package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/lofr-in/storefront/internal/app"
	"github.com/lofr-in/storefront/internal/config"
	"github.com/lofr-in/storefront/internal/models"
	"github.com/lofr-in/storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	appCtx := app.New(cfg, log)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, appCtx, os.Args[2:])
	case "signup":
		err = runSignup(ctx, appCtx, os.Args[2:])
	case "logout":
		err = appCtx.Auth.Logout()
	case "products":
		err = runProducts(ctx, appCtx)
	case "cart":
		err = runCart(ctx, appCtx, os.Args[2:])
	case "wishlist":
		err = runWishlist(ctx, appCtx, os.Args[2:])
	case "orders":
		err = runOrders(ctx, appCtx, os.Args[2:])
	case "checkout":
		err = runCheckout(ctx, appCtx, os.Args[2:])
	case "admin":
		err = runAdmin(ctx, appCtx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefront <command> [flags]

commands:
  login      sign in and store the session
  signup     create an account and sign in
  logout     clear the stored session
  products   list the catalog
  cart       show | add | update | remove | clear
  wishlist   show | add | remove | clear
  orders     list | get | cancel
  checkout   place an order from the current cart
  admin      coupons | orders | announcements | sales`)
}

// termUI is the terminal notifier and navigator used by checkout.
type termUI struct {
	ctx context.Context
	app *app.Context
}

func (t *termUI) Success(msg string) { fmt.Println(msg) }
func (t *termUI) Error(msg string)  { fmt.Fprintln(os.Stderr, msg) }

func (t *termUI) Navigate(route string) {
	if route != "/order" {
		return
	}
	orders, err := t.app.Orders.List(t.ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch orders: %v\n", err)
		return
	}
	printOrders(orders)
}

func runLogin(ctx context.Context, a *app.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runSignup(ctx context.Context, a *app.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	phone := fs.String("phone", "", "phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.Auth.Signup(ctx, *name, *email, *password, *phone)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome, %s\n", user.Name)
	return nil
}

func runProducts(ctx context.Context, a *app.Context) error {
	products, err := a.API.ListProducts(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSALE")
	for _, p := range products {
		sale := "-"
		if p.SalePrice != nil {
			sale = fmt.Sprintf("%.2f", *p.SalePrice)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", p.ID, p.Name, p.Price, sale)
	}
	return w.Flush()
}

func runCart(ctx context.Context, a *app.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "show":
		lines, err := a.Cart.Load(ctx)
		if err != nil {
			return err
		}
		printLines(lines)
		return nil
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		productID := fs.String("product", "", "product ID")
		qty := fs.Int("qty", 1, "quantity")
		size := fs.String("size", "", "size")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return a.Cart.Add(ctx, *productID, *qty, *size)
	case "update":
		fs := flag.NewFlagSet("cart update", flag.ExitOnError)
		productID := fs.String("product", "", "product ID")
		qty := fs.Int("qty", 1, "quantity")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if _, err := a.Cart.Load(ctx); err != nil {
			return err
		}
		return a.Cart.UpdateQuantity(ctx, *productID, *qty)
	case "remove":
		fs := flag.NewFlagSet("cart remove", flag.ExitOnError)
		productID := fs.String("product", "", "product ID")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if _, err := a.Cart.Load(ctx); err != nil {
			return err
		}
		return a.Cart.Remove(ctx, *productID)
	case "clear":
		return a.Cart.Clear(ctx)
	default:
		return fmt.Errorf("unknown cart subcommand %q", sub)
	}
}

func runWishlist(ctx context.Context, a *app.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "show":
		products, err := a.Wishlist.Load(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%s  %s  ₹%.2f\n", p.ID, p.Name, p.UnitPrice())
		}
		return nil
	case "add", "remove":
		fs := flag.NewFlagSet("wishlist "+sub, flag.ExitOnError)
		productID := fs.String("product", "", "product ID")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if sub == "add" {
			return a.Wishlist.Add(ctx, *productID)
		}
		return a.Wishlist.Remove(ctx, *productID)
	case "clear":
		return a.Wishlist.Clear(ctx)
	default:
		return fmt.Errorf("unknown wishlist subcommand %q", sub)
	}
}

func runOrders(ctx context.Context, a *app.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		orders, err := a.Orders.List(ctx)
		if err != nil {
			return err
		}
		printOrders(orders)
		return nil
	case "get":
		fs := flag.NewFlagSet("orders get", flag.ExitOnError)
		id := fs.String("id", "", "order ID")
		if err := fs.Parse(args); err != nil {
			return err
		}
		order, err := a.Orders.Get(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s  %s/%s  ₹%.2f\n",
			order.OrderNumber, order.CreatedAt, order.Status, order.PaymentStatus, order.Total)
		for _, item := range order.Items {
			fmt.Printf("  %dx %s (%s)  ₹%.2f\n", item.Quantity, item.Name, item.Size, item.Price)
		}
		return nil
	case "cancel":
		fs := flag.NewFlagSet("orders cancel", flag.ExitOnError)
		id := fs.String("id", "", "order ID")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return a.Orders.Cancel(ctx, *id)
	default:
		return fmt.Errorf("unknown orders subcommand %q", sub)
	}
}

func runCheckout(ctx context.Context, a *app.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	var addr models.ShippingAddress
	fs.StringVar(&addr.FullName, "name", "", "full name")
	fs.StringVar(&addr.AddressLine1, "address1", "", "address line 1")
	fs.StringVar(&addr.AddressLine2, "address2", "", "address line 2")
	fs.StringVar(&addr.City, "city", "", "city")
	fs.StringVar(&addr.State, "state", "", "state")
	fs.StringVar(&addr.PostalCode, "postal", "", "postal code")
	fs.StringVar(&addr.Country, "country", "", "country")
	fs.StringVar(&addr.Phone, "phone", "", "phone number")
	method := fs.String("method", models.PaymentGateway, "payment method: cod or razorpay")
	couponCode := fs.String("coupon", "", "coupon code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ui := &termUI{ctx: ctx, app: a}
	co := a.NewCheckout(ui, ui)

	if err := co.Load(ctx); err != nil {
		return err
	}
	if err := co.SubmitShipping(addr); err != nil {
		return err
	}
	if err := co.SelectPaymentMethod(*method); err != nil {
		return err
	}
	if *couponCode != "" {
		// A rejected coupon clears the discount but checkout continues.
		if _, err := co.ApplyCoupon(ctx, *couponCode); err != nil {
			a.Logger.Warn("coupon not applied", "code", *couponCode, "error", err)
		}
	}

	totals := co.Totals()
	fmt.Printf("Subtotal ₹%.2f  Discount -₹%.2f  Shipping FREE  Total ₹%.2f\n",
		totals.Subtotal, totals.Discount, totals.Total)

	return co.PlaceOrder(ctx)
}

func runAdmin(ctx context.Context, a *app.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("admin: missing subcommand")
	}

	switch args[0] {
	case "coupons":
		coupons, err := a.Admin.ListCoupons(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tTYPE\tVALUE\tMIN\tACTIVE")
		for _, c := range coupons {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%v\n",
				c.Code, c.DiscountType, c.DiscountValue, c.MinimumPurchase, c.IsActive)
		}
		return w.Flush()
	case "orders":
		orders, err := a.Admin.ListOrders(ctx)
		if err != nil {
			return err
		}
		printOrders(orders)
		return nil
	case "announcements":
		announcements, err := a.Admin.ListAnnouncements(ctx)
		if err != nil {
			return err
		}
		for _, an := range announcements {
			fmt.Printf("%s  active=%v  %s\n", an.ID, an.IsActive, an.Text)
		}
		return nil
	case "sales":
		report, err := a.Admin.SalesReport(ctx)
		if err != nil {
			return err
		}
		var total float64
		for _, o := range report.Orders {
			total += o.Total
		}
		fmt.Printf("%d orders, ₹%.2f total\n", len(report.Orders), total)
		return nil
	default:
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

func printLines(lines []models.LineItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tSIZE\tQTY\tUNIT\tLINE")
	for _, l := range lines {
		unit := l.UnitPrice()
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\n",
			l.Product.Name, l.Size, l.Quantity, unit, unit*float64(l.Quantity))
	}
	w.Flush()
}

func printOrders(orders []models.Order) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tDATE\tSTATUS\tPAYMENT\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
			o.OrderNumber, o.CreatedAt, o.Status, o.PaymentStatus, o.Total)
	}
	w.Flush()
}

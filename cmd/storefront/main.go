package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"app/internal/api"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/cartstore"
	"app/internal/infra/localstore"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/decred/slog"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type options struct {
	API      string `long:"api" description:"API base URL"`
	StateDir string `long:"state-dir" description:"Local state directory"`
	Debug    bool   `long:"debug" description:"Debug logging"`

	// pay用の入力
	Method      string `long:"method" default:"credit-card" description:"Payment method (credit-card|ideal|paypal)"`
	CardName    string `long:"card-name" description:"Cardholder name"`
	CardNumber  string `long:"card-number" description:"16-digit card number"`
	CardExpiry  string `long:"expiry" description:"Expiry MMYY"`
	CardCVV     string `long:"cvv" description:"CVV"`
	Bank        string `long:"bank" description:"iDEAL bank (abn|ing|rabo|sns|bunq)"`
	PayPalEmail string `long:"paypal-email" description:"PayPal email"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	var opts options
	args, err := flags.Parse(&opts)
	if err != nil {
		if flags.WroteHelp(err) {
			return
		}
		fail(err)
	}
	if opts.API != "" {
		cfg.APIBaseURL = opts.API
	}
	if opts.StateDir != "" {
		cfg.StateDir = opts.StateDir
	}
	if opts.Debug {
		cfg.Debug = true
	}

	backend := slog.NewBackend(os.Stderr)
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logAPI := backend.Logger("API")
	logCart := backend.Logger("CART")
	logSess := backend.Logger("SESS")
	logAPI.SetLevel(level)
	logCart.SetLevel(level)
	logSess.SetLevel(level)

	store, err := localstore.New(cfg.StateDir)
	if err != nil {
		fail(err)
	}

	client, err := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, logAPI)
	if err != nil {
		fail(err)
	}
	if err := client.RestoreCookies(store); err != nil {
		logSess.Warnf("restoring session cookies failed: %v", err)
	}

	sess := usecase.New(usecase.Params{
		API:      client,
		Guest:    cartstore.NewGuestStore(store, logCart),
		Server:   cartstore.NewServerStore(client, logCart),
		Slot:     store,
		Logger:   logSess,
		PayDelay: cfg.PayDelay,
	})

	ctx := context.Background()
	_ = sess.Start(ctx)

	runErr := run(ctx, sess, opts, args)

	if err := client.SaveCookies(store); err != nil {
		logSess.Warnf("saving session cookies failed: %v", err)
	}
	if runErr != nil {
		fail(runErr)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func run(ctx context.Context, sess *usecase.Session, opts options, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "products":
		return cmdProducts(ctx, sess)
	case "workshops":
		return cmdWorkshops(ctx, sess)
	case "workshop":
		if len(rest) < 1 {
			return fmt.Errorf("usage: workshop <id>")
		}
		return cmdWorkshop(ctx, sess, rest[0])
	case "signup":
		if len(rest) < 2 {
			return fmt.Errorf("usage: signup <email> <password> [first] [last]")
		}
		in := usecase.SignupInput{Email: rest[0], Password: rest[1]}
		if len(rest) > 2 {
			in.FirstName = rest[2]
		}
		if len(rest) > 3 {
			in.LastName = rest[3]
		}
		u, err := sess.Signup(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("account created: %s\n", u.Email)
		return nil
	case "login":
		if len(rest) < 2 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		if err := sess.Login(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		mig := sess.LastMigration()
		if mig.Attempted > 0 {
			fmt.Printf("logged in (%d/%d cart items migrated)\n", mig.Migrated, mig.Attempted)
		} else {
			fmt.Println("logged in")
		}
		return nil
	case "logout":
		sess.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "me":
		u := sess.CurrentUser()
		if u == nil {
			fmt.Println("guest (not logged in)")
			return nil
		}
		fmt.Printf("%s %s <%s>\n", deref(u.FirstName), deref(u.LastName), u.Email)
		return nil
	case "update-profile":
		if len(rest) < 2 {
			return fmt.Errorf("usage: update-profile <first> <last>")
		}
		u, err := sess.UpdateProfile(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("profile updated: %s %s\n", deref(u.FirstName), deref(u.LastName))
		return nil
	case "cart":
		return cmdCart(sess)
	case "add":
		if len(rest) < 1 {
			return fmt.Errorf("usage: add <product-id>")
		}
		return cmdAdd(ctx, sess, rest[0])
	case "qty":
		if len(rest) < 2 {
			return fmt.Errorf("usage: qty <item-id> <quantity>")
		}
		n, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("quantity must be a number")
		}
		sess.UpdateCartQuantity(ctx, rest[0], n)
		return cmdCart(sess)
	case "remove":
		if len(rest) < 1 {
			return fmt.Errorf("usage: remove <item-id>")
		}
		sess.RemoveFromCart(ctx, rest[0])
		return cmdCart(sess)
	case "clear":
		sess.ClearCart(ctx)
		fmt.Println("cart cleared")
		return nil
	case "register":
		if len(rest) < 1 {
			return fmt.Errorf("usage: register <workshop-id>")
		}
		if err := sess.RegisterWorkshop(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("registered")
		return nil
	case "cancel":
		if len(rest) < 1 {
			return fmt.Errorf("usage: cancel <workshop-id>")
		}
		if err := sess.CancelRegistration(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("registration cancelled")
		return nil
	case "enrolled":
		for _, w := range sess.EnrolledWorkshops(ctx) {
			fmt.Printf("%s\t%s\t%s\n", w.ID, w.Title, w.StartsAt.Format("2006-01-02 15:04"))
		}
		return nil
	case "orders":
		return cmdOrders(ctx, sess)
	case "checkout":
		orderID, err := sess.Checkout(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("order created: %s (pay with: storefront pay)\n", orderID)
		return nil
	case "pay":
		return cmdPay(ctx, sess, opts)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdProducts(ctx context.Context, sess *usecase.Session) error {
	products, err := sess.ProductCatalog(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Title, dollars(p.Price))
	}
	return w.Flush()
}

func cmdWorkshops(ctx context.Context, sess *usecase.Session) error {
	workshops, err := sess.Workshops(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, ws := range workshops {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d spots\n",
			ws.ID, ws.Title, ws.StartsAt.Format("2006-01-02 15:04"), ws.SpotsLeft, ws.Capacity)
	}
	return w.Flush()
}

func cmdWorkshop(ctx context.Context, sess *usecase.Session, id string) error {
	ws, err := sess.WorkshopDetail(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\nstarts: %s\nspots: %d/%d\n",
		ws.Title, ws.Description, ws.StartsAt.Format("2006-01-02 15:04"), ws.SpotsLeft, ws.Capacity)
	return nil
}

func cmdAdd(ctx context.Context, sess *usecase.Session, productID string) error {
	p, err := sess.ProductDetail(ctx, productID)
	if err != nil {
		return err
	}
	sess.AddToCart(ctx, model.ProductRef{ID: p.ID, Title: p.Title, Price: p.Price})
	return cmdCart(sess)
}

func cmdCart(sess *usecase.Session) error {
	items := sess.CartItems()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%dx %s\t%s\n", it.ID, it.Quantity, it.Title, dollars(it.Subtotal()))
	}
	fmt.Fprintf(w, "\tsubtotal\t%s\n", dollars(sess.Subtotal()))
	return w.Flush()
}

func cmdOrders(ctx context.Context, sess *usecase.Session) error {
	orders, err := sess.Orders(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Status, dollars(o.TotalPrice), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func cmdPay(ctx context.Context, sess *usecase.Session, opts options) error {
	orderID, items, ok := sess.PendingOrder()
	if !ok {
		return fmt.Errorf("no pending order (run checkout first)")
	}

	for _, it := range items {
		fmt.Printf("%dx %s\t%s\n", it.Quantity, it.Title, dollars(it.Price*it.Quantity))
	}

	details := validator.PaymentDetails{
		Method:      opts.Method,
		CardName:    opts.CardName,
		CardNumber:  strings.ReplaceAll(opts.CardNumber, " ", ""),
		CardExpiry:  strings.ReplaceAll(opts.CardExpiry, "/", ""),
		CardCVV:     opts.CardCVV,
		Bank:        opts.Bank,
		PayPalEmail: opts.PayPalEmail,
	}
	fmt.Println("processing...")
	if err := sess.PayOrder(ctx, orderID, details); err != nil {
		return err
	}
	fmt.Println("payment successful")
	return nil
}

func dollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func usage() {
	fmt.Println(`storefront commands:
  products                      list offers
  workshops                     list workshops
  workshop <id>                 workshop detail
  signup <email> <password>     create account
  login <email> <password>      log in (migrates guest cart)
  logout                        log out
  me                            current user
  update-profile <first> <last> update profile
  cart                          show cart
  add <product-id>              add product to cart
  qty <item-id> <n>             change quantity
  remove <item-id>              remove item
  clear                         clear cart
  register <workshop-id>        register for workshop
  cancel <workshop-id>          cancel registration
  enrolled                      workshops you are registered for
  orders                        list orders
  checkout                      create order from cart
  pay [--method ...]            pay the pending order`)
}

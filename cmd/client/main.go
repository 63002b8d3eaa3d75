// Package main is the interactive shell for the wellness platform
// client. It wires configuration, logging, durable storage, the API
// client and the app store together, installs the unauthorized hook,
// and drops into a command loop.
package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/zhiqi-health/wellness-client/internal/api"
	"github.com/zhiqi-health/wellness-client/internal/config"
	"github.com/zhiqi-health/wellness-client/internal/localstore"
	"github.com/zhiqi-health/wellness-client/internal/logger"
	"github.com/zhiqi-health/wellness-client/internal/models"
	"github.com/zhiqi-health/wellness-client/internal/router"
	"github.com/zhiqi-health/wellness-client/internal/store"
	"github.com/zhiqi-health/wellness-client/internal/validate"
)

var (
	version   string
	buildDate string
)

type app struct {
	store  *store.Store
	api    *api.Client
	router *router.Router
	path   string
}

// navigate runs the guard and reports where the shell ended up.
func (a *app) navigate(path string) {
	nav, err := a.router.Navigate(path)
	if err != nil {
		fmt.Println("No such page:", path)
		return
	}
	if nav.Redirected {
		fmt.Printf("Redirected from %s to %s\n", nav.From, nav.Route.Path)
	}
	a.path = nav.Route.Path
	fmt.Printf("Now at %s (%s)\n", nav.Route.Path, nav.Route.Name)
	for _, n := range a.store.UnreadNotifications() {
		fmt.Printf("[%s] %s\n", n.Kind, n.Message)
		a.store.MarkNotificationRead(n.ID)
	}
}

// handleUnauthorized sends the shell back to the login page after a
// forced logout. Already being on the login page suppresses the
// redirect.
func (a *app) handleUnauthorized() {
	if a.path == router.LoginPath {
		return
	}
	fmt.Println("Session expired, please sign in again")
	a.navigate(router.LoginPath)
}

// repl runs the interactive shell loop.
func repl(a *app) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("wellness:%s> ", a.path)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, login <user> <pass>, logout, whoami, go <path>,")
			fmt.Println("  cart [add <type> <id> <price> [qty] | rm <type> <id> | update <type> <id> <qty> | clear | list],")
			fmt.Println("  fav [add <type> <id> | rm <type> <id> | list], search <keyword>, history,")
			fmt.Println("  notices, products, exit")
		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <username> <password>")
				continue
			}
			form := validate.LoginForm{Username: args[1], Password: args[2]}
			if r := validate.ValidateLoginForm(form); !r.Valid {
				for field, msg := range r.Errors {
					fmt.Printf("%s: %s\n", field, msg)
				}
				continue
			}
			creds := models.Credentials{Username: args[1], Password: args[2]}
			if _, err := a.store.Login(context.Background(), creds); err != nil {
				fmt.Println(api.HandleError(err, "login failed, please retry"))
				continue
			}
			if user := a.store.CurrentUser(); user != nil {
				fmt.Println("Signed in as", user.Username)
			} else {
				fmt.Println("Signed in")
			}
		case "logout":
			a.store.Logout()
			fmt.Println("Signed out")
		case "whoami":
			if user := a.store.CurrentUser(); user != nil {
				fmt.Printf("%s (role: %s)\n", user.Username, a.store.UserRole())
			} else {
				fmt.Println("Not signed in")
			}
		case "go":
			if len(args) < 2 {
				fmt.Println("Usage: go <path>")
				continue
			}
			a.navigate(args[1])
		case "cart":
			cartCmd(a, args[1:])
		case "fav":
			favCmd(a, args[1:])
		case "search":
			if len(args) < 2 {
				fmt.Println("Usage: search <keyword>")
				continue
			}
			keyword := strings.Join(args[1:], " ")
			a.store.AddSearchHistory(keyword)
			resp, err := a.api.Products.List(context.Background(), url.Values{"keyword": {keyword}})
			if err != nil {
				fmt.Println(api.HandleError(err, "search failed"))
				continue
			}
			fmt.Println(string(resp.Data))
		case "history":
			for i, k := range a.store.SearchHistory() {
				fmt.Printf("%2d. %s\n", i+1, k)
			}
		case "notices":
			printNotices(a)
		case "products":
			resp, err := a.api.Products.List(context.Background(), nil)
			if err != nil {
				fmt.Println(api.HandleError(err, "could not load products"))
				continue
			}
			fmt.Println(string(resp.Data))
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func cartCmd(a *app, args []string) {
	if len(args) == 0 || args[0] == "list" {
		for _, it := range a.store.CartItems() {
			fmt.Printf("%s #%d x%d @ %.2f\n", it.Type, it.ID, it.Quantity, it.Price)
		}
		fmt.Printf("Total: %.2f (%d items)\n", a.store.CartTotal(), a.store.CartItemCount())
		return
	}
	switch args[0] {
	case "add":
		if len(args) < 4 {
			fmt.Println("Usage: cart add <type> <id> <price> [qty]")
			return
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid id:", args[2])
			return
		}
		price, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			fmt.Println("Invalid price:", args[3])
			return
		}
		if r := validate.ValidatePrice(price); !r.Valid {
			fmt.Println(r.Message)
			return
		}
		qty := 1
		if len(args) > 4 {
			if qty, err = strconv.Atoi(args[4]); err != nil {
				fmt.Println("Invalid quantity:", args[4])
				return
			}
		}
		a.store.AddToCart(models.CartItem{
			Type: models.ItemType(args[1]), ID: id, Price: price, Quantity: qty,
		})
		fmt.Printf("Cart total: %.2f\n", a.store.CartTotal())
	case "rm":
		if len(args) < 3 {
			fmt.Println("Usage: cart rm <type> <id>")
			return
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid id:", args[2])
			return
		}
		a.store.RemoveFromCart(models.ItemType(args[1]), id)
		fmt.Printf("Cart total: %.2f\n", a.store.CartTotal())
	case "update":
		if len(args) < 4 {
			fmt.Println("Usage: cart update <type> <id> <qty>")
			return
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid id:", args[2])
			return
		}
		qty, err := strconv.Atoi(args[3])
		if err != nil {
			fmt.Println("Invalid quantity:", args[3])
			return
		}
		a.store.UpdateCartItem(models.ItemType(args[1]), id, qty)
		fmt.Printf("Cart total: %.2f\n", a.store.CartTotal())
	case "clear":
		a.store.ClearCart()
		fmt.Println("Cart cleared")
	default:
		fmt.Println("Unknown cart command:", args[0])
	}
}

// printNotices lists the notification queue, newest first. Unread
// entries are starred; reading the list does not mark them read.
func printNotices(a *app) {
	notices := a.store.Notifications()
	if len(notices) == 0 {
		fmt.Println("No notifications")
		return
	}
	for _, n := range notices {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s [%s] %s\n", marker, n.Kind, n.Message)
	}
}

func favCmd(a *app, args []string) {
	if len(args) == 0 || args[0] == "list" {
		for _, fav := range a.store.Favorites() {
			fmt.Printf("%s #%d %s\n", fav.Type, fav.ID, fav.Name)
		}
		return
	}
	if len(args) < 3 {
		fmt.Println("Usage: fav add|rm <type> <id>")
		return
	}
	id, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		fmt.Println("Invalid id:", args[2])
		return
	}
	switch args[0] {
	case "add":
		a.store.AddToFavorites(models.FavoriteItem{Type: models.ItemType(args[1]), ID: id})
		fmt.Println("Favorited")
	case "rm":
		a.store.RemoveFromFavorites(models.ItemType(args[1]), id)
		fmt.Println("Removed")
	default:
		fmt.Println("Unknown fav command:", args[0])
	}
}

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	local, err := localstore.New(options.DataDir, zapLogger)
	if err != nil {
		zapLogger.Fatal("cannot init durable storage", zap.Error(err))
	}

	// The store is the API client's session source, and the auth
	// endpoints are bound back into the store for the login action.
	appStore := store.New(local, zapLogger)
	client := api.New(options.BaseURL, options.Timeout, appStore, zapLogger)
	appStore.BindAuth(client.Auth)

	nav := router.New(appStore, appStore, zapLogger)

	a := &app{store: appStore, api: client, router: nav, path: router.HomePath}

	// An expired session anywhere sends the shell back to the login
	// page, matching the platform's forced-redirect behavior.
	client.OnUnauthorized(a.handleUnauthorized)

	appStore.LoadUserData()

	zapLogger.Info("client ready",
		zap.String("base_url", options.BaseURL),
		zap.String("data_dir", options.DataDir))

	repl(a)
}

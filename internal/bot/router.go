package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/brewbot/backend/internal/domain"
	"github.com/brewbot/backend/internal/usecase"
)

// CatalogBrowser serves the freshest catalog slice, formatted for chat.
type CatalogBrowser interface {
	LatestProducts(ctx context.Context) ([]string, error)
}

// DrinkMenu serves coffee-data API lookups, formatted for chat.
type DrinkMenu interface {
	List(ctx context.Context) (string, error)
	Random(ctx context.Context) (string, error)
}

// FlavorFinder answers flavor universe and flavor search questions.
type FlavorFinder interface {
	BuildUniverse(ctx context.Context) []string
	FindByFlavors(ctx context.Context, terms []string) []string
}

// Router maps incoming chat messages to handlers. Each user is a little
// finite state machine: idle users send commands, users mid-dialog have
// their next message interpreted by the pending state.
type Router struct {
	catalog CatalogBrowser
	menu    DrinkMenu
	flavors FlavorFinder
	states  *StateStore
	logger  domain.ChatLogger
	adminID string
}

// NewRouter creates a message router. adminID is the operator user that
// suggestion-box messages are forwarded to.
func NewRouter(
	catalog CatalogBrowser,
	menu DrinkMenu,
	flavors FlavorFinder,
	states *StateStore,
	logger domain.ChatLogger,
	adminID string,
) *Router {
	return &Router{
		catalog: catalog,
		menu:    menu,
		flavors: flavors,
		states:  states,
		logger:  logger,
		adminID: adminID,
	}
}

// HandleMessage processes one incoming message and returns the full reply
// envelope. Both sides of the exchange land in the chat audit log.
func (r *Router) HandleMessage(ctx context.Context, msg domain.IncomingMessage) domain.Reply {
	r.logger.LogIncoming(msg)

	reply := r.dispatch(ctx, msg)

	for _, text := range reply.Messages {
		r.logger.LogOutgoing(msg.UserID, text)
	}
	for _, fwd := range reply.Forwards {
		r.logger.LogOutgoing(fwd.ToUserID, fwd.Text)
	}

	return reply
}

func (r *Router) dispatch(ctx context.Context, msg domain.IncomingMessage) domain.Reply {
	switch r.states.Get(msg.UserID) {
	case ModeAwaitingSuggestion:
		return r.handleSuggestionText(msg)
	case ModeAwaitingFlavorQuery:
		return r.handleFlavorQuery(ctx, msg)
	}

	switch strings.TrimSpace(msg.Text) {
	case CmdStart:
		return domain.Reply{
			Messages: []string{greeting},
			Keyboard: mainKeyboard(),
		}
	case BtnLatest:
		return r.handleLatest(ctx)
	case BtnRandom:
		return r.handleRandom(ctx)
	case BtnList:
		return r.handleList(ctx)
	case BtnTips:
		return reply(strings.Join(brewingTips, "\n"))
	case BtnAbout:
		return reply(aboutCoffee)
	case BtnSuggest:
		r.states.Set(msg.UserID, ModeAwaitingSuggestion)
		return reply("📩 Please write your suggestion or remark.")
	case BtnFlavors:
		return r.handleFlavorsPrompt(ctx, msg)
	default:
		return reply(helpText)
	}
}

func (r *Router) handleLatest(ctx context.Context) domain.Reply {
	products, err := r.catalog.LatestProducts(ctx)
	if err != nil {
		return reply("❌ Failed to reach the coffee catalog.")
	}
	if len(products) == 0 {
		return reply("ℹ️ No products found on the page.")
	}
	return domain.Reply{Messages: products}
}

func (r *Router) handleRandom(ctx context.Context) domain.Reply {
	drink, err := r.menu.Random(ctx)
	if err != nil {
		return reply("❌ Failed to get a drink from the coffee API.")
	}
	return reply(drink)
}

func (r *Router) handleList(ctx context.Context) domain.Reply {
	list, err := r.menu.List(ctx)
	if err != nil {
		return reply("❌ Failed to get the drink list from the coffee API.")
	}
	return reply(list)
}

func (r *Router) handleFlavorsPrompt(ctx context.Context, msg domain.IncomingMessage) domain.Reply {
	universe := r.flavors.BuildUniverse(ctx)
	if len(universe) == 0 {
		return reply("Couldn't get the flavor list 😔")
	}

	r.states.Set(msg.UserID, ModeAwaitingFlavorQuery)
	return domain.Reply{Messages: []string{
		"Available flavors:\n" + strings.Join(universe, ", "),
		"Enter the flavors you want, comma-separated:",
	}}
}

func (r *Router) handleFlavorQuery(ctx context.Context, msg domain.IncomingMessage) domain.Reply {
	terms := usecase.ParseQuery(msg.Text)
	if len(terms) == 0 {
		// Stay mid-dialog until something parseable arrives
		return reply("Couldn't recognize any flavors. Try again:")
	}

	r.states.Clear(msg.UserID)

	results := r.flavors.FindByFlavors(ctx, terms)
	if len(results) == 0 {
		return reply("No matches found.")
	}
	return domain.Reply{Messages: results}
}

func (r *Router) handleSuggestionText(msg domain.IncomingMessage) domain.Reply {
	r.states.Clear(msg.UserID)

	sender := msg.Username
	if sender == "" {
		sender = msg.FullName
	}
	forwarded := fmt.Sprintf("📨 New suggestion from @%s (ID: %s):\n\n%s", sender, msg.UserID, msg.Text)

	return domain.Reply{
		Messages: []string{"✅ Thanks! Your suggestion has been sent."},
		Forwards: []domain.Forward{{ToUserID: r.adminID, Text: forwarded}},
	}
}

func reply(text string) domain.Reply {
	return domain.Reply{Messages: []string{text}}
}

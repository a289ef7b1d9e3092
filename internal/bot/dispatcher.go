package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portssvc "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/services"
)

// command is one registry entry. Parsing and validation happen in run before
// the typed handler executes; handlers never see raw tokens and no error
// escapes past the reply string.
type command struct {
	// needsAccount commands short-circuit with the link prompt when the
	// chat identity is not linked yet.
	needsAccount bool
	run          func(ctx context.Context, d *Dispatcher, chatID int64, accountID string, args []string) string
}

// Dispatcher turns one inbound message into one reply string. It is
// stateless between messages; all state lives behind the injected services.
type Dispatcher struct {
	identity portssvc.IdentitySvc
	catalog  portssvc.CatalogSvc
	ledger   portssvc.LedgerSvc
	summary  portssvc.SummarySvc
	registry map[string]command
	now      func() time.Time
}

// NewDispatcher creates the command dispatcher over the service container.
func NewDispatcher(services *portssvc.ServiceContainer) *Dispatcher {
	d := &Dispatcher{
		identity: services.Identity,
		catalog:  services.Catalog,
		ledger:   services.Ledger,
		summary:  services.Summary,
		now:      time.Now,
	}
	d.registry = map[string]command{
		"/start": {needsAccount: true, run: runStatic(replyHelp)},
		"/help":  {needsAccount: true, run: runStatic(replyHelp)},
		"/link": {run: func(ctx context.Context, d *Dispatcher, chatID int64, _ string, args []string) string {
			parsed, reply := parseLinkArgs(args)
			if reply != "" {
				return reply
			}
			return d.handleLink(ctx, chatID, parsed)
		}},
		"/balance": {needsAccount: true, run: func(ctx context.Context, d *Dispatcher, _ int64, accountID string, _ []string) string {
			return d.handleBalance(ctx, accountID)
		}},
		"/categories": {needsAccount: true, run: func(ctx context.Context, d *Dispatcher, _ int64, accountID string, _ []string) string {
			return d.handleCategories(ctx, accountID)
		}},
		"/cards": {needsAccount: true, run: func(ctx context.Context, d *Dispatcher, _ int64, accountID string, _ []string) string {
			return d.handleCards(ctx, accountID)
		}},
		"/add_expense": {needsAccount: true, run: func(ctx context.Context, d *Dispatcher, _ int64, accountID string, args []string) string {
			parsed, reply := parseAddExpenseArgs(args)
			if reply != "" {
				return reply
			}
			return d.handleAddExpense(ctx, accountID, parsed)
		}},
		"/add_stock": {needsAccount: true, run: func(ctx context.Context, d *Dispatcher, _ int64, accountID string, args []string) string {
			parsed, reply := parseAddStockArgs(args)
			if reply != "" {
				return reply
			}
			return d.handleAddStock(ctx, accountID, parsed)
		}},
		"/set_budget": {needsAccount: true, run: func(ctx context.Context, d *Dispatcher, _ int64, accountID string, args []string) string {
			parsed, reply := parseSetBudgetArgs(args)
			if reply != "" {
				return reply
			}
			return d.handleSetBudget(ctx, accountID, parsed)
		}},
	}
	return d
}

func runStatic(reply string) func(context.Context, *Dispatcher, int64, string, []string) string {
	return func(context.Context, *Dispatcher, int64, string, []string) string {
		return reply
	}
}

// HandleMessage processes one raw message text for a chat identity and
// returns the reply text. It never returns an error; every downstream
// failure is converted to a fixed user-facing string here.
func (d *Dispatcher) HandleMessage(ctx context.Context, chatID int64, text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return replyNotACommand
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return replyNotACommand
	}
	name, args := tokens[0], tokens[1:]

	entry, known := d.registry[name]
	if !known {
		// Unknown commands get the help pointer even for unlinked chats.
		return replyUnknownCommand(name)
	}

	accountID := ""
	if entry.needsAccount {
		var err error
		accountID, err = d.identity.AccountForChat(ctx, chatID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return replyPleaseLink
			}
			slog.Default().Error("Failed to resolve chat link",
				slog.Int64("chat_id", chatID), slog.String("error", err.Error()))
			return replyStoreFailure
		}
	}

	return entry.run(ctx, d, chatID, accountID, args)
}

func (d *Dispatcher) handleLink(ctx context.Context, chatID int64, args linkArgs) string {
	err := d.identity.Link(ctx, chatID, args.Email)
	if err == nil {
		return replyLinked
	}

	var linked *apperrors.AlreadyLinkedError
	if errors.As(err, &linked) {
		if linked.Side == apperrors.AccountSide {
			return replyAccountSideLinked
		}
		return replyChatSideLinked
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return replyEmailNotFound
	}
	slog.Default().Error("Link failed", slog.Int64("chat_id", chatID), slog.String("error", err.Error()))
	return replyLinkFailed
}

func (d *Dispatcher) handleBalance(ctx context.Context, accountID string) string {
	monthKey := d.now().UTC().Format("2006-01")
	summary, err := d.summary.MonthlySummary(ctx, accountID, monthKey)
	if err != nil {
		slog.Default().Error("Balance failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return replyBalanceFailed
	}
	return replyBalance(summary)
}

func (d *Dispatcher) handleCategories(ctx context.Context, accountID string) string {
	categories, err := d.catalog.ListCategories(ctx, accountID, domain.CategoryExpense)
	if err != nil {
		slog.Default().Error("Category listing failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return replyCategoriesFailed
	}
	return replyCategoryList(categories)
}

func (d *Dispatcher) handleCards(ctx context.Context, accountID string) string {
	cards, err := d.catalog.ListCards(ctx, accountID)
	if err != nil {
		slog.Default().Error("Card listing failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return replyCardsFailed
	}
	return replyCardList(cards)
}

func (d *Dispatcher) handleAddExpense(ctx context.Context, accountID string, args addExpenseArgs) string {
	txn, err := d.ledger.RecordExpense(ctx, accountID, args.Amount, args.Description, args.Category, args.Card)
	if err != nil {
		if reply, handled := notFoundReply(err); handled {
			return reply
		}
		slog.Default().Error("Expense write failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return replyExpenseFailed
	}
	return replyExpenseAdded(txn.Amount, txn.Description)
}

func (d *Dispatcher) handleAddStock(ctx context.Context, accountID string, args addStockArgs) string {
	txn, err := d.ledger.RecordStockTrade(ctx, accountID, args.Symbol, args.Shares, args.Price, args.TradeType)
	if err != nil {
		if reply, handled := notFoundReply(err); handled {
			return reply
		}
		slog.Default().Error("Stock write failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return replyStockFailed
	}
	return replyStockAdded(txn.TradeType, txn.Shares, txn.Symbol, txn.PricePerShare)
}

func (d *Dispatcher) handleSetBudget(ctx context.Context, accountID string, args setBudgetArgs) string {
	budget, err := d.ledger.SetBudget(ctx, accountID, args.Category, args.Amount, args.MonthYear)
	if err != nil {
		if reply, handled := notFoundReply(err); handled {
			return reply
		}
		slog.Default().Error("Budget upsert failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return replyBudgetFailed
	}
	return replyBudgetSet(budget.Amount, args.Category, budget.MonthYear)
}

// notFoundReply maps resolver misses onto their fixed reply strings.
func notFoundReply(err error) (string, bool) {
	var nf *apperrors.NotFoundError
	if !errors.As(err, &nf) {
		return "", false
	}
	switch nf.Kind {
	case apperrors.NotFoundCategory:
		return replyCategoryNotFound(nf.Name), true
	case apperrors.NotFoundCard:
		return replyCardNotFound(nf.Name), true
	case apperrors.NotFoundStockCategory:
		return replyNoStockCategory, true
	case apperrors.NotFoundEmail:
		return replyEmailNotFound, true
	}
	return "", false
}

package bot

import (
	"fmt"
	"strings"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Fixed user-facing reply strings. Every downstream failure is converted to
// one of these at the dispatcher boundary; raw errors never reach the chat.
const (
	replyPleaseLink = "Please link your account first using: /link [your-email]"

	replyNotACommand = "I don't understand. Type /help for available commands."

	replyHelp = `*🏦 CashFlow Sync Bot*

📊 *Account Management:*
/link [email] - Link your Telegram to your account
/balance - Show your financial summary

💸 *Expense Management:*
/add_expense [amount] [description] [category] [card]
Example: /add_expense 25.50 "Morning Coffee" "Food & Dining" "Main Card"

📈 *Stock Management:*
/add_stock [symbol] [shares] [price] [buy/sell]
Example: /add_stock AAPL 10 150.25 buy

💰 *Budget Management:*
/set_budget [category] [amount] [month-year]
Example: /set_budget "Food & Dining" 500 2024-12

📋 *Information:*
/categories - List expense categories
/cards - List payment cards

💡 *Tips:*
• Use quotes for multi-word descriptions
• Category and card names are case-sensitive

Need help? Type /help anytime!`

	replyLinkUsage = "Usage: /link [your-email]\nExample: /link john@example.com"
	replyLinked    = "✅ Account linked successfully!"

	replyEmailNotFound      = "❌ Email not found. Please use the email you registered with."
	replyAccountSideLinked  = "❌ This account is already linked to another Telegram account."
	replyChatSideLinked     = "❌ This Telegram account is already linked to another user."
	replyLinkFailed         = "❌ Failed to link account. Please try again."
	replyStoreFailure       = "❌ Something went wrong. Please try again."
	replyBalanceFailed      = "❌ Failed to load your financial summary. Please try again."
	replyCategoriesFailed   = "❌ Failed to load categories. Please try again."
	replyCardsFailed        = "❌ Failed to load cards. Please try again."
	replyExpenseFailed      = "❌ Failed to add expense. Please try again."
	replyStockFailed        = "❌ Failed to add stock transaction. Please try again."
	replyBudgetFailed       = "❌ Failed to set budget. Please try again."
	replyNoStockCategory    = "❌ No stock category found. Please create a stock category first."
	replyNoCategories       = "❌ No expense categories found. Please create categories in the dashboard first."
	replyNoCards            = "❌ No cards found. Please create cards in the dashboard first."
	replyInvalidAmount      = "❌ Invalid amount. Please enter a positive number."
	replyInvalidShares      = "❌ Invalid shares amount. Please enter a positive number."
	replyInvalidPrice       = "❌ Invalid price. Please enter a positive number."
	replyInvalidTradeType   = "❌ Invalid transaction type. Use 'buy' or 'sell'."
	replyInvalidMonthFormat = "❌ Invalid month format. Use YYYY-MM (e.g., 2024-12)."

	replyAddExpenseUsage = `❌ Usage: /add_expense [amount] [description] [category] [card]

Example: /add_expense 25.50 "Morning Coffee" "Food & Dining" "Main Card"

💡 Use /categories and /cards to see available options.`

	replyAddStockUsage = `❌ Usage: /add_stock [symbol] [shares] [price] [buy/sell]

Example: /add_stock AAPL 10 150.25 buy`

	replySetBudgetUsage = `❌ Usage: /set_budget [category] [amount] [month-year]

Example: /set_budget "Food & Dining" 500 2024-12

💡 Use /categories to see available categories.`
)

func replyUnknownCommand(command string) string {
	return fmt.Sprintf("❓ Unknown command: %s\n\nType /help for available commands.", command)
}

func replyCategoryNotFound(name string) string {
	return fmt.Sprintf("❌ Category %q not found.", name)
}

func replyCardNotFound(name string) string {
	return fmt.Sprintf("❌ Card %q not found.", name)
}

func replyExpenseAdded(amount decimal.Decimal, description string) string {
	return fmt.Sprintf("✅ Expense added: $%s for %s", amount.StringFixed(2), description)
}

func replyStockAdded(tradeType domain.TradeType, shares decimal.Decimal, symbol string, price decimal.Decimal) string {
	return fmt.Sprintf("✅ Stock transaction added: %s %s shares of %s at $%s",
		strings.ToUpper(string(tradeType)), shares.String(), symbol, price.StringFixed(2))
}

func replyBudgetSet(amount decimal.Decimal, category, monthYear string) string {
	return fmt.Sprintf("✅ Budget set: $%s for %s in %s", amount.StringFixed(2), category, monthYear)
}

func replyBalance(summary *domain.FinancialSummary) string {
	return fmt.Sprintf(`💰 *Your Financial Summary:*

💸 This Month's Expenses: $%s
📊 Stock Portfolio Value: $%s
📈 Net Worth: $%s`,
		summary.TotalExpenses.StringFixed(2),
		summary.PortfolioValue.StringFixed(2),
		summary.NetWorth.StringFixed(2))
}

func replyCategoryList(categories []domain.Category) string {
	if len(categories) == 0 {
		return replyNoCategories
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = "• " + c.Name
	}
	return "📋 *Available Expense Categories:*\n\n" + strings.Join(names, "\n")
}

func replyCardList(cards []domain.Card) string {
	if len(cards) == 0 {
		return replyNoCards
	}
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = "• " + c.Name
	}
	return "💳 *Available Cards:*\n\n" + strings.Join(names, "\n")
}

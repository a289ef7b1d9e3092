package bot

import (
	"reflect"
	"regexp"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// monthKeyRe is the accepted shape for month arguments.
var monthKeyRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// validate checks the typed argument structs. Decimal fields are exposed to
// the validator as float64 so numeric tags like gt=0 apply.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// One argument struct per command. Each is fully validated before its
// handler runs; handlers never see raw tokens.

type linkArgs struct {
	Email string `validate:"required"`
}

type addExpenseArgs struct {
	Amount      decimal.Decimal `validate:"gt=0"`
	Description string          `validate:"required"`
	Category    string          `validate:"required"`
	Card        string          `validate:"required"`
}

type addStockArgs struct {
	Symbol    string           `validate:"required"`
	Shares    decimal.Decimal  `validate:"gt=0"`
	Price     decimal.Decimal  `validate:"gt=0"`
	TradeType domain.TradeType
}

type setBudgetArgs struct {
	Category  string          `validate:"required"`
	Amount    decimal.Decimal `validate:"gt=0"`
	MonthYear string          `validate:"required"`
}

// fieldReply maps one failing validated field to its fixed reply text.
func fieldReply(err error, replies map[string]string, fallback string) string {
	var verrs validator.ValidationErrors
	if ok := errorsAs(err, &verrs); ok {
		for _, fe := range verrs {
			if reply, found := replies[fe.Field()]; found {
				return reply
			}
		}
	}
	return fallback
}

// errorsAs is a tiny shim so fieldReply stays readable.
func errorsAs(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// parseLinkArgs expects exactly one argument: the registered email.
func parseLinkArgs(args []string) (linkArgs, string) {
	if len(args) != 1 {
		return linkArgs{}, replyLinkUsage
	}
	parsed := linkArgs{Email: args[0]}
	if err := validate.Struct(parsed); err != nil {
		return linkArgs{}, replyLinkUsage
	}
	return parsed, ""
}

func parseAddExpenseArgs(args []string) (addExpenseArgs, string) {
	if len(args) < 4 {
		return addExpenseArgs{}, replyAddExpenseUsage
	}
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return addExpenseArgs{}, replyInvalidAmount
	}
	parsed := addExpenseArgs{
		Amount:      amount,
		Description: args[1],
		Category:    args[2],
		Card:        args[3],
	}
	if err := validate.Struct(parsed); err != nil {
		return addExpenseArgs{}, fieldReply(err, map[string]string{
			"Amount": replyInvalidAmount,
		}, replyAddExpenseUsage)
	}
	return parsed, ""
}

func parseAddStockArgs(args []string) (addStockArgs, string) {
	if len(args) != 4 {
		return addStockArgs{}, replyAddStockUsage
	}
	shares, err := decimal.NewFromString(args[1])
	if err != nil {
		return addStockArgs{}, replyInvalidShares
	}
	price, err := decimal.NewFromString(args[2])
	if err != nil {
		return addStockArgs{}, replyInvalidPrice
	}
	tradeType, ok := domain.ParseTradeType(args[3])
	if !ok {
		return addStockArgs{}, replyInvalidTradeType
	}
	parsed := addStockArgs{
		Symbol:    args[0],
		Shares:    shares,
		Price:     price,
		TradeType: tradeType,
	}
	if err := validate.Struct(parsed); err != nil {
		return addStockArgs{}, fieldReply(err, map[string]string{
			"Shares": replyInvalidShares,
			"Price":  replyInvalidPrice,
		}, replyAddStockUsage)
	}
	return parsed, ""
}

func parseSetBudgetArgs(args []string) (setBudgetArgs, string) {
	if len(args) < 3 {
		return setBudgetArgs{}, replySetBudgetUsage
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return setBudgetArgs{}, replyInvalidAmount
	}
	if !monthKeyRe.MatchString(args[2]) {
		return setBudgetArgs{}, replyInvalidMonthFormat
	}
	parsed := setBudgetArgs{
		Category:  args[0],
		Amount:    amount,
		MonthYear: args[2],
	}
	if err := validate.Struct(parsed); err != nil {
		return setBudgetArgs{}, fieldReply(err, map[string]string{
			"Amount": replyInvalidAmount,
		}, replySetBudgetUsage)
	}
	return parsed, ""
}

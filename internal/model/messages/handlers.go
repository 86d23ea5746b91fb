package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/grocery-bot/internal/clients/cache"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
	"max.ks1230/grocery-bot/internal/entity/user"
	"max.ks1230/grocery-bot/internal/logger"
	"max.ks1230/grocery-bot/internal/model/birthday"
	"max.ks1230/grocery-bot/internal/model/budget"
	"max.ks1230/grocery-bot/internal/model/price"
	"max.ks1230/grocery-bot/internal/model/storage"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am GroceryRoute bot 🛒"
	loveToTalkMessage     = "I would love to talk about it more!"
	emptyListMessage      = "Your grocery list is empty"
	noBirthdayMessage     = "I don't know your birthday yet. Tell me with /birthday dd.mm [name]"
	defaultName           = "friend"
	reportRequestedMessage = "Preparing your report, it will arrive shortly"
	reportsOffMessage     = "Reports are not available right now"

	incorrectUsageMessage    = "That is an incorrect command usage"
	incorrectPriceMessage    = "Your price is incorrect"
	incorrectQuantityMessage = "The quantity should be a positive whole number"
	incorrectIDMessage       = "The item id should be a number from /list"
	incorrectBirthdayMessage = "The date is incorrect. Should be dd.mm"
	cannotGetItemsMessage    = "Can't get your list atm. Try later"
	cannotSaveItemMessage    = "Can't save your list atm. Try later"
	cannotGetUserMessage     = "Can't get your settings atm. Try later"
	cannotSaveUserMessage    = "Can't save your settings atm. Try later"
	cannotRequestReport      = "Can't request a report atm. Try later"
)

const (
	startCommand      = "/start"
	addCommand        = "/add"
	buyCommand        = "/buy"
	removeCommand     = "/remove"
	listCommand       = "/list"
	budgetCommand     = "/budget"
	currencyCommand   = "/currency"
	currenciesCommand = "/currencies"
	splitCommand      = "/split"
	birthdayCommand   = "/birthday"
	reportCommand     = "/report"
)

const helpMessage = "" +
	"/add <name> <price> [qty] [category] - add an item, price in USD\n" +
	"/buy <id> - mark an item purchased or not\n" +
	"/remove <id> - remove an item\n" +
	"/list - show your list\n" +
	"/budget - how much is spent and left\n" +
	"/currency [code] - show or change your currency\n" +
	"/currencies - supported currencies\n" +
	"/split <people> - split what is left to buy\n" +
	"/birthday [dd.mm] [name] - birthday countdown\n" +
	"/report - detailed report"

type itemsStorage interface {
	GetUserByID(ctx context.Context, userID int64) (user.Record, error)
	SaveUserByID(ctx context.Context, userID int64, rec user.Record) error
	AddItem(ctx context.Context, userID int64, item grocery.Item) (int64, error)
	GetUserItems(ctx context.Context, userID int64) ([]grocery.Item, error)
	ToggleItem(ctx context.Context, userID, itemID int64) (grocery.Item, error)
	RemoveItem(ctx context.Context, userID, itemID int64) error
}

type budgetCache interface {
	GetBudget(userID int64, curr currency.Code) (string, error)
	CacheBudget(userID int64, curr currency.Code, text string) error
	InvalidateBudget(userID int64) error
}

type reportRequester interface {
	RequestReport(ctx context.Context, userID int64, curr currency.Code) error
}

type config interface {
	DefaultCurrency() currency.Code
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap     handlerMap
	storage         itemsStorage
	converter       *price.Converter
	formatter       *price.Formatter
	cache           budgetCache
	requester       reportRequester
	defaultCurrency currency.Code
	now             func() time.Time
}

func newHandler(deps Deps, config config) *HandlerService {
	res := &HandlerService{
		storage:         deps.Storage,
		converter:       deps.Converter,
		formatter:       price.NewFormatter(deps.Converter),
		cache:           deps.Cache,
		requester:       deps.Requester,
		defaultCurrency: config.DefaultCurrency(),
		now:             time.Now,
	}
	if res.cache == nil {
		res.cache = cache.Nop{}
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[addCommand] = s.handleAdd
	m[buyCommand] = s.handleBuy
	m[removeCommand] = s.handleRemove
	m[listCommand] = s.handleList
	m[budgetCommand] = s.handleBudget
	m[currencyCommand] = s.handleCurrency
	m[currenciesCommand] = s.handleCurrencies
	m[splitCommand] = s.handleSplit
	m[birthdayCommand] = s.handleBirthday
	m[reportCommand] = s.handleReport

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if !ok {
		return dontUnderstandMessage, nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "command")
	defer span.Finish()
	span.SetTag("command", cmd)

	return handler(ctx, arg, userID)
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage + "\n\n" + helpMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 || len(args) > 4 {
		return incorrectUsageMessage, nil
	}

	amount, err := decimal.NewFromString(args[1])
	if err != nil || amount.IsNegative() {
		return incorrectPriceMessage, nil
	}
	item := grocery.Item{
		Name:     args[0],
		Quantity: 1,
		Price:    amount,
		Category: grocery.Other,
		Created:  s.now(),
	}
	if len(args) > 2 {
		item.Quantity, err = strconv.Atoi(args[2])
		if err != nil || item.Quantity < 1 {
			return incorrectQuantityMessage, nil
		}
	}
	if len(args) > 3 {
		item.Category = grocery.ParseCategory(args[3])
	}

	id, err := s.storage.AddItem(ctx, userID, item)
	if err != nil {
		return cannotSaveItemMessage, errors.Wrap(err, "handle add")
	}
	s.invalidate(userID)

	return fmt.Sprintf("Added #%d %s x%d (%s)", id, item.Name, item.Quantity, item.Category), nil
}

func (s *HandlerService) handleBuy(ctx context.Context, arg string, userID int64) (string, error) {
	itemID, err := parseItemID(arg)
	if err != nil {
		return incorrectIDMessage, nil
	}

	item, err := s.storage.ToggleItem(ctx, userID, itemID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Sprintf("There is no item #%d", itemID), nil
	}
	if err != nil {
		return cannotSaveItemMessage, errors.Wrap(err, "handle buy")
	}
	s.invalidate(userID)

	if item.Purchased {
		return fmt.Sprintf("%s is purchased ✅", item.Name), nil
	}
	return fmt.Sprintf("%s is back on the list", item.Name), nil
}

func (s *HandlerService) handleRemove(ctx context.Context, arg string, userID int64) (string, error) {
	itemID, err := parseItemID(arg)
	if err != nil {
		return incorrectIDMessage, nil
	}

	err = s.storage.RemoveItem(ctx, userID, itemID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Sprintf("There is no item #%d", itemID), nil
	}
	if err != nil {
		return cannotSaveItemMessage, errors.Wrap(err, "handle remove")
	}
	s.invalidate(userID)

	return fmt.Sprintf("Removed #%d", itemID), nil
}

func (s *HandlerService) handleList(ctx context.Context, _ string, userID int64) (string, error) {
	curr, err := s.userCurrency(ctx, userID)
	if err != nil {
		return cannotGetUserMessage, errors.Wrap(err, "handle list")
	}
	items, err := s.storage.GetUserItems(ctx, userID)
	if err != nil {
		return cannotGetItemsMessage, errors.Wrap(err, "handle list")
	}
	if len(items) == 0 {
		return emptyListMessage, nil
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		cost, err := s.formatter.Format(item.Cost(), curr)
		if err != nil {
			return cannotGetItemsMessage, errors.Wrap(err, "handle list")
		}
		lines = append(lines, formatItem(item, cost))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleBudget(ctx context.Context, _ string, userID int64) (string, error) {
	curr, err := s.userCurrency(ctx, userID)
	if err != nil {
		return cannotGetUserMessage, errors.Wrap(err, "handle budget")
	}

	text, err := s.cache.GetBudget(userID, curr)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Warn("budget cache is unavailable", zap.Error(err))
	}

	items, err := s.storage.GetUserItems(ctx, userID)
	if err != nil {
		return cannotGetItemsMessage, errors.Wrap(err, "handle budget")
	}
	text, err = s.budgetText(budget.Summarize(items), curr)
	if err != nil {
		return cannotGetItemsMessage, errors.Wrap(err, "handle budget")
	}

	if err = s.cache.CacheBudget(userID, curr, text); err != nil {
		logger.Warn("cannot cache budget", zap.Error(err))
	}
	return text, nil
}

func (s *HandlerService) budgetText(summary budget.Summary, curr currency.Code) (string, error) {
	amounts := make([]string, 0, 3)
	for _, val := range []decimal.Decimal{summary.TotalCost, summary.PurchasedCost, summary.RemainingCost} {
		text, err := s.formatter.Format(val, curr)
		if err != nil {
			return "", err
		}
		amounts = append(amounts, text)
	}
	return fmt.Sprintf(
		"Budget in %s\nPurchased %d of %d items (%d%%)\nTotal: %s\nSpent: %s\nLeft: %s",
		curr, summary.PurchasedItems, summary.TotalItems, summary.CompletionPercent(),
		amounts[0], amounts[1], amounts[2],
	), nil
}

func (s *HandlerService) handleCurrency(ctx context.Context, arg string, userID int64) (string, error) {
	userRec, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return cannotGetUserMessage, errors.Wrap(err, "handle currency")
	}

	if strings.TrimSpace(arg) == "" {
		return fmt.Sprintf("Your currency is %s", userRec.PreferredCurrencyOrDefault(s.defaultCurrency)), nil
	}

	curr, err := currency.Parse(arg)
	if err != nil {
		return fmt.Sprintf("Unknown currency. Supported: %s", supportedCodes()), nil
	}

	userRec.SetPreferredCurrency(curr)
	err = s.storage.SaveUserByID(ctx, userID, userRec)
	if err != nil {
		return cannotSaveUserMessage, errors.Wrap(err, "handle currency")
	}
	s.invalidate(userID)

	return fmt.Sprintf("Now showing prices in %s", curr), nil
}

func (s *HandlerService) handleCurrencies(_ context.Context, _ string, _ int64) (string, error) {
	lines := make([]string, 0, len(currency.Codes))
	for _, code := range currency.Codes {
		info, err := currency.Lookup(code)
		if err != nil {
			return "", errors.Wrap(err, "handle currencies")
		}
		lines = append(lines, fmt.Sprintf("%s %s %s, %s per %s",
			info.Code, info.Symbol, info.Name, info.ExchangeRate.StringFixed(2), currency.Base))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleSplit(ctx context.Context, arg string, userID int64) (string, error) {
	members := parseMembers(arg)
	if len(members) == 0 {
		return incorrectUsageMessage, nil
	}

	curr, err := s.userCurrency(ctx, userID)
	if err != nil {
		return cannotGetUserMessage, errors.Wrap(err, "handle split")
	}
	items, err := s.storage.GetUserItems(ctx, userID)
	if err != nil {
		return cannotGetItemsMessage, errors.Wrap(err, "handle split")
	}

	remaining, err := s.converter.Convert(budget.Summarize(items).RemainingCost, currency.Base, curr)
	if err != nil {
		return cannotGetItemsMessage, errors.Wrap(err, "handle split")
	}
	shares, err := budget.SplitEqually(remaining, members, s.now())
	if err != nil {
		return incorrectUsageMessage, errors.Wrap(err, "handle split")
	}

	lines := make([]string, 0, len(shares))
	for _, share := range shares {
		text, err := s.formatter.Render(share.Amount, curr)
		if err != nil {
			return cannotGetItemsMessage, errors.Wrap(err, "handle split")
		}
		lines = append(lines, fmt.Sprintf("%s: %s", share.Member.Name, text))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleBirthday(ctx context.Context, arg string, userID int64) (string, error) {
	userRec, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return cannotGetUserMessage, errors.Wrap(err, "handle birthday")
	}

	if args := strings.Fields(arg); len(args) > 0 {
		day, month, err := parseDayMonth(args[0])
		if err != nil {
			return incorrectBirthdayMessage, nil
		}
		if _, err = birthday.Check(day, month, s.now()); err != nil {
			return incorrectBirthdayMessage, nil
		}
		userRec.BirthDay, userRec.BirthMonth = day, month
		if len(args) > 1 {
			userRec.FullName = strings.Join(args[1:], " ")
		}
		if err = s.storage.SaveUserByID(ctx, userID, userRec); err != nil {
			return cannotSaveUserMessage, errors.Wrap(err, "handle birthday")
		}
	}

	if !userRec.HasBirthday() {
		return noBirthdayMessage, nil
	}
	notice, err := birthday.Check(userRec.BirthDay, userRec.BirthMonth, s.now())
	if err != nil {
		return incorrectBirthdayMessage, errors.Wrap(err, "handle birthday")
	}

	name := userRec.FullName
	if name == "" {
		name = defaultName
	}
	if text := notice.Message(name); text != "" {
		return text, nil
	}
	return fmt.Sprintf("%d days until your birthday", notice.DaysUntil), nil
}

func (s *HandlerService) handleReport(ctx context.Context, _ string, userID int64) (string, error) {
	if s.requester == nil {
		return reportsOffMessage, nil
	}
	curr, err := s.userCurrency(ctx, userID)
	if err != nil {
		return cannotGetUserMessage, errors.Wrap(err, "handle report")
	}
	if err = s.requester.RequestReport(ctx, userID, curr); err != nil {
		return cannotRequestReport, errors.Wrap(err, "handle report")
	}
	return reportRequestedMessage, nil
}

func (s *HandlerService) userCurrency(ctx context.Context, userID int64) (currency.Code, error) {
	userRec, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return userRec.PreferredCurrencyOrDefault(s.defaultCurrency), nil
}

// invalidate only logs; a stale entry expires with its TTL.
func (s *HandlerService) invalidate(userID int64) {
	if err := s.cache.InvalidateBudget(userID); err != nil {
		logger.Warn("cannot invalidate budget cache", zap.Int64("userID", userID), zap.Error(err))
	}
}

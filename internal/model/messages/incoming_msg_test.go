package messages

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/clients/cache"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/model/messages/mock"
	"max.ks1230/grocery-bot/internal/model/price"
	"max.ks1230/grocery-bot/internal/model/rates"
	"max.ks1230/grocery-bot/internal/model/storage"
)

const userID = int64(123)

type defaultCurrency currency.Code

func (c defaultCurrency) DefaultCurrency() currency.Code {
	return currency.Code(c)
}

type memCache struct {
	texts       map[currency.Code]string
	invalidated int
}

func (c *memCache) GetBudget(_ int64, curr currency.Code) (string, error) {
	text, ok := c.texts[curr]
	if !ok {
		return "", cache.ErrMiss
	}
	return text, nil
}

func (c *memCache) CacheBudget(_ int64, curr currency.Code, text string) error {
	c.texts[curr] = text
	return nil
}

func (c *memCache) InvalidateBudget(int64) error {
	c.invalidated++
	c.texts = make(map[currency.Code]string)
	return nil
}

type chat struct {
	t       *testing.T
	model   *Service
	replies []string
}

func newChat(t *testing.T, deps Deps) *chat {
	m := minimock.NewController(t)
	sender := mock.NewMessageSenderMock(m)

	c := &chat{t: t}
	sender.SendMessageMock.Set(func(text string, id int64) error {
		assert.Equal(t, userID, id)
		c.replies = append(c.replies, text)
		return nil
	})

	if deps.Storage == nil {
		deps.Storage = storage.NewInMemStorage()
	}
	deps.Converter = price.NewConverter(rates.StaticProvider{})
	c.model = NewService(sender, deps, defaultCurrency(currency.USD))
	c.model.handler.(*HandlerService).now = func() time.Time {
		return time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	}
	return c
}

// say sends text and returns the bot's last reply.
func (c *chat) say(text string) string {
	err := c.model.HandleIncomingMessage(context.Background(), Message{Text: text, UserID: userID})
	require.NoError(c.t, err)
	require.NotEmpty(c.t, c.replies)
	return c.replies[len(c.replies)-1]
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	c := newChat(t, Deps{})
	assert.Contains(t, c.say("/start"), "Hello! I am GroceryRoute bot 🛒")
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	c := newChat(t, Deps{})
	assert.Equal(t, "I don't understand you :(", c.say("/none"))
	assert.Equal(t, "I would love to talk about it more!", c.say("hello"))
}

func Test_OnBudget_ShouldSummarizeTwoItems(t *testing.T) {
	c := newChat(t, Deps{})

	assert.Equal(t, "Added #1 Milk x2 (dairy)", c.say("/add Milk 1.5 2 dairy"))
	assert.Equal(t, "Added #2 Bread x1 (other)", c.say("/add Bread 2"))
	assert.Equal(t, "Milk is purchased ✅", c.say("/buy 1"))

	assert.Equal(t,
		"Budget in USD\nPurchased 1 of 2 items (50%)\nTotal: $5.00\nSpent: $3.00\nLeft: $2.00",
		c.say("/budget"))

	assert.Equal(t, "Milk is back on the list", c.say("/buy #1"))
	assert.Equal(t, "There is no item #9", c.say("/buy 9"))
	assert.Equal(t, "Removed #2", c.say("/remove 2"))
	assert.Contains(t, c.say("/budget"), "Purchased 0 of 1 items (0%)")
}

func Test_OnBudget_ShouldReportEmptyList(t *testing.T) {
	c := newChat(t, Deps{})
	assert.Equal(t,
		"Budget in USD\nPurchased 0 of 0 items (0%)\nTotal: $0.00\nSpent: $0.00\nLeft: $0.00",
		c.say("/budget"))
}

func Test_OnAdd_ShouldRejectBadInput(t *testing.T) {
	c := newChat(t, Deps{})

	assert.Equal(t, incorrectUsageMessage, c.say("/add Milk"))
	assert.Equal(t, incorrectPriceMessage, c.say("/add Milk cheap"))
	assert.Equal(t, incorrectPriceMessage, c.say("/add Milk -1"))
	assert.Equal(t, incorrectQuantityMessage, c.say("/add Milk 1 0"))
	assert.Equal(t, emptyListMessage, c.say("/list"))
}

func Test_OnCurrency_ShouldShowPricesInPreferredCurrency(t *testing.T) {
	c := newChat(t, Deps{})

	c.say("/add Tea 10 1 beverages")
	assert.Equal(t, "Your currency is USD", c.say("/currency"))
	assert.Equal(t, "⬜ #1 Tea x1 (beverages) $10.00", c.say("/list"))

	assert.Equal(t, "Now showing prices in INR", c.say("/currency inr"))
	assert.Equal(t, "⬜ #1 Tea x1 (beverages) ₹830.00", c.say("/list"))

	assert.Equal(t, "Unknown currency. Supported: USD, EUR, GBP, INR", c.say("/currency JPY"))
	assert.Equal(t, "Your currency is INR", c.say("/currency"))
}

func Test_OnCurrencies_ShouldListTable(t *testing.T) {
	c := newChat(t, Deps{})
	assert.Equal(t,
		"USD $ US Dollar, 1.00 per USD\n"+
			"EUR € Euro, 0.85 per USD\n"+
			"GBP £ British Pound, 0.73 per USD\n"+
			"INR ₹ Indian Rupee, 83.00 per USD",
		c.say("/currencies"))
}

func Test_OnBudget_ShouldUseCacheUntilListChanges(t *testing.T) {
	mc := &memCache{texts: map[currency.Code]string{}}
	c := newChat(t, Deps{Cache: mc})

	c.say("/add Milk 1")
	assert.Equal(t, 1, mc.invalidated)

	first := c.say("/budget")
	assert.Equal(t, first, mc.texts[currency.USD])

	mc.texts[currency.USD] = "cached"
	assert.Equal(t, "cached", c.say("/budget"))

	c.say("/buy 1")
	assert.Equal(t, 2, mc.invalidated)
	assert.Contains(t, c.say("/budget"), "(100%)")
}

func Test_OnSplit_ShouldDivideRemainingCost(t *testing.T) {
	c := newChat(t, Deps{})
	c.say("/add Cheese 10")

	assert.Equal(t, "Person 1: $3.34\nPerson 2: $3.33\nPerson 3: $3.33", c.say("/split 3"))
	assert.Equal(t, "Ann: $5.00\nBob: $5.00", c.say("/split Ann Bob"))
	assert.Equal(t, incorrectUsageMessage, c.say("/split"))
	assert.Equal(t, incorrectUsageMessage, c.say("/split 0"))
}

func Test_OnBirthday_ShouldCountDays(t *testing.T) {
	c := newChat(t, Deps{})

	assert.Equal(t, noBirthdayMessage, c.say("/birthday"))
	assert.Equal(t, incorrectBirthdayMessage, c.say("/birthday 31.02"))
	assert.Equal(t, incorrectBirthdayMessage, c.say("/birthday tomorrow"))

	assert.Equal(t,
		"🎂 Ann's birthday is tomorrow! Don't forget to get cake ingredients!",
		c.say("/birthday 02.01 Ann"))
	assert.Equal(t, "📅 Ann's birthday is coming up in 30 days.", c.say("/birthday 31.01"))
	assert.Equal(t, "58 days until your birthday", c.say("/birthday 28.02"))
}

func Test_OnReport_ShouldRequestReportInUserCurrency(t *testing.T) {
	m := minimock.NewController(t)
	requester := mock.NewReportRequesterMock(m)
	requester.RequestReportMock.
		Inspect(func(_ context.Context, id int64, curr currency.Code) {
			assert.Equal(m, userID, id)
			assert.Equal(m, currency.GBP, curr)
		}).
		Return(nil)

	c := newChat(t, Deps{Requester: requester})
	c.say("/currency gbp")
	assert.Equal(t, reportRequestedMessage, c.say("/report"))
}

func Test_OnReport_ShouldApologizeWhenKafkaFails(t *testing.T) {
	m := minimock.NewController(t)
	requester := mock.NewReportRequesterMock(m)
	requester.RequestReportMock.Return(errors.New("broker is down"))

	c := newChat(t, Deps{Requester: requester})
	err := c.model.HandleIncomingMessage(context.Background(), Message{Text: "/report", UserID: userID})
	assert.Error(t, err)
	assert.Equal(t, "Sorry, something wrong happened...\n"+cannotRequestReport, c.replies[0])
}

func Test_OnReport_ShouldTellWhenReportsAreDisabled(t *testing.T) {
	c := newChat(t, Deps{})
	assert.Equal(t, reportsOffMessage, c.say("/report"))
}

func Test_AcceptReport_ShouldSendFormattedReport(t *testing.T) {
	c := newChat(t, Deps{})

	err := c.model.AcceptReport(context.Background(), &api.Report{
		UserID:            userID,
		Currency:          "EUR",
		TotalItems:        2,
		PurchasedItems:    1,
		CompletionPercent: 50,
		TotalCost:         "€4.25",
		PurchasedCost:     "€2.55",
		RemainingCost:     "€1.70",
		Categories:        []api.CategoryLine{{Category: "other", Remaining: "€1.70"}},
		Success:           true,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Report in EUR\nPurchased 1 of 2 items (50%)\nTotal: €4.25\nSpent: €2.55\nLeft: €1.70\n\nLeft by category:\nother: €1.70",
		c.replies[0])

	require.NoError(t, c.model.AcceptReport(context.Background(), &api.Report{UserID: userID, Error: "unknown currency"}))
	assert.Equal(t, "Sorry, your report failed: unknown currency", c.replies[1])
}

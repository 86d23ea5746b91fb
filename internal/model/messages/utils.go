package messages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
	"max.ks1230/grocery-bot/internal/model/budget"
)

const (
	commandParts = 2
	maxSplitters = 50
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func parseItemID(arg string) (int64, error) {
	return strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(arg), "#"), 10, 64)
}

// parseDayMonth accepts dd.mm; the range check is left to birthday.Check.
func parseDayMonth(arg string) (day, month int, err error) {
	parts := strings.Split(arg, ".")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("expected dd.mm, got %q", arg)
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse day")
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse month")
	}
	return day, month, nil
}

// parseMembers takes either a head count or a list of names.
func parseMembers(arg string) []budget.Member {
	fields := strings.Fields(arg)
	if len(fields) == 1 {
		if n, err := strconv.Atoi(fields[0]); err == nil {
			if n < 1 || n > maxSplitters {
				return nil
			}
			members := make([]budget.Member, 0, n)
			for i := 1; i <= n; i++ {
				members = append(members, budget.Member{Name: fmt.Sprintf("Person %d", i)})
			}
			return members
		}
	}
	if len(fields) > maxSplitters {
		return nil
	}

	members := make([]budget.Member, 0, len(fields))
	for _, name := range fields {
		members = append(members, budget.Member{Name: name})
	}
	return members
}

func formatItem(item grocery.Item, cost string) string {
	mark := "⬜"
	if item.Purchased {
		mark = "✅"
	}
	return fmt.Sprintf("%s #%d %s x%d (%s) %s", mark, item.ID, item.Name, item.Quantity, item.Category, cost)
}

func supportedCodes() string {
	codes := make([]string, 0, len(currency.Codes))
	for _, code := range currency.Codes {
		codes = append(codes, code.String())
	}
	return strings.Join(codes, ", ")
}

func formatReport(report *api.Report) string {
	if !report.Success {
		return "Sorry, your report failed: " + report.Error
	}

	res := []string{
		fmt.Sprintf("Report in %s", report.Currency),
		fmt.Sprintf("Purchased %d of %d items (%d%%)", report.PurchasedItems, report.TotalItems, report.CompletionPercent),
		fmt.Sprintf("Total: %s", report.TotalCost),
		fmt.Sprintf("Spent: %s", report.PurchasedCost),
		fmt.Sprintf("Left: %s", report.RemainingCost),
	}
	if len(report.Categories) > 0 {
		res = append(res, "", "Left by category:")
	}
	for _, line := range report.Categories {
		res = append(res, fmt.Sprintf("%s: %s", line.Category, line.Remaining))
	}
	return strings.Join(res, "\n")
}

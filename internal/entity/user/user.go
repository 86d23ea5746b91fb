package user

import "max.ks1230/grocery-bot/internal/entity/currency"

type Record struct {
	FullName          string
	BirthDay          int
	BirthMonth        int
	preferredCurrency currency.Code
}

func (r *Record) PreferredCurrency() currency.Code {
	return r.preferredCurrency
}

func (r *Record) PreferredCurrencyOrDefault(def currency.Code) currency.Code {
	if r.preferredCurrency != "" {
		return r.preferredCurrency
	}
	return def
}

func (r *Record) SetPreferredCurrency(curr currency.Code) {
	r.preferredCurrency = curr
}

func (r *Record) HasBirthday() bool {
	return r.BirthDay != 0 && r.BirthMonth != 0
}

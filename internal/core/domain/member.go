package domain

import "github.com/govalues/decimal"

type Member struct {
	ID  uint64
	UID string
}

// Account is a member's balance in a single currency. Balance is the available
// part, Locked the part reserved against pending orders.
type Account struct {
	MemberID uint64
	Currency string
	Balance  decimal.Decimal
	Locked   decimal.Decimal
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	ID        int64
	CreatedAt time.Time
	Title     string
	Price     decimal.Decimal
}

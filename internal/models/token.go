package models

import (
	"time"
)

// Token issued by TokenManager
// Value is the signed compact form that should be sent as 'Bearer' credential
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

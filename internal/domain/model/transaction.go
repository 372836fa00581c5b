package model

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

// TransactionInput carries the raw, unvalidated transaction fields as they
// arrive from a transport.
type TransactionInput struct {
	Amount     string
	MerchantID string
	CustomerID string
	Location   string
	DeviceID   string
	IPAddress  string
	Timestamp  string
}

// Transaction is a validated, immutable payment transaction submitted for
// scoring. It is never persisted.
type Transaction struct {
	timestamp  time.Time
	amount     decimal.Decimal
	merchantID string
	customerID string
	location   string
	deviceID   string
	ipAddress  string
	tier       valueobject.Tier
}

// Amount bounds.
const (
	maxAmountLen      = 40
	minAmountExponent = -18
	maxAmountExponent = 18
)

// NewTransaction validates the input and builds a Transaction. The amount is
// required and must be a non-negative decimal; timestamp and ipAddress are
// checked only when present.
func NewTransaction(in TransactionInput) (Transaction, error) {
	raw := strings.TrimSpace(in.Amount)
	if raw == "" {
		return Transaction{}, &InvalidInputError{Field: "amount", Reason: "amount is required"}
	}
	if len(raw) > maxAmountLen {
		return Transaction{}, &InvalidInputError{
			Field:  "amount",
			Reason: fmt.Sprintf("amount must be at most %d characters", maxAmountLen),
		}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Transaction{}, &InvalidInputError{
			Field:  "amount",
			Reason: fmt.Sprintf("%q is not a decimal number", in.Amount),
		}
	}
	// Comparisons rescale to a common exponent, so an unbounded exponent
	// turns tier selection into an arbitrarily large big.Int.
	if exp := amount.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return Transaction{}, &InvalidInputError{
			Field:  "amount",
			Reason: fmt.Sprintf("%q is outside the supported range", in.Amount),
		}
	}
	if amount.IsNegative() {
		return Transaction{}, &InvalidInputError{Field: "amount", Reason: "amount must not be negative"}
	}

	var ts time.Time
	if s := strings.TrimSpace(in.Timestamp); s != "" {
		ts, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return Transaction{}, &InvalidInputError{
				Field:  "timestamp",
				Reason: fmt.Sprintf("%q is not an RFC 3339 timestamp", in.Timestamp),
			}
		}
	}

	ip := strings.TrimSpace(in.IPAddress)
	if ip != "" {
		if _, err := netip.ParseAddr(ip); err != nil {
			return Transaction{}, &InvalidInputError{
				Field:  "ipAddress",
				Reason: fmt.Sprintf("%q is not an IP address", in.IPAddress),
			}
		}
	}

	return Transaction{
		amount:     amount,
		merchantID: in.MerchantID,
		customerID: in.CustomerID,
		location:   in.Location,
		deviceID:   in.DeviceID,
		ipAddress:  ip,
		timestamp:  ts,
		tier:       valueobject.TierFromAmount(amount),
	}, nil
}

// Accessors

func (t Transaction) Amount() decimal.Decimal { return t.amount }
func (t Transaction) MerchantID() string      { return t.merchantID }
func (t Transaction) CustomerID() string      { return t.customerID }
func (t Transaction) Location() string        { return t.location }
func (t Transaction) DeviceID() string        { return t.deviceID }
func (t Transaction) IPAddress() string       { return t.ipAddress }
func (t Transaction) Tier() valueobject.Tier  { return t.tier }

// Timestamp returns the transaction time, or the zero time when none was given.
func (t Transaction) Timestamp() time.Time { return t.timestamp }

package validator

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// 決済手段。
const (
	MethodCreditCard = "credit-card"
	MethodIDeal      = "ideal"
	MethodPayPal     = "paypal"
)

var (
	ErrUnknownMethod = errors.New("unknown payment method")
	ErrInvalidName   = errors.New("please enter a valid cardholder name")
	ErrInvalidCard   = errors.New("please enter a valid 16-digit card number")
	ErrInvalidExpiry = errors.New("please enter a valid expiry date (MM/YY)")
	ErrInvalidCVV    = errors.New("please enter a valid CVV (3 digits)")
	ErrBankRequired  = errors.New("please select your bank")
	ErrInvalidPayPal = errors.New("please enter a valid PayPal email address")
)

// iDEALで選べる銀行。
var idealBanks = map[string]bool{
	"abn":  true,
	"ing":  true,
	"rabo": true,
	"sns":  true,
	"bunq": true,
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// PaymentDetails は決済フォームの入力。Method以外は手段ごとに使う欄が異なる。
type PaymentDetails struct {
	Method      string
	CardName    string
	CardNumber  string
	CardExpiry  string // MMYY（数字4桁）
	CardCVV     string
	Bank        string
	PayPalEmail string
}

// ValidatePayment は決済実行前の同期チェック。リクエストは一切送らない。
func ValidatePayment(d PaymentDetails) error {
	switch d.Method {
	case MethodCreditCard:
		if len(strings.TrimSpace(d.CardName)) < 2 {
			return ErrInvalidName
		}
		if len(d.CardNumber) != 16 || !digitsOnly.MatchString(d.CardNumber) {
			return ErrInvalidCard
		}
		if !validExpiry(d.CardExpiry) {
			return ErrInvalidExpiry
		}
		if len(d.CardCVV) < 3 || len(d.CardCVV) > 4 || !digitsOnly.MatchString(d.CardCVV) {
			return ErrInvalidCVV
		}
		return nil

	case MethodIDeal:
		if !idealBanks[d.Bank] {
			return ErrBankRequired
		}
		return nil

	case MethodPayPal:
		if !strings.Contains(d.PayPalEmail, "@") {
			return ErrInvalidPayPal
		}
		return nil

	default:
		return ErrUnknownMethod
	}
}

// MMYYの4桁、月は01〜12。
func validExpiry(s string) bool {
	if len(s) != 4 || !digitsOnly.MatchString(s) {
		return false
	}
	month, err := strconv.Atoi(s[:2])
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12
}

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldCardNumber = iota
	fieldCardHolder
	fieldExpiry
	fieldCVV
	numPaymentFields
)

// paymentProcessingDelay simulates the time a payment gateway would take.
const paymentProcessingDelay = 2 * time.Second

// paymentModel is the simulated checkout form. The gateway decision is a demo
// rule: a card is approved when its last digit is even. On approval the
// caller invokes the booking workflow's confirm exactly once.
type paymentModel struct {
	inputs     []textinput.Model
	focus      int
	message    string
	processing bool
}

func newPaymentModel() paymentModel {
	inputs := make([]textinput.Model, numPaymentFields)

	card := textinput.New()
	card.Placeholder = "1234 5678 9012 3456"
	card.CharLimit = 19
	card.Width = 22
	inputs[fieldCardNumber] = card

	holder := textinput.New()
	holder.Placeholder = "Name Surname"
	holder.CharLimit = 60
	holder.Width = 22
	inputs[fieldCardHolder] = holder

	expiry := textinput.New()
	expiry.Placeholder = "MM/YY"
	expiry.CharLimit = 5
	expiry.Width = 7
	inputs[fieldExpiry] = expiry

	cvv := textinput.New()
	cvv.Placeholder = "123"
	cvv.CharLimit = 3
	cvv.Width = 5
	inputs[fieldCVV] = cvv

	p := paymentModel{inputs: inputs}
	p.setFocus(fieldCardNumber)
	return p
}

func (p *paymentModel) setFocus(i int) {
	p.focus = clamp(i, 0, numPaymentFields-1)
	for f := range p.inputs {
		if f == p.focus {
			p.inputs[f].Focus()
		} else {
			p.inputs[f].Blur()
		}
	}
}

func (p *paymentModel) nextField() { p.setFocus((p.focus + 1) % numPaymentFields) }

func (p *paymentModel) prevField() {
	p.setFocus((p.focus + numPaymentFields - 1) % numPaymentFields)
}

// applyFormatting rewrites the focused field into its display format after a
// keystroke: card numbers grouped by four, expiry split with a slash.
func (p *paymentModel) applyFormatting() {
	switch p.focus {
	case fieldCardNumber:
		formatted := formatCardNumber(digitsOnly(p.inputs[fieldCardNumber].Value()))
		if formatted != p.inputs[fieldCardNumber].Value() {
			p.inputs[fieldCardNumber].SetValue(formatted)
			p.inputs[fieldCardNumber].CursorEnd()
		}
	case fieldExpiry:
		formatted := formatExpiry(digitsOnly(p.inputs[fieldExpiry].Value()))
		if formatted != p.inputs[fieldExpiry].Value() {
			p.inputs[fieldExpiry].SetValue(formatted)
			p.inputs[fieldExpiry].CursorEnd()
		}
	}
}

func (p paymentModel) cardNumber() string { return p.inputs[fieldCardNumber].Value() }
func (p paymentModel) cardHolder() string { return strings.TrimSpace(p.inputs[fieldCardHolder].Value()) }
func (p paymentModel) expiry() string     { return p.inputs[fieldExpiry].Value() }
func (p paymentModel) cvv() string        { return p.inputs[fieldCVV].Value() }

func (p paymentModel) valid(now time.Time) bool {
	return validCardNumber(p.cardNumber()) &&
		p.cardHolder() != "" &&
		validExpiry(p.expiry(), now) &&
		validCVV(p.cvv())
}

// fieldError returns the inline validation message for a field, empty while
// the field is still blank.
func (p paymentModel) fieldError(field int, now time.Time) string {
	switch field {
	case fieldCardNumber:
		if v := p.cardNumber(); v != "" && !validCardNumber(v) {
			return "Please enter a valid 16-digit card number"
		}
	case fieldExpiry:
		if v := p.expiry(); v != "" && !validExpiry(v, now) {
			return "Invalid expiry date"
		}
	case fieldCVV:
		if v := p.cvv(); v != "" && !validCVV(v) {
			return "3 digits required"
		}
	}
	return ""
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validCardNumber(s string) bool {
	return len(digitsOnly(s)) == 16
}

// formatCardNumber groups card digits by four, capped at 16 digits.
func formatCardNumber(digits string) string {
	if len(digits) > 16 {
		digits = digits[:16]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatExpiry inserts the slash between month and year digits.
func formatExpiry(digits string) string {
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// validExpiry accepts MM/YY with a month 1..12 that is not in the past.
func validExpiry(s string, now time.Time) bool {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	return year > currentYear || (year == currentYear && month >= currentMonth)
}

func validCVV(s string) bool {
	return len(s) == 3 && digitsOnly(s) == s
}

// paymentApproved is the demo gateway rule: approve when the card number's
// last digit is even.
func paymentApproved(cardNumber string) bool {
	digits := digitsOnly(cardNumber)
	if digits == "" {
		return false
	}
	last := int(digits[len(digits)-1] - '0')
	return last%2 == 0
}

func formatPrice(dollars int) string {
	return fmt.Sprintf("$%d.00", dollars)
}

package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The storefront renders prices for a Latin American audience.
var printer = message.NewPrinter(language.LatinAmericanSpanish)

// Format renders a price value the way the storefront displays it.
func Format(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// ApplyDiscount returns the price after a percentage discount.
func ApplyDiscount(price float64, discount int) float64 {
	if discount <= 0 {
		return price
	}
	return price * (1 - float64(discount)/100)
}

package services

import (
	"math"
	"strings"
)

// AmountInWords converts a grand total to English words for the PDF
// totals block. Example: 320 -> "Three Hundred Twenty Only".
func AmountInWords(amount float64) string {
	if amount < 0 {
		return "Minus " + AmountInWords(-amount)
	}

	n := int64(math.Round(amount))
	if n == 0 {
		return "Zero Only"
	}
	return convertToWords(n) + " Only"
}

func convertToWords(n int64) string {
	var parts []string

	scales := []struct {
		value int64
		name  string
	}{
		{1_000_000_000, "Billion"},
		{1_000_000, "Million"},
		{1_000, "Thousand"},
	}

	for _, s := range scales {
		if n >= s.value {
			parts = append(parts, convertUnder1000(n/s.value)+" "+s.name)
			n %= s.value
		}
	}

	if n > 0 {
		parts = append(parts, convertUnder1000(n))
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	if n >= 100 {
		out := ones[n/100] + " Hundred"
		if n%100 != 0 {
			out += " " + convertUnder100(n%100)
		}
		return out
	}
	return convertUnder100(n)
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

package currency

import "strconv"

// Yen renders a tax-included amount for display, e.g. 1078 → "1,078円".
func Yen(amount int) string {
	if amount < 0 {
		amount = 0
	}
	return group(strconv.Itoa(amount)) + "円"
}

// YenPerMonth renders a monthly fee, e.g. 1078 → "1,078円/月".
func YenPerMonth(amount int) string {
	return Yen(amount) + "/月"
}

func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var out []byte
	head := n % 3
	if head > 0 {
		out = append(out, digits[:head]...)
	}
	for i := head; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}

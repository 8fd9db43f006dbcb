// File: internal/service/cpf.go
package service

import "strings"

// NormalizeCPF strips everything but digits, so "529.982.247-25" and
// "52998224725" address the same account.
func NormalizeCPF(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether cpf is eleven digits with correct mod-11 check
// digits. Sequences of a single repeated digit are rejected.
func ValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	digits := make([]int, 11)
	same := true
	for i, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			same = false
		}
	}
	if same {
		return false
	}
	return digits[9] == checkDigit(digits[:9]) && digits[10] == checkDigit(digits[:10])
}

func checkDigit(digits []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (len(digits) + 1 - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		return 0
	}
	return rest
}

package services

import (
	"strings"
	"unicode/utf8"

	"github.com/anjiri1684/cyber_evolve/models"
)

const (
	minPasswordLength  = 12
	passwordCheckCount = 8
)

var sequentialRuns = []string{
	"abc", "bcd", "cde", "def", "efg", "fgh", "ghi", "hij", "ijk", "jkl", "klm", "lmn",
	"mno", "nop", "opq", "pqr", "qrs", "rst", "stu", "tuv", "uvw", "vwx", "wxy", "xyz",
	"012", "123", "234", "345", "456", "567", "678", "789",
}

var commonPasswords = []string{"password", "12345678", "qwerty", "admin", "letmein"}

// CheckPassword scores password against eight hygiene rules. Nothing is stored.
func CheckPassword(password string) models.PasswordReport {
	if password == "" {
		return models.PasswordReport{Strength: 0, Label: "No Password"}
	}

	// Length counts Unicode code points, not bytes.
	lower := strings.ToLower(password)
	checks := models.PasswordChecks{
		Length:       utf8.RuneCountInString(password) >= minPasswordLength,
		Lowercase:    strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz"),
		Uppercase:    strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
		Numbers:      strings.ContainsAny(password, "0123456789"),
		Symbols:      hasSymbol(password),
		NoSequential: !containsAny(lower, sequentialRuns),
		NoRepeating:  !hasTripleRun(password),
		NoCommon:     !containsAny(lower, commonPasswords),
	}

	passed := 0
	for _, ok := range []bool{
		checks.Length, checks.Lowercase, checks.Uppercase, checks.Numbers,
		checks.Symbols, checks.NoSequential, checks.NoRepeating, checks.NoCommon,
	} {
		if ok {
			passed++
		}
	}

	strength := float64(passed) / passwordCheckCount * 100
	return models.PasswordReport{
		Strength: strength,
		Label:    strengthLabel(strength),
		Checks:   checks,
	}
}

func strengthLabel(strength float64) string {
	switch {
	case strength < 25:
		return "Very Weak"
	case strength < 50:
		return "Weak"
	case strength < 75:
		return "Moderate"
	case strength < 90:
		return "Strong"
	default:
		return "Very Strong"
	}
}

func hasSymbol(s string) bool {
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum {
			return true
		}
	}
	return false
}

// hasTripleRun reports whether any character appears three or more times in a row.
func hasTripleRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= 3 {
			return true
		}
		prev = r
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckPassword_Empty(t *testing.T) {
	report := CheckPassword("")

	require.Equal(t, 0.0, report.Strength)
	require.Equal(t, "No Password", report.Label)
	require.False(t, report.Checks.Length)
	require.False(t, report.Checks.NoCommon)
}

func TestCheckPassword_Strong(t *testing.T) {
	report := CheckPassword("Tr0ub4dor&Horse!")

	require.True(t, report.Checks.Length)
	require.True(t, report.Checks.Lowercase)
	require.True(t, report.Checks.Uppercase)
	require.True(t, report.Checks.Numbers)
	require.True(t, report.Checks.Symbols)
	require.True(t, report.Checks.NoSequential)
	require.True(t, report.Checks.NoRepeating)
	require.True(t, report.Checks.NoCommon)
	require.Equal(t, 100.0, report.Strength)
	require.Equal(t, "Very Strong", report.Label)
}

func TestCheckPassword_CommonAndSequential(t *testing.T) {
	report := CheckPassword("password123")

	require.False(t, report.Checks.NoCommon)
	require.False(t, report.Checks.NoSequential)
	require.False(t, report.Checks.Length)
	require.False(t, report.Checks.Uppercase)
	require.False(t, report.Checks.Symbols)
	// lowercase, numbers, no-repeating
	require.Equal(t, 37.5, report.Strength)
	require.Equal(t, "Weak", report.Label)
}

func TestCheckPassword_RepeatedCharacters(t *testing.T) {
	require.False(t, CheckPassword("aaab").Checks.NoRepeating)
	require.True(t, CheckPassword("aabab").Checks.NoRepeating)
}

func TestCheckPassword_SequenceIsCaseInsensitive(t *testing.T) {
	require.False(t, CheckPassword("xXyZq").Checks.NoSequential)
}

func TestCheckPassword_LengthCountsCodePoints(t *testing.T) {
	require.False(t, CheckPassword(strings.Repeat("\U0001F512", 6)).Checks.Length)
	require.False(t, CheckPassword(strings.Repeat("\u00e9", 11)).Checks.Length)
	require.True(t, CheckPassword(strings.Repeat("\U0001F512", 12)).Checks.Length)
}

func TestStrengthLabel_Bands(t *testing.T) {
	require.Equal(t, "Very Weak", strengthLabel(12.5))
	require.Equal(t, "Weak", strengthLabel(25))
	require.Equal(t, "Moderate", strengthLabel(62.5))
	require.Equal(t, "Strong", strengthLabel(87.5))
	require.Equal(t, "Very Strong", strengthLabel(100))
}

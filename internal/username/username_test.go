package username

import (
	"math"
	"regexp"
	"testing"
)

func TestGenerate(t *testing.T) {
	testCases := []struct {
		Name     string
		Email    string
		Expected string
	}{
		{
			Name:     "Known vector #1",
			Email:    "a@b.com",
			Expected: "starklegend271",
		},
		{
			Name:     "Empty email #2",
			Email:    "",
			Expected: "cryptomaster1",
		},
		{
			// хэш этой строки - минимальный int32: модуль не должен
			// переполняться и давать отрицательный индекс
			Name:     "Minimal int32 hash #3",
			Email:    "Gycxf_",
			Expected: "nftbuilder801",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			name := Generate(tc.Email)
			if name != tc.Expected {
				t.Errorf("Expected username '%s', got: '%s'", tc.Expected, name)
			}
		})
	}
}

func TestAbs_MinimalInt32(t *testing.T) {
	if hash("Gycxf_") != math.MinInt32 {
		t.Fatalf("Expected hash %d, got: %d", math.MinInt32, hash("Gycxf_"))
	}
	if abs(math.MinInt32) != -math.MinInt32 {
		t.Errorf("Expected positive absolute value, got: %d", abs(math.MinInt32))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	emails := []string{"a@b.com", "alex@example.com", "you@example.com", "Тест@example.com"}

	format := regexp.MustCompile(`^[a-z0-9]+$`)
	for _, email := range emails {
		first := Generate(email)
		second := Generate(email)
		if first != second {
			t.Errorf("Expected deterministic username for '%s', got: '%s' and '%s'", email, first, second)
		}
		if !format.MatchString(first) {
			t.Errorf("Unexpected username format: '%s'", first)
		}
	}
}

func TestDisplayName(t *testing.T) {
	testCases := []struct {
		Name     string
		Email    string
		Expected string
	}{
		{
			Name:     "Single letter #1",
			Email:    "a@b.com",
			Expected: "A",
		},
		{
			Name:     "Dotted name #2",
			Email:    "john.doe@example.com",
			Expected: "John Doe",
		},
		{
			Name:     "Digits stripped #3",
			Email:    "alex99@example.com",
			Expected: "Alex",
		},
		{
			Name:     "Mixed case #4",
			Email:    "SARAH_dev@example.com",
			Expected: "Sarah Dev",
		},
		{
			Name:     "No letters #5",
			Email:    "12345@example.com",
			Expected: "User",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			name := DisplayName(tc.Email)
			if name != tc.Expected {
				t.Errorf("Expected display name '%s', got: '%s'", tc.Expected, name)
			}
		})
	}
}

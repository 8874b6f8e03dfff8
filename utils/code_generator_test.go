// file: utils/code_generator_test.go
package utils

import (
	"strings"
	"testing"
)

func TestGenerateRegistrationNumberFormat(t *testing.T) {
	number := GenerateRegistrationNumber()

	if !strings.HasPrefix(number, "FRVV-") {
		t.Fatalf("registration number %q missing FRVV- prefix", number)
	}
	suffix := strings.TrimPrefix(number, "FRVV-")
	if len(suffix) != 12 {
		t.Fatalf("registration number suffix length = %d, want 12", len(suffix))
	}
	for _, r := range suffix {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			t.Fatalf("registration number %q contains unexpected character %q", number, r)
		}
	}
}

func TestGenerateRegistrationNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateRegistrationNumber()
		if seen[number] {
			t.Fatalf("duplicate registration number generated: %q", number)
		}
		seen[number] = true
	}
}

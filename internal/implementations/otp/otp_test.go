package otp

import (
	"classportal/internal/core/domain/user"
	"testing"
)

func TestGeneratedCodes(t *testing.T) {
	generator := NewGenerator()
	seen := make(map[user.OTPCode]struct{})
	for i := 0; i < 1000; i++ {
		code := generator.GenerateOTP()
		if len(code) != user.OTPLength {
			t.Fatalf("code %q must have length %d", code, user.OTPLength)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q must be numeric", code)
			}
		}
		seen[code] = struct{}{}
	}
	// A thousand draws from a million-code space should not collapse to a
	// handful of values.
	if len(seen) < 100 {
		t.Fatalf("expected varied codes, got %d distinct ones", len(seen))
	}
}

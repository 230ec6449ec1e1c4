package validators

import (
	"strings"
	"testing"
)

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"event":"transaction.sent","data":{"transaction":{"status":"SUCCESS"}}}`)
	secret := "test-webhook-secret"

	testCases := []struct {
		Name      string
		Payload   []byte
		Signature string
		Secret    string
		Expected  bool
	}{
		{
			Name:      "Valid signature #1",
			Payload:   payload,
			Signature: Sign(payload, secret),
			Secret:    secret,
			Expected:  true,
		},
		{
			Name:      "Wrong secret #2",
			Payload:   payload,
			Signature: Sign(payload, "other-secret"),
			Secret:    secret,
			Expected:  false,
		},
		{
			Name:      "Tampered payload #3",
			Payload:   []byte(`{"event":"transaction.sent","data":{"transaction":{"status":"FAILED"}}}`),
			Signature: Sign(payload, secret),
			Secret:    secret,
			Expected:  false,
		},
		{
			Name:      "Malformed hex #4",
			Payload:   payload,
			Signature: "not-a-hex-signature",
			Secret:    secret,
			Expected:  false,
		},
		{
			Name:      "Truncated signature #5",
			Payload:   payload,
			Signature: Sign(payload, secret)[:32],
			Secret:    secret,
			Expected:  false,
		},
		{
			Name:      "Empty signature #6",
			Payload:   payload,
			Signature: "",
			Secret:    secret,
			Expected:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := VerifySignature(tc.Payload, tc.Signature, tc.Secret); got != tc.Expected {
				t.Errorf("Expected %v, got: %v", tc.Expected, got)
			}
		})
	}
}

func TestVerifySignature_EmptyBody(t *testing.T) {
	secret := "secret"
	if !VerifySignature(nil, Sign(nil, secret), secret) {
		t.Errorf("Expected valid signature for empty body")
	}
}

func TestSign_Format(t *testing.T) {
	signature := Sign([]byte("body"), "secret")
	if len(signature) != 64 {
		t.Errorf("Expected 64 hex chars, got: %d", len(signature))
	}
	if strings.ToLower(signature) != signature {
		t.Errorf("Expected lowercase hex, got: '%s'", signature)
	}
}

func TestCheckAmount(t *testing.T) {
	if CheckAmount(0) || CheckAmount(-5) {
		t.Errorf("Expected zero and negative amounts to be rejected")
	}
	if !CheckAmount(10) {
		t.Errorf("Expected positive amount to be accepted")
	}
}

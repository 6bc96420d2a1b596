package redact

import (
	"strings"
	"testing"
)

func TestRedact_Email(t *testing.T) {
	result := Redact("Contact john@x.com")

	if len(result.Redactions) != 1 {
		t.Fatalf("Expected 1 redaction, got %d", len(result.Redactions))
	}
	if result.Redactions[0].Type != TypeEmail {
		t.Errorf("Expected type email, got %s", result.Redactions[0].Type)
	}
	if strings.Contains(result.Text, "john@x.com") {
		t.Errorf("Redacted text still contains the address: %s", result.Text)
	}
	if result.Redactions[0].Original != "john@x.com" {
		t.Errorf("Expected original 'john@x.com', got '%s'", result.Redactions[0].Original)
	}
	if result.Redactions[0].Position != 8 {
		t.Errorf("Expected position 8, got %d", result.Redactions[0].Position)
	}
}

func TestRedact_Classes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType Type
		wantGone string
	}{
		{
			name:     "phone with separators",
			text:     "call me at 555-123-4567 tomorrow",
			wantType: TypePhone,
			wantGone: "555-123-4567",
		},
		{
			name:     "phone with country code",
			text:     "reach ops at +1 (555) 123-4567",
			wantType: TypePhone,
			wantGone: "555) 123-4567",
		},
		{
			name:     "ssn",
			text:     "SSN is 123-45-6789 on file",
			wantType: TypeSSN,
			wantGone: "123-45-6789",
		},
		{
			name:     "credit card with spaces",
			text:     "use card 4111 1111 1111 1111 please",
			wantType: TypeCreditCard,
			wantGone: "4111 1111 1111 1111",
		},
		{
			name:     "credit card contiguous",
			text:     "use card 4111111111111111 please",
			wantType: TypeCreditCard,
			wantGone: "4111111111111111",
		},
		{
			name:     "prefixed api key",
			text:     "set sk_live_abcdefABCDEF1234567890 in env",
			wantType: TypeToken,
			wantGone: "sk_live_abcdefABCDEF1234567890",
		},
		{
			name:     "opaque secret",
			text:     "token 0123456789abcdef0123456789abcdef leaked",
			wantType: TypeToken,
			wantGone: "0123456789abcdef0123456789abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Redact(tt.text)

			if len(result.Redactions) != 1 {
				t.Fatalf("Expected 1 redaction, got %d: %+v", len(result.Redactions), result.Redactions)
			}
			if result.Redactions[0].Type != tt.wantType {
				t.Errorf("Expected type %s, got %s", tt.wantType, result.Redactions[0].Type)
			}
			if strings.Contains(result.Text, tt.wantGone) {
				t.Errorf("Redacted text still contains '%s': %s", tt.wantGone, result.Text)
			}
		})
	}
}

func TestRedact_EmailClaimedBeforeToken(t *testing.T) {
	// The local part is long enough for the generic token pattern, but the
	// email class runs first and must claim the whole address
	result := Redact("mail distinguished-engineering-team@example.com today")

	if len(result.Redactions) != 1 {
		t.Fatalf("Expected 1 redaction, got %d: %+v", len(result.Redactions), result.Redactions)
	}
	if result.Redactions[0].Type != TypeEmail {
		t.Errorf("Expected email to win over token, got %s", result.Redactions[0].Type)
	}
}

func TestRedact_MultipleClasses(t *testing.T) {
	result := Redact("john@x.com or 555-123-4567, SSN 123-45-6789")

	if len(result.Redactions) != 3 {
		t.Fatalf("Expected 3 redactions, got %d: %+v", len(result.Redactions), result.Redactions)
	}

	// Redactions are reported in original-text order
	wantOrder := []Type{TypeEmail, TypePhone, TypeSSN}
	for i, want := range wantOrder {
		if result.Redactions[i].Type != want {
			t.Errorf("Redaction %d: expected %s, got %s", i, want, result.Redactions[i].Type)
		}
	}

	for i := 1; i < len(result.Redactions); i++ {
		if result.Redactions[i].Position <= result.Redactions[i-1].Position {
			t.Error("Expected redactions sorted by original position")
		}
	}
}

func TestRedact_Idempotent(t *testing.T) {
	first := Redact("john@x.com called from 555-123-4567 about sk_live_abcdefABCDEF1234567890")

	second := Redact(first.Text)
	if len(second.Redactions) != 0 {
		t.Errorf("Expected 0 redactions on already-redacted text, got %d: %+v",
			len(second.Redactions), second.Redactions)
	}
	if second.Text != first.Text {
		t.Errorf("Expected redacted text unchanged, got '%s'", second.Text)
	}
}

func TestRedact_NoMatches(t *testing.T) {
	text := "just a normal sentence about deploys"
	result := Redact(text)

	if result.Text != text {
		t.Errorf("Expected text unchanged, got '%s'", result.Text)
	}
	if len(result.Redactions) != 0 {
		t.Errorf("Expected 0 redactions, got %d", len(result.Redactions))
	}
}

func TestCountByType(t *testing.T) {
	result := Redact("john@x.com and jane@y.org, card 4111 1111 1111 1111")

	counts := CountByType(result.Redactions)
	if counts[TypeEmail] != 2 {
		t.Errorf("Expected 2 emails, got %d", counts[TypeEmail])
	}
	if counts[TypeCreditCard] != 1 {
		t.Errorf("Expected 1 credit card, got %d", counts[TypeCreditCard])
	}
}

package domain_test

import (
	"testing"

	"pomo/internal/modules/quote/domain"
)

func TestQuoteValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Quote{Text: "Stay hungry", Author: "Jobs"}).Validate(); err != nil {
		t.Fatalf("quote should be valid: %v", err)
	}
	if err := (domain.Quote{Text: "  ", Author: "Nobody"}).Validate(); err == nil {
		t.Fatalf("blank quote should fail")
	}
}

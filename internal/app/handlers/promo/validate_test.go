package promo

import (
	"context"
	"testing"
	"time"

	domainpromo "pinelodge/internal/domain/promo"
	"pinelodge/internal/infra/storage/memory"
)

func TestValidateUnknownCodeIsVerdictNotError(t *testing.T) {
	handler := &ValidatePromoHandler{Promos: memory.NewPromoRepository()}
	got, err := handler.Handle(context.Background(), ValidatePromoQuery{Code: "NOPE"})
	if err != nil {
		t.Fatalf("unknown code must not be a transport error: %v", err)
	}
	if got.Valid {
		t.Fatal("unknown code should be invalid")
	}
	if got.Reason != "not found" {
		t.Fatalf("reason = %q, want not found", got.Reason)
	}
	if got.Promo != nil {
		t.Fatal("invalid verdict should not carry an offer")
	}
}

func TestValidateValidCode(t *testing.T) {
	ctx := context.Background()
	promos := memory.NewPromoRepository()
	p := domainpromo.PromoCode{Code: "WELCOME10", Description: "welcome discount", DiscountType: domainpromo.DiscountPercentage, DiscountValue: 10, Active: true}
	if err := promos.Save(ctx, &p); err != nil {
		t.Fatalf("save: %v", err)
	}

	handler := &ValidatePromoHandler{Promos: promos}
	got, err := handler.Handle(ctx, ValidatePromoQuery{Code: " welcome10 "})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !got.Valid {
		t.Fatalf("verdict = %+v, want valid", got)
	}
	if got.Promo == nil || got.Promo.Code != "WELCOME10" || got.Promo.DiscountValue != 10 {
		t.Fatalf("offer = %+v", got.Promo)
	}
}

func TestValidateNeverConsumesUsage(t *testing.T) {
	ctx := context.Background()
	promos := memory.NewPromoRepository()
	limit := int64(1)
	p := domainpromo.PromoCode{Code: "ONCE", DiscountType: domainpromo.DiscountFixed, DiscountValue: 500, Active: true, MaxUses: &limit}
	if err := promos.Save(ctx, &p); err != nil {
		t.Fatalf("save: %v", err)
	}

	handler := &ValidatePromoHandler{Promos: promos}
	for i := 0; i < 3; i++ {
		got, err := handler.Handle(ctx, ValidatePromoQuery{Code: "ONCE"})
		if err != nil {
			t.Fatalf("Handle %d: %v", i, err)
		}
		if !got.Valid {
			t.Fatalf("validation %d should stay valid, got %+v", i, got)
		}
	}
	stored, err := promos.ByCode(ctx, "ONCE")
	if err != nil {
		t.Fatalf("ByCode: %v", err)
	}
	if stored.CurrentUses != 0 {
		t.Fatalf("validation consumed usage: %d", stored.CurrentUses)
	}
}

func TestValidateRejectionReasons(t *testing.T) {
	ctx := context.Background()
	promos := memory.NewPromoRepository()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	limit := int64(2)

	seed := []domainpromo.PromoCode{
		{Code: "INACTIVE", DiscountType: domainpromo.DiscountFixed, DiscountValue: 100, Active: false},
		{Code: "EXPIRED", DiscountType: domainpromo.DiscountFixed, DiscountValue: 100, Active: true, ValidUntil: &past},
		{Code: "USEDUP", DiscountType: domainpromo.DiscountFixed, DiscountValue: 100, Active: true, MaxUses: &limit, CurrentUses: 2},
	}
	for i := range seed {
		if err := promos.Save(ctx, &seed[i]); err != nil {
			t.Fatalf("save %s: %v", seed[i].Code, err)
		}
	}

	handler := &ValidatePromoHandler{Promos: promos, Now: func() time.Time { return now }}
	cases := map[string]string{
		"INACTIVE": "inactive",
		"EXPIRED":  "expired",
		"USEDUP":   "limit reached",
	}
	for code, reason := range cases {
		got, err := handler.Handle(ctx, ValidatePromoQuery{Code: code})
		if err != nil {
			t.Fatalf("%s: %v", code, err)
		}
		if got.Valid || got.Reason != reason {
			t.Fatalf("%s: verdict = %+v, want reason %q", code, got, reason)
		}
	}
}

package dto

import domainpromo "pinelodge/internal/domain/promo"

type PromoOffer struct {
	Code          string `json:"code"`
	Description   string `json:"description,omitempty"`
	DiscountType  string `json:"discountType"`
	DiscountValue int64  `json:"discountValue"`
}

// PromoValidation is always a 200-shaped payload: business invalidity is
// carried in valid=false plus a human-readable reason.
type PromoValidation struct {
	Valid  bool        `json:"valid"`
	Reason string      `json:"reason,omitempty"`
	Promo  *PromoOffer `json:"promo,omitempty"`
}

func MapPromoValidation(verdict domainpromo.Verdict) PromoValidation {
	out := PromoValidation{Valid: verdict.Valid, Reason: string(verdict.Reason)}
	if verdict.Offer != nil {
		out.Promo = &PromoOffer{
			Code:          verdict.Offer.Code,
			Description:   verdict.Offer.Description,
			DiscountType:  string(verdict.Offer.DiscountType),
			DiscountValue: verdict.Offer.DiscountValue,
		}
	}
	return out
}

package promo

import (
	"context"
	"errors"
	"time"

	"pinelodge/internal/app/dto"
	"pinelodge/internal/app/queries"
	domainpromo "pinelodge/internal/domain/promo"
)

const validatePromoKey = "promo.validate"

type ValidatePromoQuery struct {
	Code string
}

func (q ValidatePromoQuery) Key() string { return validatePromoKey }

type ValidatePromoHandler struct {
	Promos domainpromo.Repository
	Now    func() time.Time
}

// Handle is a side-effect-free preview: it never increments usage, and
// business invalidity comes back as a verdict, not an error.
func (h *ValidatePromoHandler) Handle(ctx context.Context, q ValidatePromoQuery) (dto.PromoValidation, error) {
	code := domainpromo.Canonical(q.Code)
	p, err := h.Promos.ByCode(ctx, code)
	if errors.Is(err, domainpromo.ErrNotFound) {
		return dto.MapPromoValidation(domainpromo.Rejected(domainpromo.ReasonNotFound)), nil
	}
	if err != nil {
		return dto.PromoValidation{}, err
	}
	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now().UTC()
	}
	return dto.MapPromoValidation(p.Evaluate(now)), nil
}

var _ queries.Handler[ValidatePromoQuery, dto.PromoValidation] = (*ValidatePromoHandler)(nil)

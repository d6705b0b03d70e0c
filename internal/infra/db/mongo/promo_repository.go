package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainpromo "pinelodge/internal/domain/promo"
)

type PromoRepository struct {
	col *mongo.Collection
}

func NewPromoRepository(db *mongo.Database) *PromoRepository {
	return &PromoRepository{col: db.Collection("promo_codes")}
}

func (r *PromoRepository) ByCode(ctx context.Context, code string) (*domainpromo.PromoCode, error) {
	var doc promoDocument
	err := r.col.FindOne(ctx, bson.M{"_id": domainpromo.Canonical(code)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainpromo.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

// Redeem consumes one use in a single guarded update: the filter only
// matches while current_uses is below max_uses, so concurrent redemptions
// cannot overshoot the ceiling.
func (r *PromoRepository) Redeem(ctx context.Context, code string) error {
	filter := bson.M{
		"_id": domainpromo.Canonical(code),
		"$or": bson.A{
			bson.M{"max_uses": nil},
			bson.M{"$expr": bson.M{"$lt": bson.A{"$current_uses", "$max_uses"}}},
		},
	}
	update := bson.M{"$inc": bson.M{"current_uses": 1}}
	err := r.col.FindOneAndUpdate(ctx, filter, update).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	// Filter missed: either the code is unknown or the limit is spent.
	count, countErr := r.col.CountDocuments(ctx, bson.M{"_id": domainpromo.Canonical(code)})
	if countErr != nil {
		return countErr
	}
	if count == 0 {
		return domainpromo.ErrNotFound
	}
	return domainpromo.ErrUsageExhausted
}

func (r *PromoRepository) Save(ctx context.Context, p *domainpromo.PromoCode) error {
	if err := p.Validate(); err != nil {
		return err
	}
	doc := newPromoDocument(p)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

type promoDocument struct {
	ID            string     `bson:"_id"`
	Description   string     `bson:"description"`
	DiscountType  string     `bson:"discount_type"`
	DiscountValue int64      `bson:"discount_value"`
	Active        bool       `bson:"active"`
	ValidUntil    *time.Time `bson:"valid_until"`
	MaxUses       *int64     `bson:"max_uses"`
	CurrentUses   int64      `bson:"current_uses"`
}

func newPromoDocument(p *domainpromo.PromoCode) promoDocument {
	return promoDocument{
		ID:            domainpromo.Canonical(p.Code),
		Description:   p.Description,
		DiscountType:  string(p.DiscountType),
		DiscountValue: p.DiscountValue,
		Active:        p.Active,
		ValidUntil:    p.ValidUntil,
		MaxUses:       p.MaxUses,
		CurrentUses:   p.CurrentUses,
	}
}

func (d promoDocument) toAggregate() *domainpromo.PromoCode {
	return &domainpromo.PromoCode{
		Code:          d.ID,
		Description:   d.Description,
		DiscountType:  domainpromo.DiscountType(d.DiscountType),
		DiscountValue: d.DiscountValue,
		Active:        d.Active,
		ValidUntil:    d.ValidUntil,
		MaxUses:       d.MaxUses,
		CurrentUses:   d.CurrentUses,
	}
}

var _ domainpromo.Repository = (*PromoRepository)(nil)

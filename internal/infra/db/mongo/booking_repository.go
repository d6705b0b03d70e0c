package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "pinelodge/internal/domain/booking"
	domaincabins "pinelodge/internal/domain/cabins"
	domainpricing "pinelodge/internal/domain/pricing"
	"pinelodge/internal/domain/shared/staydates"
)

// BookingRepository persists bookings plus one claim document per
// occupied (cabin, day) pair. A unique compound index on the claims makes
// admission an exclusion constraint: of two concurrent overlapping
// admissions exactly one wins, the other hits a duplicate key.
type BookingRepository struct {
	col    *mongo.Collection
	claims *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	r := &BookingRepository{
		col:    db.Collection("bookings"),
		claims: db.Collection("booking_day_claims"),
	}
	claimIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "cabin_id", Value: 1}, {Key: "day", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	emailIdx := mongo.IndexModel{Keys: bson.D{{Key: "guest_email", Value: 1}}}
	_, _ = r.claims.Indexes().CreateOne(context.Background(), claimIdx)
	_, _ = r.col.Indexes().CreateOne(context.Background(), emailIdx)
	return r
}

func (r *BookingRepository) ByReference(ctx context.Context, ref domainbooking.Reference) (*domainbooking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(ref)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainbooking.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *BookingRepository) Admit(ctx context.Context, b *domainbooking.Booking) error {
	days := b.Stay.Days()
	claimDocs := make([]any, 0, len(days))
	for _, day := range days {
		claimDocs = append(claimDocs, bson.M{
			"cabin_id":  string(b.CabinID),
			"day":       staydates.FormatDay(day),
			"reference": string(b.Reference),
		})
	}
	if _, err := r.claims.InsertMany(ctx, claimDocs); err != nil {
		_, _ = r.claims.DeleteMany(ctx, bson.M{"reference": string(b.Reference)})
		if mongo.IsDuplicateKeyError(err) {
			return domainbooking.ErrDatesConflict
		}
		return err
	}
	if _, err := r.col.InsertOne(ctx, newBookingDocument(b)); err != nil {
		_, _ = r.claims.DeleteMany(ctx, bson.M{"reference": string(b.Reference)})
		if mongo.IsDuplicateKeyError(err) {
			return domainbooking.ErrDatesConflict
		}
		return err
	}
	return nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": string(b.Reference)}, newBookingDocument(b))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainbooking.ErrNotFound
	}
	if !b.Blocks() {
		_, _ = r.claims.DeleteMany(ctx, bson.M{"reference": string(b.Reference)})
	}
	return nil
}

func (r *BookingRepository) ListByGuestEmail(ctx context.Context, email string) ([]*domainbooking.Booking, error) {
	cur, err := r.col.Find(ctx, bson.M{"guest_email": email})
	if err != nil {
		return nil, err
	}
	return decodeBookings(ctx, cur)
}

func (r *BookingRepository) ListByCabin(ctx context.Context, cabinID domaincabins.CabinID) ([]*domainbooking.Booking, error) {
	cur, err := r.col.Find(ctx, bson.M{"cabin_id": string(cabinID)})
	if err != nil {
		return nil, err
	}
	return decodeBookings(ctx, cur)
}

func decodeBookings(ctx context.Context, cur *mongo.Cursor) ([]*domainbooking.Booking, error) {
	defer cur.Close(ctx)
	var out []*domainbooking.Booking
	for cur.Next(ctx) {
		var doc bookingDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cur.Err()
}

type bookingDocument struct {
	ID              string        `bson:"_id"`
	CabinID         string        `bson:"cabin_id"`
	CabinName       string        `bson:"cabin_name"`
	GuestName       string        `bson:"guest_name"`
	GuestEmail      string        `bson:"guest_email"`
	GuestPhone      string        `bson:"guest_phone"`
	CheckIn         int64         `bson:"check_in"`
	CheckOut        int64         `bson:"check_out"`
	Guests          int           `bson:"guests"`
	Price           priceDocument `bson:"price"`
	Status          string        `bson:"status"`
	PaymentStatus   string        `bson:"payment_status"`
	SpecialRequests string        `bson:"special_requests"`
	PromoCode       string        `bson:"promo_code"`
	CreatedAt       int64         `bson:"created_at"`
	UpdatedAt       int64         `bson:"updated_at"`
}

type priceDocument struct {
	Nights     int   `bson:"nights"`
	Nightly    int64 `bson:"nightly"`
	Base       int64 `bson:"base"`
	Cleaning   int64 `bson:"cleaning"`
	ServiceFee int64 `bson:"service_fee"`
	Discount   int64 `bson:"discount"`
	Total      int64 `bson:"total"`
}

func newBookingDocument(b *domainbooking.Booking) bookingDocument {
	return bookingDocument{
		ID:         string(b.Reference),
		CabinID:    string(b.CabinID),
		CabinName:  b.CabinName,
		GuestName:  b.Guest.Name,
		GuestEmail: b.Guest.Email,
		GuestPhone: b.Guest.Phone,
		CheckIn:    b.Stay.CheckIn.UnixMilli(),
		CheckOut:   b.Stay.CheckOut.UnixMilli(),
		Guests:     b.Guests,
		Price: priceDocument{
			Nights:     b.Price.Nights,
			Nightly:    b.Price.NightlyCents,
			Base:       b.Price.BaseCents,
			Cleaning:   b.Price.CleaningCents,
			ServiceFee: b.Price.ServiceFeeCents,
			Discount:   b.Price.DiscountCents,
			Total:      b.Price.TotalCents,
		},
		Status:          string(b.Status),
		PaymentStatus:   b.PaymentStatus,
		SpecialRequests: b.SpecialRequests,
		PromoCode:       b.PromoCode,
		CreatedAt:       b.CreatedAt.UnixMilli(),
		UpdatedAt:       b.UpdatedAt.UnixMilli(),
	}
}

func (d bookingDocument) toAggregate() *domainbooking.Booking {
	return &domainbooking.Booking{
		Reference: domainbooking.Reference(d.ID),
		CabinID:   domaincabins.CabinID(d.CabinID),
		CabinName: d.CabinName,
		Guest: domainbooking.Guest{
			Name:  d.GuestName,
			Email: d.GuestEmail,
			Phone: d.GuestPhone,
		},
		Stay: staydates.StayRange{
			CheckIn:  timestampToTime(d.CheckIn),
			CheckOut: timestampToTime(d.CheckOut),
		},
		Guests: d.Guests,
		Price: domainpricing.Breakdown{
			Nights:          d.Price.Nights,
			NightlyCents:    d.Price.Nightly,
			BaseCents:       d.Price.Base,
			CleaningCents:   d.Price.Cleaning,
			ServiceFeeCents: d.Price.ServiceFee,
			DiscountCents:   d.Price.Discount,
			TotalCents:      d.Price.Total,
		},
		Status:          domainbooking.Status(d.Status),
		PaymentStatus:   d.PaymentStatus,
		SpecialRequests: d.SpecialRequests,
		PromoCode:       d.PromoCode,
		CreatedAt:       timestampToTime(d.CreatedAt),
		UpdatedAt:       timestampToTime(d.UpdatedAt),
	}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

var _ domainbooking.Repository = (*BookingRepository)(nil)

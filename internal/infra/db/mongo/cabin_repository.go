package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domaincabins "pinelodge/internal/domain/cabins"
)

type CabinRepository struct {
	col *mongo.Collection
}

func NewCabinRepository(db *mongo.Database) *CabinRepository {
	return &CabinRepository{col: db.Collection("cabins")}
}

func (r *CabinRepository) ByName(ctx context.Context, name string) (*domaincabins.Cabin, error) {
	var doc cabinDocument
	err := r.col.FindOne(ctx, bson.M{"_id": domaincabins.CanonicalName(name)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domaincabins.ErrCabinNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *CabinRepository) List(ctx context.Context) ([]*domaincabins.Cabin, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []*domaincabins.Cabin
	for cur.Next(ctx) {
		var doc cabinDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cur.Err()
}

func (r *CabinRepository) Save(ctx context.Context, cabin *domaincabins.Cabin) error {
	if err := cabin.Validate(); err != nil {
		return err
	}
	doc := newCabinDocument(cabin)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

type cabinDocument struct {
	ID           string `bson:"_id"`
	CabinID      string `bson:"cabin_id"`
	Name         string `bson:"name"`
	MaxCapacity  int    `bson:"max_capacity"`
	RegularPrice int64  `bson:"regular_price"`
	Discount     int64  `bson:"discount"`
	Description  string `bson:"description"`
	ImageURL     string `bson:"image_url"`
}

func newCabinDocument(c *domaincabins.Cabin) cabinDocument {
	return cabinDocument{
		ID:           domaincabins.CanonicalName(c.Name),
		CabinID:      string(c.ID),
		Name:         c.Name,
		MaxCapacity:  c.MaxCapacity,
		RegularPrice: c.RegularPriceCents,
		Discount:     c.DiscountCents,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
	}
}

func (d cabinDocument) toAggregate() *domaincabins.Cabin {
	return &domaincabins.Cabin{
		ID:                domaincabins.CabinID(d.CabinID),
		Name:              d.Name,
		MaxCapacity:       d.MaxCapacity,
		RegularPriceCents: d.RegularPrice,
		DiscountCents:     d.Discount,
		Description:       d.Description,
		ImageURL:          d.ImageURL,
	}
}

var _ domaincabins.Repository = (*CabinRepository)(nil)

// SettingsStore keeps the single site-settings document.
type SettingsStore struct {
	col *mongo.Collection
}

func NewSettingsStore(db *mongo.Database) *SettingsStore {
	return &SettingsStore{col: db.Collection("settings")}
}

const settingsDocID = "site"

func (s *SettingsStore) Get(ctx context.Context) (domaincabins.Settings, error) {
	var doc settingsDocument
	err := s.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domaincabins.DefaultSettings(), nil
		}
		return domaincabins.Settings{}, err
	}
	return doc.toAggregate(), nil
}

func (s *SettingsStore) Save(ctx context.Context, settings domaincabins.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	doc := settingsDocument{
		ID:                  settingsDocID,
		MinBookingNights:    settings.MinBookingNights,
		MaxBookingNights:    settings.MaxBookingNights,
		MaxGuestsPerBooking: settings.MaxGuestsPerBooking,
		BreakfastPrice:      settings.BreakfastPriceCents,
		CleaningFee:         settings.CleaningFeeCents,
		ServiceFeeBps:       settings.ServiceFeeBps,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts)
	return err
}

type settingsDocument struct {
	ID                  string `bson:"_id"`
	MinBookingNights    int    `bson:"min_booking_nights"`
	MaxBookingNights    int    `bson:"max_booking_nights"`
	MaxGuestsPerBooking int    `bson:"max_guests_per_booking"`
	BreakfastPrice      int64  `bson:"breakfast_price"`
	CleaningFee         int64  `bson:"cleaning_fee"`
	ServiceFeeBps       int64  `bson:"service_fee_bps"`
}

func (d settingsDocument) toAggregate() domaincabins.Settings {
	return domaincabins.Settings{
		MinBookingNights:    d.MinBookingNights,
		MaxBookingNights:    d.MaxBookingNights,
		MaxGuestsPerBooking: d.MaxGuestsPerBooking,
		BreakfastPriceCents: d.BreakfastPrice,
		CleaningFeeCents:    d.CleaningFee,
		ServiceFeeBps:       d.ServiceFeeBps,
	}
}

var _ domaincabins.SettingsRepository = (*SettingsStore)(nil)

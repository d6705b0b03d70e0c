package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainvisitors "pinelodge/internal/domain/visitors"
)

type VisitorRepository struct {
	col *mongo.Collection
}

func NewVisitorRepository(db *mongo.Database) *VisitorRepository {
	return &VisitorRepository{col: db.Collection("visitors")}
}

// RecordVisit is a single atomic upsert: $inc bumps the counter while
// $set refreshes the volatile fields, so concurrent visits from one IP
// never lose an increment.
func (r *VisitorRepository) RecordVisit(ctx context.Context, visit domainvisitors.Visit) error {
	if visit.IP == "" {
		return domainvisitors.ErrInvalidIP
	}
	update := bson.M{
		"$inc": bson.M{"visit_count": 1},
		"$set": bson.M{
			"last_visit": visit.At,
			"user_agent": visit.UserAgent,
			"referrer":   visit.Referrer,
			"page_url":   visit.PageURL,
		},
		"$setOnInsert": bson.M{"first_visit": visit.At},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": visit.IP}, update, opts)
	return err
}

func (r *VisitorRepository) ByIP(ctx context.Context, ip string) (*domainvisitors.Record, error) {
	var doc visitorDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": ip}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainvisitors.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

type visitorDocument struct {
	IP         string    `bson:"_id"`
	VisitCount int64     `bson:"visit_count"`
	FirstVisit time.Time `bson:"first_visit"`
	LastVisit  time.Time `bson:"last_visit"`
	UserAgent  string    `bson:"user_agent"`
	Referrer   string    `bson:"referrer"`
	PageURL    string    `bson:"page_url"`
}

func (d visitorDocument) toAggregate() *domainvisitors.Record {
	return &domainvisitors.Record{
		IP:         d.IP,
		VisitCount: d.VisitCount,
		FirstVisit: d.FirstVisit.UTC(),
		LastVisit:  d.LastVisit.UTC(),
		UserAgent:  d.UserAgent,
		Referrer:   d.Referrer,
		PageURL:    d.PageURL,
	}
}

var _ domainvisitors.Repository = (*VisitorRepository)(nil)

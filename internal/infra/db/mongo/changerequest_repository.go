package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	domainbooking "pinelodge/internal/domain/booking"
	domainchange "pinelodge/internal/domain/changerequest"
	"pinelodge/internal/domain/shared/staydates"
)

type ChangeRequestRepository struct {
	col *mongo.Collection
}

func NewChangeRequestRepository(db *mongo.Database) *ChangeRequestRepository {
	r := &ChangeRequestRepository{col: db.Collection("date_change_requests")}
	idx := mongo.IndexModel{Keys: bson.D{{Key: "booking_reference", Value: 1}}}
	_, _ = r.col.Indexes().CreateOne(context.Background(), idx)
	return r
}

func (r *ChangeRequestRepository) Insert(ctx context.Context, request *domainchange.ChangeRequest) error {
	_, err := r.col.InsertOne(ctx, newChangeRequestDocument(request))
	return err
}

func (r *ChangeRequestRepository) ListByReference(ctx context.Context, ref domainbooking.Reference) ([]*domainchange.ChangeRequest, error) {
	cur, err := r.col.Find(ctx, bson.M{"booking_reference": string(ref)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []*domainchange.ChangeRequest
	for cur.Next(ctx) {
		var doc changeRequestDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cur.Err()
}

type changeRequestDocument struct {
	ID                string `bson:"_id"`
	BookingReference  string `bson:"booking_reference"`
	OriginalCheckIn   int64  `bson:"original_check_in"`
	OriginalCheckOut  int64  `bson:"original_check_out"`
	RequestedCheckIn  int64  `bson:"requested_check_in"`
	RequestedCheckOut int64  `bson:"requested_check_out"`
	Message           string `bson:"message"`
	GuestName         string `bson:"guest_name"`
	GuestEmail        string `bson:"guest_email"`
	CabinName         string `bson:"cabin_name"`
	Status            string `bson:"status"`
	CreatedAt         int64  `bson:"created_at"`
}

func newChangeRequestDocument(cr *domainchange.ChangeRequest) changeRequestDocument {
	return changeRequestDocument{
		ID:                cr.ID,
		BookingReference:  string(cr.BookingReference),
		OriginalCheckIn:   cr.OriginalStay.CheckIn.UnixMilli(),
		OriginalCheckOut:  cr.OriginalStay.CheckOut.UnixMilli(),
		RequestedCheckIn:  cr.RequestedStay.CheckIn.UnixMilli(),
		RequestedCheckOut: cr.RequestedStay.CheckOut.UnixMilli(),
		Message:           cr.Message,
		GuestName:         cr.GuestName,
		GuestEmail:        cr.GuestEmail,
		CabinName:         cr.CabinName,
		Status:            string(cr.Status),
		CreatedAt:         cr.CreatedAt.UnixMilli(),
	}
}

func (d changeRequestDocument) toAggregate() *domainchange.ChangeRequest {
	return &domainchange.ChangeRequest{
		ID:               d.ID,
		BookingReference: domainbooking.Reference(d.BookingReference),
		OriginalStay: staydates.StayRange{
			CheckIn:  timestampToTime(d.OriginalCheckIn),
			CheckOut: timestampToTime(d.OriginalCheckOut),
		},
		RequestedStay: staydates.StayRange{
			CheckIn:  timestampToTime(d.RequestedCheckIn),
			CheckOut: timestampToTime(d.RequestedCheckOut),
		},
		Message:    d.Message,
		GuestName:  d.GuestName,
		GuestEmail: d.GuestEmail,
		CabinName:  d.CabinName,
		Status:     domainchange.Status(d.Status),
		CreatedAt:  timestampToTime(d.CreatedAt),
	}
}

var _ domainchange.Repository = (*ChangeRequestRepository)(nil)

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// InquiryRepo implementación del puerto InquiryRepository sobre MongoDB.
// Update conserva el inquiry_number almacenado.
type InquiryRepo struct {
	c collection[entity.Inquiry]
}

// NewInquiryRepository construye el adaptador sobre la colección inquiries.
func NewInquiryRepository(db *mongo.Database, reg *bsoncodec.Registry) *InquiryRepo {
	return &InquiryRepo{c: newCollection[entity.Inquiry](db, reg, "inquiries", domain.ErrDuplicate, "inquiry_number")}
}

func (r *InquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	return r.c.insert(ctx, inquiry)
}

func (r *InquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	return r.c.findOne(ctx, bson.M{"_id": id})
}

func (r *InquiryRepo) GetByNumber(ctx context.Context, number string) (*entity.Inquiry, error) {
	return r.c.findOne(ctx, bson.M{"inquiry_number": number})
}

func (r *InquiryRepo) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	return r.c.replace(ctx, inquiry.ID, inquiry)
}

func (r *InquiryRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Inquiry, error) {
	return r.c.find(ctx, bson.M{"buyer_id": buyerID}, limit, offset)
}

func (r *InquiryRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Inquiry, error) {
	return r.c.find(ctx, bson.M{"seller_id": sellerID}, limit, offset)
}

// MarkClosed pasa la consulta a Closed solo si aún no lo está.
func (r *InquiryRepo) MarkClosed(ctx context.Context, id string) error {
	return r.c.patch(ctx, id, bson.M{"status": bson.M{"$ne": entity.InquiryStatusClosed}}, mongo.Pipeline{
		{{Key: "$set", Value: bson.M{"status": entity.InquiryStatusClosed}}},
	})
}

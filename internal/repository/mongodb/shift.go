package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/chamcong/attendance-backend-go/internal/domain/shift"
	"github.com/chamcong/attendance-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	collection *mongo.Collection
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{collection: db.Collection("shifts")}
}

// FindActiveByCode implements shift.Repository.
func (r *shiftRepository) FindActiveByCode(ctx context.Context, code string) (shift.Shift, error) {
	var s shift.Shift
	err := r.collection.FindOne(ctx, bson.M{"code": code, "is_active": true}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return shift.Shift{}, shift.ErrInvalidShift
	}
	if err != nil {
		return shift.Shift{}, fmt.Errorf("find shift by code: %w", err)
	}
	return s, nil
}

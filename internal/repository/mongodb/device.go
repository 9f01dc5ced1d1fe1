package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/chamcong/attendance-backend-go/internal/domain/device"
	"github.com/chamcong/attendance-backend-go/internal/pkg/database"
)

type deviceRepository struct {
	collection *mongo.Collection
}

func NewDeviceRepository(db *database.DB) device.Repository {
	return &deviceRepository{collection: db.Collection("devices")}
}

// FindActiveByCode implements device.Repository.
func (r *deviceRepository) FindActiveByCode(ctx context.Context, code string) (device.Device, error) {
	var d device.Device
	err := r.collection.FindOne(ctx, bson.M{"code": code, "status": device.StatusActive}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return device.Device{}, device.ErrInvalidDevice
	}
	if err != nil {
		return device.Device{}, fmt.Errorf("find device by code: %w", err)
	}
	return d, nil
}

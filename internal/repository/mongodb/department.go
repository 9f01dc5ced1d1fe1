package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/chamcong/attendance-backend-go/internal/domain/department"
	"github.com/chamcong/attendance-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	collection *mongo.Collection
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepository{collection: db.Collection("departments")}
}

// GetByRef implements department.Repository.
func (r *departmentRepository) GetByRef(ctx context.Context, ref string) (department.Department, error) {
	var dept department.Department
	err := r.collection.FindOne(ctx, bson.M{"_id": ref}).Decode(&dept)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	if err != nil {
		return department.Department{}, fmt.Errorf("find department: %w", err)
	}
	return dept, nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/chamcong/attendance-backend-go/internal/domain/employee"
	"github.com/chamcong/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{collection: db.Collection("employees")}
}

func (r *employeeRepository) findOne(ctx context.Context, query bson.M) (employee.Employee, error) {
	var emp employee.Employee
	err := r.collection.FindOne(ctx, query).Decode(&emp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("find employee: %w", err)
	}
	return emp, nil
}

// FindByEmployeeID implements employee.Repository.
func (r *employeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"employee_id": employeeID})
}

// FindByNFCUID implements employee.Repository.
func (r *employeeRepository) FindByNFCUID(ctx context.Context, nfcUID string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"nfc_uid": nfcUID})
}

// GetByRef implements employee.Repository.
func (r *employeeRepository) GetByRef(ctx context.Context, ref string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": ref})
}

// UpdateLastCheckIn implements employee.Repository.
func (r *employeeRepository) UpdateLastCheckIn(ctx context.Context, ref string, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": ref}, bson.M{
		"$set": bson.M{"last_check_in_at": at, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update employee last check-in: %w", err)
	}
	return nil
}

// UpdateLastCheckOut implements employee.Repository.
func (r *employeeRepository) UpdateLastCheckOut(ctx context.Context, ref string, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": ref}, bson.M{
		"$set": bson.M{"last_check_out_at": at, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update employee last check-out: %w", err)
	}
	return nil
}

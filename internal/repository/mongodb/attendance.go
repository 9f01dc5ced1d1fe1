package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/chamcong/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	collection *mongo.Collection
}

// NewAttendanceRepository wires the attendances collection and ensures
// its indexes. The unique (employee_ref, date) index is the only
// concurrency guard against double check-in.
func NewAttendanceRepository(ctx context.Context, db *database.DB) (attendance.Repository, error) {
	collection := db.Collection("attendances")

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_ref", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "department_ref", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "device_ref", Value: 1}, {Key: "date", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("create attendance indexes: %w", err)
	}

	return &attendanceRepository{collection: collection}, nil
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	now := time.Now().UTC()
	if rec.ID == "" {
		rec.ID = uuid.Must(uuid.NewV7()).String()
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// The day's record already exists for this employee.
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("insert attendance: %w", err)
	}
	return rec, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	var rec attendance.Record
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	if err != nil {
		return attendance.Record{}, fmt.Errorf("find attendance by id: %w", err)
	}
	return rec, nil
}

// FindByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeRef, date string) (*attendance.Record, error) {
	var rec attendance.Record
	err := r.collection.FindOne(ctx, bson.M{
		"employee_ref": employeeRef,
		"date":         date,
	}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find attendance by employee and date: %w", err)
	}
	return &rec, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	rec.UpdatedAt = time.Now().UTC()

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if res.MatchedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	if res.DeletedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	query := bson.M{}

	dateRange := bson.M{}
	if filter.StartDate != nil && *filter.StartDate != "" {
		dateRange["$gte"] = *filter.StartDate
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		dateRange["$lte"] = *filter.EndDate
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	if filter.EmployeeRef != nil && *filter.EmployeeRef != "" {
		query["employee_ref"] = *filter.EmployeeRef
	}
	if filter.DepartmentRef != nil && *filter.DepartmentRef != "" {
		query["department_ref"] = *filter.DepartmentRef
	}
	if filter.ShiftRef != nil && *filter.ShiftRef != "" {
		query["shift_ref"] = *filter.ShiftRef
	}
	if filter.DeviceRef != nil && *filter.DeviceRef != "" {
		query["device_ref"] = *filter.DeviceRef
	}
	if filter.Method != nil {
		query["$or"] = bson.A{
			bson.M{"check_in_method": *filter.Method},
			bson.M{"check_out_method": *filter.Method},
		}
	}

	cursor, err := r.collection.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "check_in_time", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	var records []attendance.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode attendances: %w", err)
	}
	return records, nil
}

// ListByEmployee implements attendance.Repository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeRef string, startDate, endDate *string) ([]attendance.Record, error) {
	query := bson.M{"employee_ref": employeeRef}

	dateRange := bson.M{}
	if startDate != nil && *startDate != "" {
		dateRange["$gte"] = *startDate
	}
	if endDate != nil && *endDate != "" {
		dateRange["$lte"] = *endDate
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	cursor, err := r.collection.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "check_in_time", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list attendances by employee: %w", err)
	}
	var records []attendance.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode attendances: %w", err)
	}
	return records, nil
}

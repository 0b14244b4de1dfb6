package repository

import (
	"context"
	"errors"

	"cityfix-be/models"
	"cityfix-be/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DirectoryRepo resolves organizational relationships (service ->
// department -> employee) from the external directory store. Everything
// here is read-only; the directory is owned by another system.
type DirectoryRepo struct {
	departments *mongo.Collection
	employees   *mongo.Collection
}

func NewDirectoryRepo(db *mongo.Database) *DirectoryRepo {
	return &DirectoryRepo{
		departments: db.Collection("departments"),
		employees:   db.Collection("employees"),
	}
}

// GetDepartment resolves a department and its allowed-category set.
func (r *DirectoryRepo) GetDepartment(ctx context.Context, uid string) (*models.Department, error) {
	var department models.Department
	err := r.departments.FindOne(ctx, bson.M{"_id": uid}).Decode(&department)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Department is not found.")
	}
	if err != nil {
		return nil, utils.DirectoryError(err)
	}
	return &department, nil
}

// GetEmployee resolves an employee record.
func (r *DirectoryRepo) GetEmployee(ctx context.Context, uid string) (*models.Employee, error) {
	var employee models.Employee
	err := r.employees.FindOne(ctx, bson.M{"_id": uid}).Decode(&employee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Employee is not found.")
	}
	if err != nil {
		return nil, utils.DirectoryError(err)
	}
	return &employee, nil
}

// IsEmployeeInDepartment reports whether the employee belongs to the
// department.
func (r *DirectoryRepo) IsEmployeeInDepartment(ctx context.Context, employeeUID, departmentUID string) (bool, error) {
	count, err := r.employees.CountDocuments(ctx, bson.M{"_id": employeeUID, "departmentUid": departmentUID})
	if err != nil {
		return false, utils.DirectoryError(err)
	}
	return count > 0, nil
}

// IsEmployeeInService reports whether the employee belongs to any
// department of the service.
func (r *DirectoryRepo) IsEmployeeInService(ctx context.Context, employeeUID, serviceUID string) (bool, error) {
	count, err := r.employees.CountDocuments(ctx, bson.M{"_id": employeeUID, "serviceUid": serviceUID})
	if err != nil {
		return false, utils.DirectoryError(err)
	}
	return count > 0, nil
}

// IsServiceOwnerOfDepartment reports whether the department belongs to the
// service.
func (r *DirectoryRepo) IsServiceOwnerOfDepartment(ctx context.Context, serviceUID, departmentUID string) (bool, error) {
	count, err := r.departments.CountDocuments(ctx, bson.M{"_id": departmentUID, "serviceUid": serviceUID})
	if err != nil {
		return false, utils.DirectoryError(err)
	}
	return count > 0, nil
}

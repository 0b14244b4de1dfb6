package models

import (
	"time"
)

// Department is an organizational entity resolved from the external
// directory. Categories lists the category ids the department's employees
// may reserve.
type Department struct {
	UID         string    `bson:"_id" json:"uid"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Address     string    `bson:"address" json:"address"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	ServiceUID  string    `bson:"serviceUid" json:"serviceUid"`
	Categories  []uint    `bson:"categories" json:"categories"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// AllowsCategory reports whether the department may work issues of the
// given category.
func (d Department) AllowsCategory(categoryID uint) bool {
	for _, id := range d.Categories {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Employee is a directory record for a city-service worker.
type Employee struct {
	UID           string `bson:"_id" json:"uid"`
	Name          string `bson:"name" json:"name"`
	Email         string `bson:"email" json:"email"`
	ServiceUID    string `bson:"serviceUid" json:"serviceUid"`
	DepartmentUID string `bson:"departmentUid" json:"departmentUid"`
}

package services

import (
	"context"
	"testing"

	"cityfix-be/utils"
)

func TestDeleteCategoryStillReferenced(t *testing.T) {
	categories := &fakeCategoryStore{
		CountIssuesReferencingFn: func(ctx context.Context, id uint) (int64, error) {
			return 4, nil
		},
	}
	svc := NewCategoryService(categories)

	err := svc.DeleteCategory(context.Background(), 2)
	if !utils.IsKind(err, utils.KindInvalidState) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestDeleteCategoryUnreferenced(t *testing.T) {
	deleted := false
	categories := &fakeCategoryStore{
		CountIssuesReferencingFn: func(ctx context.Context, id uint) (int64, error) {
			return 0, nil
		},
		DeleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewCategoryService(categories)

	if err := svc.DeleteCategory(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected the category to be deleted")
	}
}

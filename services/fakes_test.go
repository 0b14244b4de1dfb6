package services

import (
	"context"

	"cityfix-be/models"
	"cityfix-be/repository"
)

// Function-field fakes over the store interfaces. Tests set only the
// functions they expect to be called; an unexpected call panics on the
// nil field and fails the test loudly.

type fakeIssueStore struct {
	CreateFn           func(ctx context.Context, issue *models.Issue) error
	FindByIDFn         func(ctx context.Context, id uint) (*models.Issue, error)
	ExistsFn           func(ctx context.Context, id uint) (bool, error)
	ListFn             func(ctx context.Context, filter repository.IssueFilter, page repository.PageRequest) ([]models.Issue, error)
	CountFn            func(ctx context.Context, filter repository.IssueFilter) (int64, error)
	ListByHolderFn     func(ctx context.Context, holder repository.HolderFilter, filter repository.IssueFilter, page repository.PageRequest) ([]models.Issue, error)
	CountByCategoryFn  func(ctx context.Context) ([]repository.CategoryCount, error)
	TransitionStatusFn func(ctx context.Context, id uint, from, to models.IssueStatus) error
}

func (f *fakeIssueStore) Create(ctx context.Context, issue *models.Issue) error {
	return f.CreateFn(ctx, issue)
}

func (f *fakeIssueStore) FindByID(ctx context.Context, id uint) (*models.Issue, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeIssueStore) Exists(ctx context.Context, id uint) (bool, error) {
	return f.ExistsFn(ctx, id)
}

func (f *fakeIssueStore) List(ctx context.Context, filter repository.IssueFilter, page repository.PageRequest) ([]models.Issue, error) {
	return f.ListFn(ctx, filter, page)
}

func (f *fakeIssueStore) Count(ctx context.Context, filter repository.IssueFilter) (int64, error) {
	return f.CountFn(ctx, filter)
}

func (f *fakeIssueStore) ListByHolder(ctx context.Context, holder repository.HolderFilter, filter repository.IssueFilter, page repository.PageRequest) ([]models.Issue, error) {
	return f.ListByHolderFn(ctx, holder, filter, page)
}

func (f *fakeIssueStore) CountByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	return f.CountByCategoryFn(ctx)
}

func (f *fakeIssueStore) TransitionStatus(ctx context.Context, id uint, from, to models.IssueStatus) error {
	return f.TransitionStatusFn(ctx, id, from, to)
}

type fakeReservationStore struct {
	CreateWithTransitionFn func(ctx context.Context, reservation *models.IssueReservation) error
	FindByIDFn             func(ctx context.Context, id uint) (*models.IssueReservation, error)
	FindByIssueIDFn        func(ctx context.Context, issueID uint) (*models.IssueReservation, error)
	ListFn                 func(ctx context.Context, filter repository.HolderFilter, page repository.PageRequest) ([]models.IssueReservation, error)
	CountFn                func(ctx context.Context, filter repository.HolderFilter) (int64, error)
}

func (f *fakeReservationStore) CreateWithTransition(ctx context.Context, reservation *models.IssueReservation) error {
	return f.CreateWithTransitionFn(ctx, reservation)
}

func (f *fakeReservationStore) FindByID(ctx context.Context, id uint) (*models.IssueReservation, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeReservationStore) FindByIssueID(ctx context.Context, issueID uint) (*models.IssueReservation, error) {
	return f.FindByIssueIDFn(ctx, issueID)
}

func (f *fakeReservationStore) List(ctx context.Context, filter repository.HolderFilter, page repository.PageRequest) ([]models.IssueReservation, error) {
	return f.ListFn(ctx, filter, page)
}

func (f *fakeReservationStore) Count(ctx context.Context, filter repository.HolderFilter) (int64, error) {
	return f.CountFn(ctx, filter)
}

type fakeSolutionStore struct {
	CreateWithTransitionFn func(ctx context.Context, solution *models.IssueSolution) error
	FindByIDFn             func(ctx context.Context, id uint) (*models.IssueSolution, error)
	FindByIssueIDFn        func(ctx context.Context, issueID uint) (*models.IssueSolution, error)
	ListFn                 func(ctx context.Context, filter repository.HolderFilter, page repository.PageRequest) ([]models.IssueSolution, error)
	CountFn                func(ctx context.Context, filter repository.HolderFilter) (int64, error)
	ResolutionDurationsFn  func(ctx context.Context, filter repository.HolderFilter) ([]float64, error)
}

func (f *fakeSolutionStore) CreateWithTransition(ctx context.Context, solution *models.IssueSolution) error {
	return f.CreateWithTransitionFn(ctx, solution)
}

func (f *fakeSolutionStore) FindByID(ctx context.Context, id uint) (*models.IssueSolution, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeSolutionStore) FindByIssueID(ctx context.Context, issueID uint) (*models.IssueSolution, error) {
	return f.FindByIssueIDFn(ctx, issueID)
}

func (f *fakeSolutionStore) List(ctx context.Context, filter repository.HolderFilter, page repository.PageRequest) ([]models.IssueSolution, error) {
	return f.ListFn(ctx, filter, page)
}

func (f *fakeSolutionStore) Count(ctx context.Context, filter repository.HolderFilter) (int64, error) {
	return f.CountFn(ctx, filter)
}

func (f *fakeSolutionStore) ResolutionDurations(ctx context.Context, filter repository.HolderFilter) ([]float64, error) {
	return f.ResolutionDurationsFn(ctx, filter)
}

type fakeLikeStore struct {
	CreateFn          func(ctx context.Context, like *models.Like) error
	DeleteFn          func(ctx context.Context, issueID uint, residentUID string) error
	ExistsFn          func(ctx context.Context, issueID uint, residentUID string) (bool, error)
	CountByIssueIDFn  func(ctx context.Context, issueID uint) (int64, error)
	CountByIssueIDsFn func(ctx context.Context, issueIDs []uint) (map[uint]int64, error)
	TopLikedFn        func(ctx context.Context, limit int) ([]repository.IssueLikeTotal, error)
}

func (f *fakeLikeStore) Create(ctx context.Context, like *models.Like) error {
	return f.CreateFn(ctx, like)
}

func (f *fakeLikeStore) Delete(ctx context.Context, issueID uint, residentUID string) error {
	return f.DeleteFn(ctx, issueID, residentUID)
}

func (f *fakeLikeStore) Exists(ctx context.Context, issueID uint, residentUID string) (bool, error) {
	return f.ExistsFn(ctx, issueID, residentUID)
}

func (f *fakeLikeStore) CountByIssueID(ctx context.Context, issueID uint) (int64, error) {
	return f.CountByIssueIDFn(ctx, issueID)
}

func (f *fakeLikeStore) CountByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint]int64, error) {
	return f.CountByIssueIDsFn(ctx, issueIDs)
}

func (f *fakeLikeStore) TopLiked(ctx context.Context, limit int) ([]repository.IssueLikeTotal, error) {
	return f.TopLikedFn(ctx, limit)
}

type fakeCategoryStore struct {
	CreateFn                 func(ctx context.Context, category *models.Category) error
	FindAllFn                func(ctx context.Context) ([]models.Category, error)
	FindByIDFn               func(ctx context.Context, id uint) (*models.Category, error)
	UpdateFn                 func(ctx context.Context, category *models.Category) error
	DeleteFn                 func(ctx context.Context, id uint) error
	CountIssuesReferencingFn func(ctx context.Context, id uint) (int64, error)
}

func (f *fakeCategoryStore) Create(ctx context.Context, category *models.Category) error {
	return f.CreateFn(ctx, category)
}

func (f *fakeCategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	return f.FindAllFn(ctx)
}

func (f *fakeCategoryStore) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeCategoryStore) Update(ctx context.Context, category *models.Category) error {
	return f.UpdateFn(ctx, category)
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeCategoryStore) CountIssuesReferencing(ctx context.Context, id uint) (int64, error) {
	return f.CountIssuesReferencingFn(ctx, id)
}

type fakeModerationStore struct {
	CreateWithDeclineFn func(ctx context.Context, response *models.ModerationResponse) error
	FindByIssueIDFn     func(ctx context.Context, issueID uint) (*models.ModerationResponse, error)
}

func (f *fakeModerationStore) CreateWithDecline(ctx context.Context, response *models.ModerationResponse) error {
	return f.CreateWithDeclineFn(ctx, response)
}

func (f *fakeModerationStore) FindByIssueID(ctx context.Context, issueID uint) (*models.ModerationResponse, error) {
	return f.FindByIssueIDFn(ctx, issueID)
}

type fakeDirectory struct {
	GetDepartmentFn              func(ctx context.Context, uid string) (*models.Department, error)
	GetEmployeeFn                func(ctx context.Context, uid string) (*models.Employee, error)
	IsEmployeeInDepartmentFn     func(ctx context.Context, employeeUID, departmentUID string) (bool, error)
	IsEmployeeInServiceFn        func(ctx context.Context, employeeUID, serviceUID string) (bool, error)
	IsServiceOwnerOfDepartmentFn func(ctx context.Context, serviceUID, departmentUID string) (bool, error)
}

func (f *fakeDirectory) GetDepartment(ctx context.Context, uid string) (*models.Department, error) {
	return f.GetDepartmentFn(ctx, uid)
}

func (f *fakeDirectory) GetEmployee(ctx context.Context, uid string) (*models.Employee, error) {
	return f.GetEmployeeFn(ctx, uid)
}

func (f *fakeDirectory) IsEmployeeInDepartment(ctx context.Context, employeeUID, departmentUID string) (bool, error) {
	return f.IsEmployeeInDepartmentFn(ctx, employeeUID, departmentUID)
}

func (f *fakeDirectory) IsEmployeeInService(ctx context.Context, employeeUID, serviceUID string) (bool, error) {
	return f.IsEmployeeInServiceFn(ctx, employeeUID, serviceUID)
}

func (f *fakeDirectory) IsServiceOwnerOfDepartment(ctx context.Context, serviceUID, departmentUID string) (bool, error) {
	return f.IsServiceOwnerOfDepartmentFn(ctx, serviceUID, departmentUID)
}

type fakeStorage struct {
	UploadFn func(ctx context.Context, data []byte, contentType, originalName string) (string, error)
	RemoveFn func(ctx context.Context, locator string) error
}

func (f *fakeStorage) Upload(ctx context.Context, data []byte, contentType, originalName string) (string, error) {
	return f.UploadFn(ctx, data, contentType, originalName)
}

func (f *fakeStorage) Remove(ctx context.Context, locator string) error {
	return f.RemoveFn(ctx, locator)
}

type fakeNotifier struct {
	published []StatusNotification
	err       error
}

func (f *fakeNotifier) PublishStatusChange(ctx context.Context, notification StatusNotification) error {
	f.published = append(f.published, notification)
	return f.err
}

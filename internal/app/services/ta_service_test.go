package services

import (
	"context"
	"errors"
	"testing"

	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

type fakeContractStore struct {
	contracts []*models.Contract
	nextID    int64
}

func newFakeContractStore() *fakeContractStore {
	return &fakeContractStore{nextID: 1}
}

func (f *fakeContractStore) Create(_ context.Context, contract *models.Contract) error {
	contract.ID = f.nextID
	f.nextID++
	clone := *contract
	f.contracts = append(f.contracts, &clone)
	return nil
}

func (f *fakeContractStore) GetByUsername(_ context.Context, username string) ([]*models.Contract, error) {
	var out []*models.Contract
	for _, contract := range f.contracts {
		if contract.Username == username {
			clone := *contract
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeContractStore) GetByUsernameAndCourse(_ context.Context, username, courseCode string) (*models.Contract, error) {
	for _, contract := range f.contracts {
		if contract.Username == username && contract.CourseCode == courseCode {
			clone := *contract
			return &clone, nil
		}
	}
	return nil, apperrors.ErrContractNotFound
}

func (f *fakeContractStore) SetStatus(_ context.Context, username, courseCode string, status models.ContractStatus) error {
	for _, contract := range f.contracts {
		if contract.Username == username && contract.CourseCode == courseCode {
			contract.Status = status
			return nil
		}
	}
	return apperrors.ErrContractNotFound
}

func (f *fakeContractStore) CountTAs(_ context.Context, courseCode string) (int, error) {
	seen := make(map[string]bool)
	for _, contract := range f.contracts {
		if contract.CourseCode == courseCode {
			seen[contract.Username] = true
		}
	}
	return len(seen), nil
}

type fakeReviewStore struct {
	reviews []*models.Review
	nextID  int64
}

func (f *fakeReviewStore) Create(_ context.Context, review *models.Review) error {
	f.nextID++
	review.ID = f.nextID
	clone := *review
	f.reviews = append(f.reviews, &clone)
	return nil
}

func (f *fakeReviewStore) GetByCourse(_ context.Context, courseCode string) ([]*models.Review, error) {
	var out []*models.Review
	for _, review := range f.reviews {
		if review.CourseCode == courseCode {
			clone := *review
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeWorkloadStore struct {
	workloads []*models.Workload
	nextID    int64
}

func (f *fakeWorkloadStore) Create(_ context.Context, workload *models.Workload) error {
	f.nextID++
	workload.ID = f.nextID
	clone := *workload
	f.workloads = append(f.workloads, &clone)
	return nil
}

func (f *fakeWorkloadStore) HoursByCourse(_ context.Context, courseCode string) ([]int, error) {
	var out []int
	for _, workload := range f.workloads {
		if workload.CourseCode == courseCode {
			out = append(out, workload.Hours)
		}
	}
	return out, nil
}

func newTestTaService() (*TaService, *fakeContractStore, *fakePeerGateway) {
	contracts := newFakeContractStore()
	peers := &fakePeerGateway{}
	return NewTaService(contracts, &fakeReviewStore{}, &fakeWorkloadStore{}, peers), contracts, peers
}

func TestCreateContractStartsDraft(t *testing.T) {
	service, _, peers := newTestTaService()

	contract, err := service.CreateContract(context.Background(), &dto.CreateContractRequest{
		Username:      "jdoe",
		CourseCode:    "CSE1305",
		HoursRequired: 80,
	}, "Bearer tok")
	if err != nil {
		t.Fatalf("CreateContract() error: %v", err)
	}
	if contract.Status != models.ContractDraft {
		t.Errorf("status = %s, want Draft", contract.Status)
	}
	if len(peers.increments) != 1 || peers.increments[0] != "CSE1305" {
		t.Errorf("course increments = %v, want [CSE1305]", peers.increments)
	}
}

func TestCreateContractNegativeHours(t *testing.T) {
	service, _, _ := newTestTaService()

	_, err := service.CreateContract(context.Background(), &dto.CreateContractRequest{
		Username:      "jdoe",
		CourseCode:    "CSE1305",
		HoursRequired: -1,
	}, "tok")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("CreateContract() error = %v, want ErrValidationFailed", err)
	}
}

// A failed headcount bump surfaces the error but does not unwind the
// already-persisted contract.
func TestCreateContractIncrementFailure(t *testing.T) {
	service, contracts, peers := newTestTaService()
	peers.incrementErr = apperrors.NewRemoteCallError("PUT /courses/CSE1305/increment-tas returned status 503")

	_, err := service.CreateContract(context.Background(), &dto.CreateContractRequest{
		Username:      "jdoe",
		CourseCode:    "CSE1305",
		HoursRequired: 80,
	}, "tok")
	if !errors.Is(err, apperrors.ErrRemoteCallFailed) {
		t.Fatalf("CreateContract() error = %v, want ErrRemoteCallFailed", err)
	}

	stored, err := contracts.GetByUsernameAndCourse(context.Background(), "jdoe", "CSE1305")
	if err != nil {
		t.Fatalf("contract should remain persisted: %v", err)
	}
	if stored.Status != models.ContractDraft {
		t.Errorf("stored status = %s, want Draft", stored.Status)
	}
}

func TestSignContract(t *testing.T) {
	service, _, _ := newTestTaService()
	ctx := context.Background()

	if _, err := service.CreateContract(ctx, &dto.CreateContractRequest{
		Username: "jdoe", CourseCode: "CSE1305", HoursRequired: 80,
	}, "tok"); err != nil {
		t.Fatalf("CreateContract() error: %v", err)
	}

	signed, err := service.SignContract(ctx, "jdoe", "CSE1305", "jdoe")
	if err != nil {
		t.Fatalf("SignContract() error: %v", err)
	}
	if signed.Status != models.ContractSigned {
		t.Errorf("status = %s, want Signed", signed.Status)
	}

	// Only the contract holder can sign.
	if _, err := service.SignContract(ctx, "jdoe", "CSE1305", "mallory"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("SignContract(other caller) error = %v, want ErrPermissionDenied", err)
	}
}

func TestSignContractMissing(t *testing.T) {
	service, _, _ := newTestTaService()

	_, err := service.SignContract(context.Background(), "jdoe", "CSE9999", "jdoe")
	if !errors.Is(err, apperrors.ErrContractNotFound) {
		t.Errorf("SignContract() error = %v, want ErrContractNotFound", err)
	}
}

func TestCountTAsDistinctUsernames(t *testing.T) {
	service, _, _ := newTestTaService()
	ctx := context.Background()

	for _, username := range []string{"alice", "bob", "alice"} {
		if _, err := service.CreateContract(ctx, &dto.CreateContractRequest{
			Username: username, CourseCode: "CSE1305", HoursRequired: 80,
		}, "tok"); err != nil {
			t.Fatalf("CreateContract() error: %v", err)
		}
	}
	if _, err := service.CreateContract(ctx, &dto.CreateContractRequest{
		Username: "carol", CourseCode: "CSE2115", HoursRequired: 80,
	}, "tok"); err != nil {
		t.Fatalf("CreateContract() error: %v", err)
	}

	count, err := service.CountTAs(ctx, "CSE1305")
	if err != nil {
		t.Fatalf("CountTAs() error: %v", err)
	}
	if count != 2 {
		t.Errorf("CountTAs() = %d, want 2 (alice counted once, carol elsewhere)", count)
	}
}

func TestCreateReviewRatingBounds(t *testing.T) {
	service, _, _ := newTestTaService()
	ctx := context.Background()

	for _, rating := range []int{0, 6, -3} {
		_, err := service.CreateReview(ctx, &dto.CreateReviewRequest{
			Username: "jdoe", CourseCode: "CSE1305", Rating: rating,
		})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("CreateReview(rating=%d) error = %v, want ErrValidationFailed", rating, err)
		}
	}

	review, err := service.CreateReview(ctx, &dto.CreateReviewRequest{
		Username: "jdoe", CourseCode: "CSE1305", Rating: 5, TextualReview: "great",
	})
	if err != nil {
		t.Fatalf("CreateReview() error: %v", err)
	}
	if review.Rating != 5 {
		t.Errorf("rating = %d, want 5", review.Rating)
	}
}

func TestDeclareWorkloadAndHours(t *testing.T) {
	service, _, _ := newTestTaService()
	ctx := context.Background()

	if _, err := service.DeclareWorkload(ctx, "jdoe", &dto.DeclareWorkloadRequest{CourseCode: "CSE1305", Hours: 0}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("DeclareWorkload(0 hours) error = %v, want ErrValidationFailed", err)
	}

	for _, hours := range []int{10, 14} {
		if _, err := service.DeclareWorkload(ctx, "jdoe", &dto.DeclareWorkloadRequest{CourseCode: "CSE1305", Hours: hours}); err != nil {
			t.Fatalf("DeclareWorkload() error: %v", err)
		}
	}

	got, err := service.WorkloadHours(ctx, "CSE1305")
	if err != nil {
		t.Fatalf("WorkloadHours() error: %v", err)
	}
	if len(got) != 2 || got[0] != 10 || got[1] != 14 {
		t.Errorf("WorkloadHours() = %v, want [10 14]", got)
	}

	// A course with no declarations yields an empty slice, not nil.
	empty, err := service.WorkloadHours(ctx, "CSE9999")
	if err != nil {
		t.Fatalf("WorkloadHours(empty) error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("WorkloadHours(empty) = %v, want []", empty)
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/pkg/interservice"
)

// PeerGateway is the outbound surface of this deployment towards the other
// services. Every call forwards the incoming caller's bearer token verbatim
// (delegated authentication); nothing here mints tokens.
type PeerGateway interface {
	GetCourse(ctx context.Context, courseCode, token string) (*models.Course, error)
	GrantTARole(ctx context.Context, username, token string) error
	CreateContract(ctx context.Context, req *dto.CreateContractRequest, token string) error
	EnqueueNotification(ctx context.Context, username, text, token string) error
	IncrementCourseTAs(ctx context.Context, courseCode, token string) error
	WorkloadHours(ctx context.Context, courseCode, token string) ([]int, error)
	CountTAs(ctx context.Context, courseCode, token string) (int, error)
}

// PeerURLs holds the configured base URLs of the peer services.
type PeerURLs struct {
	AuthBaseURL         string
	CourseBaseURL       string
	TaBaseURL           string
	NotificationBaseURL string
}

// HTTPPeerGateway reaches the peer services over the shared inter-service
// client.
type HTTPPeerGateway struct {
	client *interservice.Client
	urls   PeerURLs
}

// NewHTTPPeerGateway creates a PeerGateway over the given client and URLs.
func NewHTTPPeerGateway(client *interservice.Client, urls PeerURLs) *HTTPPeerGateway {
	return &HTTPPeerGateway{
		client: client,
		urls:   urls,
	}
}

// envelope mirrors the standard response wrapper of peer endpoints.
type envelope[T any] struct {
	Data T `json:"data"`
}

// GetCourse fetches a course snapshot from the course directory.
func (g *HTTPPeerGateway) GetCourse(ctx context.Context, courseCode, token string) (*models.Course, error) {
	var out envelope[models.Course]
	url := fmt.Sprintf("%s/%s", g.urls.CourseBaseURL, courseCode)
	if err := g.client.Get(ctx, url, token, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// GrantTARole asks the identity service to add the ta role to a user.
func (g *HTTPPeerGateway) GrantTARole(ctx context.Context, username, token string) error {
	url := fmt.Sprintf("%s/add-role-ta/%s", g.urls.AuthBaseURL, username)
	return g.client.Put(ctx, url, nil, token, nil)
}

// CreateContract persists a contract in the TA ledger.
func (g *HTTPPeerGateway) CreateContract(ctx context.Context, req *dto.CreateContractRequest, token string) error {
	url := fmt.Sprintf("%s/contracts", g.urls.TaBaseURL)
	return g.client.Post(ctx, url, req, token, nil)
}

// EnqueueNotification appends an inbox item via the notification service.
func (g *HTTPPeerGateway) EnqueueNotification(ctx context.Context, username, text, token string) error {
	url := fmt.Sprintf("%s/create_notification", g.urls.NotificationBaseURL)
	body := &dto.CreateNotificationRequest{
		Username: username,
		Text:     text,
	}
	return g.client.Post(ctx, url, body, token, nil)
}

// IncrementCourseTAs asks the course directory to bump a course's TA
// headcount.
func (g *HTTPPeerGateway) IncrementCourseTAs(ctx context.Context, courseCode, token string) error {
	url := fmt.Sprintf("%s/%s/increment-tas", g.urls.CourseBaseURL, courseCode)
	return g.client.Put(ctx, url, nil, token, nil)
}

// WorkloadHours fetches the raw declared hour entries for a course from the
// TA ledger.
func (g *HTTPPeerGateway) WorkloadHours(ctx context.Context, courseCode, token string) ([]int, error) {
	var out envelope[[]int]
	url := fmt.Sprintf("%s/workload-hours/%s", g.urls.TaBaseURL, courseCode)
	if err := g.client.Get(ctx, url, token, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CountTAs fetches the number of TAs holding a contract for a course.
func (g *HTTPPeerGateway) CountTAs(ctx context.Context, courseCode, token string) (int, error) {
	var out envelope[int]
	url := fmt.Sprintf("%s/countTa/%s", g.urls.TaBaseURL, courseCode)
	if err := g.client.Get(ctx, url, token, &out); err != nil {
		return 0, err
	}
	return out.Data, nil
}

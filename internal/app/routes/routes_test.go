package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/app/controllers"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/services"
	"github.com/victoriayuechen/tarecruit/internal/config"
	"github.com/victoriayuechen/tarecruit/internal/middleware"
	"github.com/victoriayuechen/tarecruit/internal/pkg/auth"
)

type memoryNotificationStore struct {
	notifications []*models.Notification
	nextID        int64
}

func (s *memoryNotificationStore) Create(_ context.Context, notification *models.Notification) error {
	s.nextID++
	notification.ID = s.nextID
	clone := *notification
	s.notifications = append(s.notifications, &clone)
	return nil
}

func (s *memoryNotificationStore) GetPendingByUsername(_ context.Context, username string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, notification := range s.notifications {
		if notification.Username == username && notification.Status == models.NotificationPending {
			clone := *notification
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *memoryNotificationStore) MarkCompleted(_ context.Context, id int64) error {
	for _, notification := range s.notifications {
		if notification.ID == id {
			notification.Status = models.NotificationCompleted
			return nil
		}
	}
	return nil
}

// notificationRouter mounts only the notification group, the way a split
// deployment of that service would.
func notificationRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "route-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})

	notificationService := services.NewNotificationService(&memoryNotificationStore{}, zerolog.Nop())
	notificationController := controllers.NewNotificationController(notificationService, zerolog.Nop())

	cfg := &config.Config{}
	cfg.Server.Services = []string{config.ServiceNotification}

	router := gin.New()
	SetupRouter(router, cfg, nil, nil, nil, nil, notificationController, middleware.NewAuthMiddleware(jwtService))
	return router, jwtService
}

func bearerFor(t *testing.T, jwtService *auth.JWTService, username string, roles ...string) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{Username: username, Roles: roles})
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return "Bearer " + token
}

func TestCreateNotificationRequiresDeciderRole(t *testing.T) {
	router, jwtService := notificationRouter(t)

	body := `{"username":"jdoe","text":"Newest update for CSE1305 is Accepted"}`
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "no token", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "student", authHeader: bearerFor(t, jwtService, "mallory", "student"), wantStatus: http.StatusForbidden},
		{name: "ta", authHeader: bearerFor(t, jwtService, "tina", "ta"), wantStatus: http.StatusForbidden},
		{name: "lecturer", authHeader: bearerFor(t, jwtService, "prof", "lecturer"), wantStatus: http.StatusCreated},
		{name: "admin", authHeader: bearerFor(t, jwtService, "admin", "admin"), wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/create_notification", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", recorder.Code, tt.wantStatus, recorder.Body.String())
			}
		})
	}
}

func TestGetNotificationsOwnInbox(t *testing.T) {
	router, jwtService := notificationRouter(t)

	enqueue := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/create_notification",
		strings.NewReader(`{"username":"jdoe","text":"Newest update for CSE1305 is Accepted"}`))
	enqueue.Header.Set("Content-Type", "application/json")
	enqueue.Header.Set("Authorization", bearerFor(t, jwtService, "prof", "lecturer"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, enqueue)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("enqueue status = %d, want 201", recorder.Code)
	}

	// The applicant drains their own inbox.
	drain := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/get_notifications/jdoe", nil)
	drain.Header.Set("Authorization", bearerFor(t, jwtService, "jdoe", "student"))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, drain)
	if recorder.Code != http.StatusOK {
		t.Fatalf("drain status = %d, want 200 (body: %s)", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), "Newest update for CSE1305 is Accepted") {
		t.Errorf("drain body missing enqueued text: %s", recorder.Body.String())
	}

	// Another student cannot read it.
	snoop := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/get_notifications/jdoe", nil)
	snoop.Header.Set("Authorization", bearerFor(t, jwtService, "mallory", "student"))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, snoop)
	if recorder.Code != http.StatusForbidden {
		t.Errorf("snoop status = %d, want 403", recorder.Code)
	}
}

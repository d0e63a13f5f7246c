package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mirefen/GloamBot_Go/internal/domain"
	"github.com/mirefen/GloamBot_Go/internal/status"
)

type MockActorService struct {
	mock.Mock
}

func (m *MockActorService) GetOrRegister(ctx context.Context, platform, platformID, username string) (*domain.Actor, error) {
	args := m.Called(ctx, platform, platformID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorService) FindByPlatformID(ctx context.Context, platform, platformID string) (*domain.Actor, error) {
	args := m.Called(ctx, platform, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorService) ApplyOutcome(ctx context.Context, actor *domain.Actor, outcome *domain.EncounterOutcome) (*domain.Actor, error) {
	args := m.Called(ctx, actor, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorService) Heal(ctx context.Context, platform, platformID string, hearts int) (*domain.Actor, bool, error) {
	args := m.Called(ctx, platform, platformID, hearts)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Actor), args.Bool(1), args.Error(2)
}

func (m *MockActorService) AwardLoot(ctx context.Context, actorID string, items []domain.LootItem) error {
	args := m.Called(ctx, actorID, items)
	return args.Error(0)
}

func (m *MockActorService) GetInventory(ctx context.Context, platform, platformID string) (map[string]int, error) {
	args := m.Called(ctx, platform, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func TestHandleGetActor(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockActorService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			query: "?platform=discord&platform_id=discord-1",
			setupMock: func(m *MockActorService) {
				m.On("FindByPlatformID", mock.Anything, "discord", "discord-1").
					Return(&domain.Actor{ID: "a-1", Username: "mirelle", Hearts: 7}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"mirelle"`,
		},
		{
			name:  "Not found",
			query: "?platform=discord&platform_id=nobody",
			setupMock: func(m *MockActorService) {
				m.On("FindByPlatformID", mock.Anything, "discord", "nobody").
					Return(nil, domain.ErrActorNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgActorNotFoundError,
		},
		{
			name:           "Missing platform",
			query:          "?platform_id=discord-1",
			setupMock:      func(m *MockActorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockActorService{}
			tt.setupMock(mockSvc)

			req := httptest.NewRequest("GET", "/actor"+tt.query, nil)
			w := httptest.NewRecorder()

			HandleGetActor(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGetInventory(t *testing.T) {
	mockSvc := &MockActorService{}
	mockSvc.On("GetInventory", mock.Anything, "discord", "discord-1").
		Return(map[string]int{"strider_shell": 4}, nil)

	req := httptest.NewRequest("GET", "/actor/inventory?platform=discord&platform_id=discord-1", nil)
	w := httptest.NewRecorder()

	HandleGetInventory(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"strider_shell":4`)
}

func TestHandleGrantBoost(t *testing.T) {
	InitValidator()

	target := &domain.Actor{ID: "a-1", Username: "mirelle"}

	tests := []struct {
		name           string
		requestBody    GrantBoostRequest
		setupMock      func(*MockActorService)
		expectedStatus int
		expectedBody   string
		verify         func(*testing.T, *status.MemoryProvider)
	}{
		{
			name: "Boost granted",
			requestBody: GrantBoostRequest{
				Platform:   "discord",
				PlatformID: "discord-1",
				Adjustment: 10,
				TTLSeconds: 60,
			},
			setupMock: func(m *MockActorService) {
				m.On("FindByPlatformID", mock.Anything, "discord", "discord-1").Return(target, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Boost granted",
			verify: func(t *testing.T, p *status.MemoryProvider) {
				assert.Equal(t, 60, p.RollAdjustment(context.Background(), "a-1", 50))
			},
		},
		{
			name: "Fated reroll granted",
			requestBody: GrantBoostRequest{
				Platform:    "discord",
				PlatformID:  "discord-1",
				TTLSeconds:  60,
				FatedReroll: true,
			},
			setupMock: func(m *MockActorService) {
				m.On("FindByPlatformID", mock.Anything, "discord", "discord-1").Return(target, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Fated reroll granted",
			verify: func(t *testing.T, p *status.MemoryProvider) {
				assert.True(t, p.FatedRerollActive(context.Background(), "a-1"))
			},
		},
		{
			name: "Zero adjustment rejected",
			requestBody: GrantBoostRequest{
				Platform:   "discord",
				PlatformID: "discord-1",
				TTLSeconds: 60,
			},
			setupMock: func(m *MockActorService) {
				m.On("FindByPlatformID", mock.Anything, "discord", "discord-1").Return(target, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidInputError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockActorService{}
			tt.setupMock(mockSvc)
			boosts := status.NewMemoryProvider()

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/admin/boost", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleGrantBoost(mockSvc, boosts).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			if tt.verify != nil {
				tt.verify(t, boosts)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

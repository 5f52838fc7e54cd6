package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/port/mocks"
	"adsmarket/internal/core/query"
)

type testServer struct {
	campaigns  *mocks.MockCampaignUseCase
	platforms  *mocks.MockPlatformUseCase
	placements *mocks.MockPlacementUseCase
	router     http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{
		campaigns:  mocks.NewMockCampaignUseCase(t),
		platforms:  mocks.NewMockPlatformUseCase(t),
		placements: mocks.NewMockPlacementUseCase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = NewHandler(s.campaigns, s.platforms, s.placements, logger).Router()
	return s
}

func (s *testServer) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCreateCampaign(t *testing.T) {
	s := newTestServer(t)
	user := uuid.New()
	created := domain.Campaign{ID: uuid.New(), OwnerID: user, Title: "Spring sale", Status: domain.CampaignDraft}

	s.campaigns.EXPECT().
		CreateCampaign(mock.Anything, domain.Principal{ID: user}, mock.AnythingOfType("port.CreateCampaignInput")).
		Return(created, nil)

	rec := s.do(http.MethodPost, "/api/v1/campaigns", `{
		"title": "Spring sale",
		"objective": "traffic",
		"budget_total": "1000",
		"start_date": "2025-01-01T00:00:00Z",
		"end_date": "2025-01-31T00:00:00Z"
	}`, map[string]string{headerUserID: user.String()})

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Campaign
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domain.CampaignDraft, got.Status)
}

func TestCreateCampaignRejectsUnknownFields(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodPost, "/api/v1/campaigns", `{"title":"x","budget_spent":"5"}`,
		map[string]string{headerUserID: uuid.NewString()})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BODY_INVALID", decodeError(t, rec).Code)
}

func TestPrincipalHeaders(t *testing.T) {
	s := newTestServer(t)
	mod := uuid.New()
	id := uuid.New()

	s.campaigns.EXPECT().
		ModerateCampaign(mock.Anything, domain.Principal{ID: mod, IsModerator: true, IsAdmin: true}, id,
			port.ModerationInput{Decision: domain.ApprovalRejected, Notes: "misleading claims"}).
		Return(domain.Campaign{ID: id, Status: domain.CampaignRejected}, nil)

	rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/moderation",
		`{"decision":"rejected","notes":"misleading claims"}`,
		map[string]string{headerUserID: mod.String(), headerUserRoles: "Moderator, admin"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/campaigns/"+id.String(), "", map[string]string{headerUserID: "nope"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PRINCIPAL_INVALID", decodeError(t, rec).Code)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.Validation("CAMPAIGN_TITLE_INVALID", "bad"), http.StatusBadRequest, "CAMPAIGN_TITLE_INVALID"},
		{"not found", domain.NotFound(domain.EntityCampaign, uuid.New()), http.StatusNotFound, "CAMPAIGN_NOT_FOUND"},
		{"unauthorized", domain.Unauthorized("nope"), http.StatusForbidden, "UNAUTHORIZED"},
		{"immutable", domain.ImmutableState("live"), http.StatusConflict, "IMMUTABLE_STATE"},
		{"over budget", domain.OverBudget(decimal.NewFromInt(10), decimal.NewFromInt(20)), http.StatusUnprocessableEntity, "OVER_BUDGET"},
		{"conflict", domain.ConcurrentModification(domain.EntityCampaign, uuid.New(), nil), http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"storage", domain.StorageUnavailable(io.ErrUnexpectedEOF), http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
		{"uncoded", &domain.Error{Kind: domain.KindNotModerable}, http.StatusConflict, "NOT_MODERABLE"},
		{"unknown", io.ErrClosedPipe, http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			id := uuid.New()
			s.campaigns.EXPECT().
				ApplySpend(mock.Anything, mock.Anything, id, decimal.RequireFromString("12.50")).
				Return(domain.Campaign{}, tt.err)

			rec := s.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/spend", `{"amount":"12.50"}`, nil)
			require.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestListPlatformsQuery(t *testing.T) {
	s := newTestServer(t)
	filter := url.QueryEscape(`{"status":{"in":["active","paused"]},"audience_size":{"gte":1000}}`)

	s.platforms.EXPECT().
		ListPlatforms(mock.Anything, domain.Principal{}, mock.AnythingOfType("query.Spec")).
		RunAndReturn(func(_ context.Context, _ domain.Principal, spec query.Spec) (query.Page[domain.Platform], error) {
			assert.Equal(t, "rating:desc", spec.Sort)
			assert.Equal(t, 2, spec.Page)
			assert.Equal(t, 50, spec.Limit)
			assert.Equal(t, []any{"active", "paused"}, spec.Filter["status"]["in"])
			assert.Equal(t, json.Number("1000"), spec.Filter["audience_size"]["gte"])
			return query.Page[domain.Platform]{Items: []domain.Platform{}, Page: 2, Limit: 50}, nil
		})

	rec := s.do(http.MethodGet, "/api/v1/platforms?sort=rating:desc&page=2&limit=50&filter="+filter, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"page":2,"limit":50}`, rec.Body.String())
}

func TestListRejectsMalformedFilter(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/api/v1/placements?filter=%5Bbroken", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_FILTER", decodeError(t, rec).Code)

	rec = s.do(http.MethodGet, "/api/v1/placements?limit=many", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePlacementDuplicate(t *testing.T) {
	s := newTestServer(t)
	user := uuid.New()
	in := port.CreatePlacementInput{
		CampaignID:  uuid.New(),
		PlatformID:  uuid.New(),
		StartDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
		AgreedPrice: decimal.NewFromInt(10),
	}
	body, err := json.Marshal(in)
	require.NoError(t, err)

	s.placements.EXPECT().
		CreatePlacement(mock.Anything, domain.Principal{ID: user}, mock.MatchedBy(func(got port.CreatePlacementInput) bool {
			return got.CampaignID == in.CampaignID && got.StartDate.Equal(in.StartDate) && got.AgreedPrice.Equal(in.AgreedPrice)
		})).
		Return(domain.Placement{}, domain.DuplicateBooking(nil))

	rec := s.do(http.MethodPost, "/api/v1/placements", string(body), map[string]string{headerUserID: user.String()})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_BOOKING", decodeError(t, rec).Code)
}

func TestResyncRoute(t *testing.T) {
	s := newTestServer(t)
	admin := uuid.New()
	id := uuid.New()
	s.placements.EXPECT().
		ResyncCounters(mock.Anything, domain.Principal{ID: admin, IsAdmin: true}, id).
		Return(domain.Platform{ID: id, ActiveCampaignsCount: 2}, nil)

	rec := s.do(http.MethodPost, "/api/v1/platforms/"+id.String()+"/resync", "",
		map[string]string{headerUserID: admin.String(), headerUserRoles: "admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Platform
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(2), got.ActiveCampaignsCount)
}

func TestDeletePlatformRoute(t *testing.T) {
	s := newTestServer(t)
	owner := uuid.New()
	id := uuid.New()
	s.platforms.EXPECT().
		DeletePlatform(mock.Anything, domain.Principal{ID: owner}, id).
		Return(domain.Platform{}, domain.ImmutableState("platform %s has 1 active placements", id))

	rec := s.do(http.MethodDelete, "/api/v1/platforms/"+id.String(), "", map[string]string{headerUserID: owner.String()})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(domain.KindImmutableState), decodeError(t, rec).Code)
}

func TestBadPathID(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/api/v1/placements/not-a-uuid", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID_INVALID", decodeError(t, rec).Code)
}

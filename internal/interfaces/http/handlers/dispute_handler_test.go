package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
)

func newDisputeRouter(disputeRepo *stubDisputeRepo) *gin.Engine {
	h := NewDisputeHandler(usecases.NewDisputeUsecase(disputeRepo))

	r := newTestRouter()
	r.POST("/api/v1/disputes", h.File)
	admin := r.Group("/api/v1/admin", asAdmin("ops@crowdwave.eu"))
	admin.GET("/disputes", h.List)
	admin.GET("/disputes/stats", h.Stats)
	admin.GET("/disputes/:id", h.Get)
	admin.PATCH("/disputes/:id/status", h.UpdateStatus)
	admin.POST("/disputes/:id/assign", h.Assign)
	admin.DELETE("/disputes/:id", h.Delete)
	return r
}

func fileDisputeBody() gin.H {
	return gin.H{
		"reporterId":     uuid.New().String(),
		"reportedUserId": uuid.New().String(),
		"bookingId":      uuid.New().String(),
		"reason":         "damaged_package",
		"description":    "box arrived crushed",
	}
}

func TestDisputeHandlerFile(t *testing.T) {
	var created *entities.Dispute
	r := newDisputeRouter(&stubDisputeRepo{
		createFn: func(ctx context.Context, d *entities.Dispute) error {
			created = d
			return nil
		},
	})

	w := performJSON(t, r, http.MethodPost, "/api/v1/disputes", fileDisputeBody())

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	require.Equal(t, entities.DisputeStatusPending, created.Status)
	require.Equal(t, entities.DisputePriorityMedium, created.Priority)
	require.Regexp(t, `^DSP-\d+-\d{3}$`, created.DisputeID)
}

func TestDisputeHandlerFileUnknownReason(t *testing.T) {
	body := fileDisputeBody()
	body["reason"] = "vibes"
	r := newDisputeRouter(&stubDisputeRepo{})

	w := performJSON(t, r, http.MethodPost, "/api/v1/disputes", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDisputeHandlerUpdateStatusResolved(t *testing.T) {
	id := uuid.New()
	var updated *entities.Dispute
	r := newDisputeRouter(&stubDisputeRepo{
		getFn: func(ctx context.Context, got uuid.UUID) (*entities.Dispute, error) {
			return &entities.Dispute{ID: got, Status: entities.DisputeStatusUnderReview, CreatedAt: time.Now()}, nil
		},
		updateFn: func(ctx context.Context, d *entities.Dispute) error {
			updated = d
			return nil
		},
	})

	resolution := "refund issued to sender"
	resolutionType := "refund_issued"
	w := performJSON(t, r, http.MethodPatch, "/api/v1/admin/disputes/"+id.String()+"/status", gin.H{
		"status":         "resolved",
		"resolution":     resolution,
		"resolutionType": resolutionType,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updated)
	require.Equal(t, entities.DisputeStatusResolved, updated.Status)
	require.True(t, updated.ResolvedAt.Valid)
}

func TestDisputeHandlerUpdateStatusUnknown(t *testing.T) {
	id := uuid.New()
	r := newDisputeRouter(&stubDisputeRepo{
		getFn: func(ctx context.Context, got uuid.UUID) (*entities.Dispute, error) {
			return &entities.Dispute{ID: got, Status: entities.DisputeStatusPending}, nil
		},
	})

	w := performJSON(t, r, http.MethodPatch, "/api/v1/admin/disputes/"+id.String()+"/status", gin.H{
		"status": "closed",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDisputeHandlerAssign(t *testing.T) {
	id := uuid.New()
	var updated *entities.Dispute
	r := newDisputeRouter(&stubDisputeRepo{
		getFn: func(ctx context.Context, got uuid.UUID) (*entities.Dispute, error) {
			return &entities.Dispute{ID: got, Status: entities.DisputeStatusPending}, nil
		},
		updateFn: func(ctx context.Context, d *entities.Dispute) error {
			updated = d
			return nil
		},
	})

	w := performJSON(t, r, http.MethodPost, "/api/v1/admin/disputes/"+id.String()+"/assign", gin.H{
		"adminId":   uuid.New().String(),
		"adminName": "Ops Admin",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updated)
	require.Equal(t, entities.DisputeStatusUnderReview, updated.Status)
	require.Equal(t, "Ops Admin", updated.AssignedTo.String)
}

func TestDisputeHandlerInvalidID(t *testing.T) {
	r := newDisputeRouter(&stubDisputeRepo{})

	w := performJSON(t, r, http.MethodGet, "/api/v1/admin/disputes/nope", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid dispute ID")
}

func TestDisputeHandlerStats(t *testing.T) {
	r := newDisputeRouter(&stubDisputeRepo{
		statsFn: func(ctx context.Context) (*entities.DisputeStats, error) {
			return &entities.DisputeStats{Total: 7, Pending: 3, Resolved: 4}, nil
		},
	})

	w := performJSON(t, r, http.MethodGet, "/api/v1/admin/disputes/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var stats entities.DisputeStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, int64(7), stats.Total)
}

package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordersUpdateCollectors(t *testing.T) {
	before := testutil.ToFloat64(tasksCompleted.WithLabelValues("WATCH"))
	RecordTaskCompleted("WATCH", 0.10)
	assert.Equal(t, before+1, testutil.ToFloat64(tasksCompleted.WithLabelValues("WATCH")))

	beforeVIP := testutil.ToFloat64(vipPurchases.WithLabelValues("vip1"))
	RecordVIPPurchase("vip1")
	assert.Equal(t, beforeVIP+1, testutil.ToFloat64(vipPurchases.WithLabelValues("vip1")))

	beforePending := testutil.ToFloat64(withdrawals.WithLabelValues("PENDING"))
	RecordWithdrawal("PENDING")
	assert.Equal(t, beforePending+1, testutil.ToFloat64(withdrawals.WithLabelValues("PENDING")))
}

func TestHandlerServesRegistry(t *testing.T) {
	RecordHTTPRequest("GET", "/health", 200, 3*time.Millisecond)
	RecordLogin("created")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "tasker_http_requests_total")
	assert.Contains(t, body, `tasker_users_logins_total{outcome="created"}`)
}

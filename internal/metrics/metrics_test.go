package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/rooms", "200"))

	RecordHTTPRequest("GET", "/rooms", "200", 0.05)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/rooms", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordConflictRejected(t *testing.T) {
	before := testutil.ToFloat64(ConflictsRejectedTotal.WithLabelValues("room"))

	RecordConflictRejected("room")
	RecordConflictRejected("room")

	after := testutil.ToFloat64(ConflictsRejectedTotal.WithLabelValues("room"))
	assert.Equal(t, before+2, after)
}

func TestRecordRoomBooking(t *testing.T) {
	before := testutil.ToFloat64(RoomBookingsTotal.WithLabelValues("PT Session"))

	RecordRoomBooking("PT Session")

	after := testutil.ToFloat64(RoomBookingsTotal.WithLabelValues("PT Session"))
	assert.Equal(t, before+1, after)
}

func TestRecordSessionScheduled(t *testing.T) {
	before := testutil.ToFloat64(SessionsScheduledTotal)

	RecordSessionScheduled()

	assert.Equal(t, before+1, testutil.ToFloat64(SessionsScheduledTotal))
}

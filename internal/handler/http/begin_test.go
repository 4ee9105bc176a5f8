package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/txgate/txgate/models"
	"go.uber.org/mock/gomock"
)

func beginRequest(timeout string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/txn/v1/ut/begin", nil)
	if timeout != "" {
		req.Header.Set(models.TimeoutHeader, timeout)
	}
	return req
}

func TestBegin_ReturnsEncodedXid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, beginner := newMockedRouter(t, ctrl)
	want := testXid(3)

	beginner.EXPECT().
		Begin(gomock.Any(), 60*time.Second).
		Return(want, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, beginRequest("60"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-txg-xid;version=1", rec.Header().Get("Content-Type"))

	decoded, err := wire.DecodeXid(rec.Body.Bytes())
	require.NoError(t, err)
	assert.True(t, want.Equal(decoded))
}

func TestBegin_MissingTimeoutHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: the directory must never be touched
	router, _, _ := newMockedRouter(t, ctrl)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, beginRequest(""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestBegin_NonIntegerTimeoutHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newMockedRouter(t, ctrl)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, beginRequest("soon"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestBegin_SkipsContentNegotiation(t *testing.T) {
	// Begin has no Xid body, so it must not demand the xid media type
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, beginner := newMockedRouter(t, ctrl)

	beginner.EXPECT().
		Begin(gomock.Any(), 5*time.Second).
		Return(testXid(1), nil)

	req := beginRequest("5")
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBegin_DirectoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, beginner := newMockedRouter(t, ctrl)

	beginner.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		Return(models.Xid{}, errors.New("manager refused"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, beginRequest("60"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	record := decodeErrorBody(t, rec)
	assert.Equal(t, models.KindInternal, record.Kind)
	assert.Contains(t, record.Message, "manager refused")
}

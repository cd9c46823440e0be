package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsToOKOnBareWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	_, err := w.Write([]byte(`{"status":"ok"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecordsExplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.StatusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSecondWriteHeaderIsDropped(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, w.StatusCode(), "first status wins")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBytesAccumulateAcrossWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	_, err := w.Write([]byte("hello "))
	require.NoError(t, err)
	_, err = w.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, 11, w.BytesWritten())
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestUnwrapReturnsOriginal(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	assert.Same(t, http.ResponseWriter(rec), w.Unwrap())
}

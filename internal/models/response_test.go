package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOKResponse(t *testing.T) {
	response := NewOKResponse(map[string]int{"rows": 11})

	assert.Equal(t, 200, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)
	assert.NotNil(t, response.Data)
}

func TestResponseCurrentTimeIsEpochMillis(t *testing.T) {
	now := time.Now().UnixNano() / int64(time.Millisecond)
	got := ResponseCurrentTime()
	assert.InDelta(t, now, got, 1000)
}

package model_test

import (
	"testing"
	"time"

	"eventflow/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_StartsAt(t *testing.T) {
	event := &model.Event{
		Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Time: time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC),
	}

	assert.Equal(t, time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC), event.StartsAt())
	assert.Equal(t, "2025-06-01", event.DateString())
	assert.Equal(t, "18:30", event.TimeString())
}

func TestEvent_IsOrganizedBy(t *testing.T) {
	event := &model.Event{OrganizerID: 7}

	assert.True(t, event.IsOrganizedBy(7))
	assert.False(t, event.IsOrganizedBy(8))
}

func TestDateFilter_IsValid(t *testing.T) {
	assert.True(t, model.DateFilterAll.IsValid())
	assert.True(t, model.DateFilterUpcoming.IsValid())
	assert.True(t, model.DateFilterPast.IsValid())
	assert.False(t, model.DateFilter("tomorrow").IsValid())
}

func TestUpdateEventParams_IsEmpty(t *testing.T) {
	assert.True(t, model.UpdateEventParams{}.IsEmpty())

	title := "New"
	assert.False(t, model.UpdateEventParams{Title: &title}.IsEmpty())
}

func TestNewEventResponse(t *testing.T) {
	t.Run("WithQRCode", func(t *testing.T) {
		ref := "qr_codes/x_qr_code_3.png"
		resp := model.NewEventResponse(&model.Event{ID: 3, Title: "Go", QRCode: &ref})

		require.NotNil(t, resp.QRCodeURL)
		assert.Equal(t, "/api/v1/events/3/qr-code", *resp.QRCodeURL)
		assert.Nil(t, resp.IsRegistered)
	})

	t.Run("WithoutQRCode", func(t *testing.T) {
		resp := model.NewEventResponse(&model.Event{ID: 3})
		assert.Nil(t, resp.QRCodeURL)
	})

	t.Run("EmptyList", func(t *testing.T) {
		resp := model.NewEventResponses(nil)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}

package ics

import (
	"bytes"
	"testing"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vntruongson/phungvu-api/internal/liturgy"
)

func TestYear(t *testing.T) {
	svc, err := liturgy.New(liturgy.Options{})
	require.NoError(t, err)

	data, err := NewGenerator(svc).Year(2025)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	summaries := map[string]string{}
	count := 0
	for _, child := range cal.Children {
		if child.Name != ical.CompEvent {
			continue
		}
		count++
		start := child.Props.Get(ical.PropDateTimeStart)
		summary := child.Props.Get(ical.PropSummary)
		require.NotNil(t, start)
		require.NotNil(t, summary)
		summaries[start.Value] = summary.Value
	}

	// Every Sunday plus the graded feasts; well over one event a week.
	assert.Greater(t, count, 52)

	assert.Equal(t, "Chúa Nhật Phục Sinh", summaries["20250420"])
	assert.Equal(t, "Lễ Chúa Giáng Sinh", summaries["20251225"])
	assert.Equal(t, "Đức Mẹ Hồn Xác Lên Trời", summaries["20250815"])

	// Plain Ordinary Time weekdays stay out of the feed.
	_, ok := summaries["20250609"]
	assert.False(t, ok)
}

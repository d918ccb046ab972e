package vehiclefilter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofiltro/catalog/pkg/logger"
	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

func TestSlogAuditorRecord(t *testing.T) {
	var buf bytes.Buffer
	auditor := vehiclefilter.NewSlogAuditor(logger.New(logger.WithOutput(&buf)))

	auditor.Record(context.Background(), vehiclefilter.Selection{
		vehiclefilter.DimensionVehicleType: "camion",
		vehiclefilter.DimensionFuelType:    "diesel",
	}, "203.0.113.7")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "vehicle filter usage", record["msg"])
	assert.Equal(t, "203.0.113.7", record["origin"])
	assert.Equal(t, "camion", record["vehicle_type"])
	assert.Equal(t, "diesel", record["fuel_type"])
	assert.NotEmpty(t, record["event_id"])
	assert.NotContains(t, record, "oil_type")
}

func TestSlogAuditorTruncatesOrigin(t *testing.T) {
	var buf bytes.Buffer
	auditor := vehiclefilter.NewSlogAuditor(logger.New(logger.WithOutput(&buf)))

	auditor.Record(context.Background(), vehiclefilter.Selection{}, strings.Repeat("x", 200)+"\x00")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	origin, ok := record["origin"].(string)
	require.True(t, ok)
	assert.LessOrEqual(t, len(origin), 64)
	assert.NotContains(t, origin, "\x00")
}

func TestSlogAuditorNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		auditor := vehiclefilter.NewSlogAuditor(nil)
		auditor.Record(context.Background(), nil, "")
	})

	assert.NotPanics(t, func() {
		var buf bytes.Buffer
		auditor := vehiclefilter.NewSlogAuditor(logger.New(logger.WithOutput(&buf)))
		auditor.Record(context.Background(), vehiclefilter.Selection{
			vehiclefilter.Dimension("weird\x00dim"): "value",
		}, "origin")
	})
}

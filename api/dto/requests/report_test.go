package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportRequest_ResolveTopic(t *testing.T) {
	tests := []struct {
		name      string
		req       ReportRequest
		wantTopic string
		wantOK    bool
	}{
		{"free text", ReportRequest{Topic: "tax reform"}, "tax reform", true},
		{"empty passes through", ReportRequest{}, "", true},
		{"preset wins", ReportRequest{Topic: "ignored", Preset: "energy"}, "Energy Power Sector Circular Debt Pakistan", true},
		{"preset with spaces", ReportRequest{Preset: " energy "}, "Energy Power Sector Circular Debt Pakistan", true},
		{"unknown preset", ReportRequest{Preset: "sports"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := tt.req.ResolveTopic()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTopic, topic)
		})
	}
}

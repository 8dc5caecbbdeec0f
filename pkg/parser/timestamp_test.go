package parser

import (
	"testing"
	"time"
)

func TestTimestampExtractor_Extract(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		stamp   string
		want    time.Time
		wantErr bool
	}{
		{
			name:   "android 12-hour",
			layout: "1/2/06, 3:04 pm",
			stamp:  "12/01/23, 10:15 am - ",
			want:   time.Date(2023, 12, 1, 10, 15, 0, 0, time.UTC),
		},
		{
			name:   "android 12-hour afternoon",
			layout: "1/2/06, 3:04 pm",
			stamp:  "1/9/24, 11:59 pm - ",
			want:   time.Date(2024, 1, 9, 23, 59, 0, 0, time.UTC),
		},
		{
			name:   "android 24-hour",
			layout: "2/1/06, 15:04",
			stamp:  "01/12/23, 22:15 - ",
			want:   time.Date(2023, 12, 1, 22, 15, 0, 0, time.UTC),
		},
		{
			name:   "ios bracketed",
			layout: "1/2/06, 3:04:05 PM",
			stamp:  "[12/01/23, 10:15:09 AM] ",
			want:   time.Date(2023, 12, 1, 10, 15, 9, 0, time.UTC),
		},
		{
			name:    "garbage",
			layout:  "1/2/06, 3:04 pm",
			stamp:   "hello world - ",
			wantErr: true,
		},
		{
			name:    "wrong clock convention",
			layout:  "1/2/06, 3:04 pm",
			stamp:   "12/01/23, 22:15 - ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimestampExtractor(tt.layout).Extract(tt.stamp)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Extract(%q) expected error, got %v", tt.stamp, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract(%q) error = %v", tt.stamp, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.stamp, got, tt.want)
			}
		})
	}
}

package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "wikipedia",
			objectType:  "summary",
			identifier:  "photosynthesis",
			paramsKey:   nil,
			expectedKey: "studyhelper:wikipedia:summary:photosynthesis",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "wikipedia",
			objectType:  "summary",
			identifier:  "photosynthesis",
			paramsKey:   []string{},
			expectedKey: "studyhelper:wikipedia:summary:photosynthesis",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "study",
			objectType:  "content",
			identifier:  "calculus",
			paramsKey:   []string{"math", "v1"},
			expectedKey: "studyhelper:study:content:calculus:math_v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestTopicKey(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Photosynthesis", "studyhelper:wikipedia:summary:photosynthesis"},
		{"  photosynthesis ", "studyhelper:wikipedia:summary:photosynthesis"},
		{"Black Hole", "studyhelper:wikipedia:summary:black hole"},
	}
	for _, tt := range tests {
		if got := TopicKey(tt.topic); got != tt.want {
			t.Errorf("TopicKey(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

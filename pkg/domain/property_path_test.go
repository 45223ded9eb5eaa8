package domain

import (
	"reflect"
	"testing"
)

func intPtr(i int) *int {
	return &i
}

func TestPropertyPathManager_BuildPath(t *testing.T) {
	pm := NewPropertyPathManager()

	tests := []struct {
		name        string
		parentPath  string
		propertyKey string
		index       *int
		expected    string
	}{
		{
			name:        "simple property",
			propertyKey: "name",
			expected:    "name",
		},
		{
			name:        "nested property",
			parentPath:  "zone",
			propertyKey: "fqdn",
			expected:    "zone.fqdn",
		},
		{
			name:        "array with property",
			parentPath:  "records",
			propertyKey: "target",
			index:       intPtr(0),
			expected:    "records[0].target",
		},
		{
			name:        "negative index ignored",
			parentPath:  "records",
			propertyKey: "target",
			index:       intPtr(-1),
			expected:    "records.target",
		},
		{
			name:        "whitespace handling",
			parentPath:  "  zone  ",
			propertyKey: "  fqdn  ",
			expected:    "zone.fqdn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pm.BuildPath(tt.parentPath, tt.propertyKey, tt.index)
			if result != tt.expected {
				t.Errorf("BuildPath() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPropertyPathManager_ParsePath(t *testing.T) {
	pm := NewPropertyPathManager()

	tests := []struct {
		name     string
		path     string
		expected []PropertyPathSegment
		wantErr  bool
	}{
		{
			name:     "empty path",
			path:     "",
			expected: []PropertyPathSegment{},
		},
		{
			name: "nested with array",
			path: "data.records[2].target",
			expected: []PropertyPathSegment{
				{Key: "data"},
				{Key: "records", Index: intPtr(2)},
				{Key: "target"},
			},
		},
		{
			name:    "invalid characters",
			path:    "data records",
			wantErr: true,
		},
		{
			name:    "double dot",
			path:    "data..records",
			wantErr: true,
		},
		{
			name:    "broken brackets",
			path:    "records[x]",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := pm.ParsePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePath() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParsePath() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestPropertyPathManager_Lookup(t *testing.T) {
	pm := NewPropertyPathManager()

	item := map[string]any{
		"zone": map[string]any{"fqdn": "example.com"},
		"records": []any{
			map[string]any{"target": "1.2.3.4"},
		},
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "nested", path: "zone.fqdn", want: "example.com", wantOK: true},
		{name: "array", path: "records[0].target", want: "1.2.3.4", wantOK: true},
		{name: "index out of range", path: "records[3].target"},
		{name: "missing key", path: "zone.id"},
		{name: "through a scalar", path: "zone.fqdn.length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := pm.Lookup(item, tt.path)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}

			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lookup() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

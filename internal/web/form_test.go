package web

import (
	"reflect"
	"testing"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string][]string
	}{
		{"empty", "", map[string][]string{}},
		{"simple", "a=1&b=2", map[string][]string{"a": {"1"}, "b": {"2"}}},
		{"repeated key", "a=1&a=2", map[string][]string{"a": {"1", "2"}}},
		{"plus is space", "a=hello+world", map[string][]string{"a": {"hello world"}}},
		{"escaped plus", "a=1%2B1", map[string][]string{"a": {"1+1"}}},
		{"bare percent", "a=100%", map[string][]string{"a": {"100%"}}},
		{"bad escape", "a=%zz%4", map[string][]string{"a": {"%zz%4"}}},
		{"semicolon kept", "a=x;y&b=z", map[string][]string{"a": {"x;y"}, "b": {"z"}}},
		{"value with equals", "a=b=c", map[string][]string{"a": {"b=c"}}},
		{"no equals dropped", "flag&a=1", map[string][]string{"a": {"1"}}},
		{"empty value dropped", "a=&b=2", map[string][]string{"b": {"2"}}},
		{"escaped key", "Review%42ody=hi", map[string][]string{"ReviewBody": {"hi"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string][]string(parseForm(tt.body))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseForm(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

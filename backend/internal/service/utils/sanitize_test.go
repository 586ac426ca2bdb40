package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(nil))
	assert.Nil(t, OptionalString(strPtr("")))
	assert.Nil(t, OptionalString(strPtr("   \t")))
	assert.Equal(t, "rev C", *OptionalString(strPtr("  rev C ")))
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected *string
	}{
		{"nil", nil, nil},
		{"blank", strPtr("  "), nil},
		{"plain text untouched", strPtr("reworked U7, R12 swapped"), strPtr("reworked U7, R12 swapped")},
		{"tags stripped", strPtr("<b>cold</b> joint on <i>J3</i>"), strPtr("cold joint on J3")},
		{"script removed", strPtr("<script>alert(1)</script>ok"), strPtr("ok")},
		{"only markup", strPtr("<img src=x onerror=alert(1)>"), nil},
		{"comparison kept readable", strPtr("Vout < 3.3V & ripple > limit"), strPtr("Vout < 3.3V & ripple > limit")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.input))
		})
	}
}

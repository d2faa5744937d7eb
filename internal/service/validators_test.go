package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		minimum int64
		wantErr bool
	}{
		{"valid amount", 10000, 100, false},
		{"exactly the minimum", 100, 100, false},
		{"below the minimum", 99, 100, true},
		{"zero", 0, 1, true},
		{"negative", -500, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount, tt.minimum)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDigits(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"digits only", "1045623456", false},
		{"single digit", "7", false},
		{"empty", "", true},
		{"letters", "10456abc", true},
		{"spaces", "104 562", true},
		{"plus prefix", "+573001234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDigits("documento", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

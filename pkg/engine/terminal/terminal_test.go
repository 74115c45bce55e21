package terminal

import (
	"errors"
	"testing"
)

func TestFits(t *testing.T) {
	tests := []struct {
		w, h    int
		wantErr bool
	}{
		{144, 80, false},
		{200, 100, false},
		{143, 80, true},
		{144, 79, true},
	}

	for _, tt := range tests {
		err := fits(tt.w, tt.h, 144, 80)
		if got := err != nil; got != tt.wantErr {
			t.Errorf("fits(%d, %d) = %v, want error %v", tt.w, tt.h, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrTooSmall) {
			t.Errorf("fits(%d, %d) = %v, want ErrTooSmall", tt.w, tt.h, err)
		}
	}
}

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d, want positive", w, h)
	}
}

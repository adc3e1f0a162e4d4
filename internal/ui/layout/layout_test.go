package layout

import (
	"strings"
	"testing"
)

func TestStepIndicator(t *testing.T) {
	if got := StepIndicator(3, 13); got != "3/13" {
		t.Errorf("StepIndicator = %q", got)
	}
}

func TestRenderHeaderContainsParts(t *testing.T) {
	h := RenderHeader("Check-up", "Question 1 of 12", 2, 13, 100)
	for _, want := range []string{"Check-up", "Question 1 of 12", "2/13"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("below minimum should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

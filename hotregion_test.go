package willowkit

import "testing"

func TestClassifyAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  HotRegion
	}{
		{"neutral", 0, HotRegionNone},
		{"inside left threshold", -0.18, HotRegionNone},
		{"exactly left threshold", -HotRegionThreshold, HotRegionNone},
		{"past left threshold", -0.28, HotRegionLeft},
		{"left saturation", -MaxSwipeAngle, HotRegionLeft},
		{"exactly right threshold", HotRegionThreshold, HotRegionNone},
		{"past right threshold", 0.26, HotRegionRight},
		{"right saturation", MaxSwipeAngle, HotRegionRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyAngle(tt.angle); got != tt.want {
				t.Errorf("ClassifyAngle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestHotRegionDirectionAndString(t *testing.T) {
	tests := []struct {
		region HotRegion
		dir    float64
		name   string
	}{
		{HotRegionLeft, -1, "left"},
		{HotRegionRight, 1, "right"},
		{HotRegionNone, 0, "none"},
	}
	for _, tt := range tests {
		if got := tt.region.Direction(); got != tt.dir {
			t.Errorf("%s.Direction() = %v, want %v", tt.name, got, tt.dir)
		}
		if got := tt.region.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestHotRegionTrackerEdges(t *testing.T) {
	var tr hotRegionTracker

	if edge, _ := tr.update(HotRegionNone); edge != transitionNone {
		t.Errorf("none -> none: edge = %v, want none", edge)
	}

	edge, region := tr.update(HotRegionLeft)
	if edge != transitionReach || region != HotRegionLeft {
		t.Errorf("none -> left: got (%v, %v), want (reach, left)", edge, region)
	}

	if edge, _ := tr.update(HotRegionLeft); edge != transitionNone {
		t.Errorf("staying in a region should not be an edge, got %v", edge)
	}

	// Leave reports the region that was left.
	edge, region = tr.update(HotRegionNone)
	if edge != transitionLeave || region != HotRegionLeft {
		t.Errorf("left -> none: got (%v, %v), want (leave, left)", edge, region)
	}
	if tr.current != HotRegionNone {
		t.Errorf("current = %v, want none", tr.current)
	}
}

func TestHotRegionTrackerDirectSwitchIsSilent(t *testing.T) {
	tr := hotRegionTracker{current: HotRegionLeft}

	if edge, _ := tr.update(HotRegionRight); edge != transitionNone {
		t.Errorf("left -> right: edge = %v, want none", edge)
	}
	if tr.current != HotRegionRight {
		t.Errorf("current = %v, want right (the new region is still recorded)", tr.current)
	}

	edge, region := tr.update(HotRegionNone)
	if edge != transitionLeave || region != HotRegionRight {
		t.Errorf("right -> none: got (%v, %v), want (leave, right)", edge, region)
	}
}

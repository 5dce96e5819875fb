package roi_test

import (
	"context"
	"testing"

	"vidsqueeze/internal/ffmpeg"
	"vidsqueeze/internal/roi"
)

func TestNoneSelectsNothing(t *testing.T) {
	rect, err := roi.None{}.Select(context.Background(), "/media/in.mp4")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if rect != nil {
		t.Fatalf("expected nil rect, got %+v", rect)
	}
}

func TestParseStaticFullForm(t *testing.T) {
	selector, err := roi.ParseStatic("640:360:10:20")
	if err != nil {
		t.Fatalf("ParseStatic returned error: %v", err)
	}
	rect, err := selector.Select(context.Background(), "/media/in.mp4")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	want := ffmpeg.Rect{X: 10, Y: 20, Width: 640, Height: 360}
	if *rect != want {
		t.Fatalf("expected %+v, got %+v", want, *rect)
	}
}

func TestParseStaticShortFormDefaultsOrigin(t *testing.T) {
	selector, err := roi.ParseStatic("1280:720")
	if err != nil {
		t.Fatalf("ParseStatic returned error: %v", err)
	}
	rect, _ := selector.Select(context.Background(), "")
	if rect.X != 0 || rect.Y != 0 {
		t.Fatalf("expected origin 0,0, got %+v", rect)
	}
}

func TestParseStaticRejectsBadInput(t *testing.T) {
	for _, value := range []string{"", "640", "640:0", "0:360", "-640:360", "640:360:-1:0", "a:b", "1:2:3"} {
		if _, err := roi.ParseStatic(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

package ffmpeg

import "testing"

func TestParseProgressLine(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		want    float64
		matched bool
	}{
		{
			name:    "typical status line",
			line:    "frame=  100 fps= 25 q=28.0 size=     256kB time=00:00:04.00 bitrate= 524.3kbits/s speed=1.9x",
			want:    4.0,
			matched: true,
		},
		{
			name:    "fractional seconds",
			line:    "size=    1024kB time=00:01:23.456 bitrate=", // 83.456s
			want:    83.456,
			matched: true,
		},
		{
			name:    "hours beyond two digits",
			line:    "time=100:00:01.5 bitrate=",
			want:    360001.5,
			matched: true,
		},
		{
			name:    "no fractional part",
			line:    "time=00:00:09 speed=1x",
			want:    9.0,
			matched: true,
		},
		{
			name: "diagnostic line without token",
			line: "Stream mapping: Stream #0:0 -> #0:0 (h264 (native) -> hevc (libx265))",
		},
		{
			name: "not-available token",
			line: "size=N/A time=N/A bitrate=N/A",
		},
		{
			name: "empty line",
			line: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseProgressLine(tc.line)
			if ok != tc.matched {
				t.Fatalf("matched=%v, want %v (line %q)", ok, tc.matched, tc.line)
			}
			if ok && got != tc.want {
				t.Fatalf("parsed %v, want %v (line %q)", got, tc.want, tc.line)
			}
		})
	}
}

func TestProgressClampMonotonic(t *testing.T) {
	clamp := progressClamp{total: 10}

	value, advanced := clamp.observe(2)
	if !advanced || value != 2 {
		t.Fatalf("expected advance to 2, got %v advanced=%v", value, advanced)
	}

	// Out-of-order line must not move the indicator backward.
	value, advanced = clamp.observe(1.5)
	if advanced {
		t.Fatalf("expected no advance for stale value, got %v", value)
	}
	if value != 2 {
		t.Fatalf("clamped value regressed to %v", value)
	}

	value, advanced = clamp.observe(9.99)
	if !advanced || value != 9.99 {
		t.Fatalf("expected advance to 9.99, got %v advanced=%v", value, advanced)
	}

	// Values beyond the total are capped at the total.
	value, advanced = clamp.observe(12)
	if !advanced || value != 10 {
		t.Fatalf("expected cap at 10, got %v advanced=%v", value, advanced)
	}

	if got := clamp.finish(); got != 10 {
		t.Fatalf("finish should pin at total, got %v", got)
	}
}

func TestProgressClampFinishAfterShortfall(t *testing.T) {
	clamp := progressClamp{total: 8}
	clamp.observe(7.92)
	if got := clamp.finish(); got != 8 {
		t.Fatalf("expected final value exactly 8, got %v", got)
	}
}

// SPDX-License-Identifier: AGPL-3.0-or-later

package bootstrap

import (
	"runtime"
	"testing"
)

func TestGetPlatformInfo(t *testing.T) {
	info := GetPlatformInfo()

	if info.GOOS != runtime.GOOS {
		t.Errorf("GOOS = %q, want %q", info.GOOS, runtime.GOOS)
	}
	if info.PathKey == "" {
		t.Error("PathKey should not be empty")
	}
	if info.Interpreter == "" {
		t.Error("Interpreter should not be empty")
	}
}

func TestPlatformInfo_ExecutableName(t *testing.T) {
	tests := []struct {
		goos string
		in   string
		want string
	}{
		{"windows", "ffmpeg", "ffmpeg.exe"},
		{"windows", "ffprobe.exe", "ffprobe.exe"},
		{"windows", "FFPROBE.EXE", "FFPROBE.EXE"},
		{"linux", "ffmpeg", "ffmpeg"},
		{"linux", "ffmpeg.exe", "ffmpeg.exe"},
		{"darwin", "ffprobe", "ffprobe"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"_"+tt.in, func(t *testing.T) {
			got := platformFor(tt.goos).ExecutableName(tt.in)
			if got != tt.want {
				t.Errorf("ExecutableName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlatformInfo_Windows(t *testing.T) {
	info := platformFor("windows")

	if info.ListSep != ";" {
		t.Errorf("ListSep = %q, want %q", info.ListSep, ";")
	}
	if !info.CaseFoldPaths {
		t.Error("windows should fold case when comparing paths")
	}
	if info.Interpreter != "python" {
		t.Errorf("Interpreter = %q, want %q", info.Interpreter, "python")
	}
}

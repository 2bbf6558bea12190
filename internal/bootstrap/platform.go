package bootstrap

import (
	"path/filepath"
	"runtime"
	"strings"
)

type PlatformInfo struct {
	GOOS          string
	ExeSuffix     string
	PathKey       string
	ListSep       string
	Interpreter   string
	CaseFoldPaths bool
}

func GetPlatformInfo() *PlatformInfo {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) *PlatformInfo {
	switch goos {
	case "windows":
		return &PlatformInfo{
			GOOS:          goos,
			ExeSuffix:     ".exe",
			PathKey:       "Path",
			ListSep:       ";",
			Interpreter:   "python",
			CaseFoldPaths: true,
		}
	default:
		return &PlatformInfo{
			GOOS:        goos,
			PathKey:     "PATH",
			ListSep:     ":",
			Interpreter: "python3",
		}
	}
}

// ExecutableName appends the platform executable suffix unless name
// already carries one.
func (p *PlatformInfo) ExecutableName(name string) string {
	if p.ExeSuffix == "" || strings.EqualFold(filepath.Ext(name), p.ExeSuffix) {
		return name
	}
	return name + p.ExeSuffix
}

func ExecutableName(name string) string {
	return GetPlatformInfo().ExecutableName(name)
}

package system

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// UptimeSeconds is the system uptime truncated to whole seconds.
func (r *Reader) UptimeSeconds() float64 {
	data, err := os.ReadFile(r.path("uptime"))
	if err != nil {
		r.log.Debug("failed to read /proc/uptime", "error", err.Error())
		return 0
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		r.log.Debug("/proc/uptime is empty")
		return 0
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		r.log.Debug("failed to parse uptime", "value", fields[0], "error", err.Error())
		return 0
	}

	return float64(int64(seconds))
}

// MemoryUtilization is (MemTotal-MemFree)/MemTotal.
func (r *Reader) MemoryUtilization() float64 {
	mem, err := r.fs.Meminfo()
	if err != nil {
		r.log.Debug("failed to read /proc/meminfo", "error", err.Error())
		return 0
	}
	if mem.MemTotal == nil || mem.MemFree == nil || *mem.MemTotal == 0 {
		r.log.Debug("meminfo lacks MemTotal or MemFree")
		return 0
	}

	total := float64(*mem.MemTotal)
	free := float64(*mem.MemFree)

	return (total - free) / total
}

// Kernel is the release string from /proc/version, falling back to
// uname(2).
func (r *Reader) Kernel() string {
	if data, err := os.ReadFile(r.path("version")); err == nil {
		parts := strings.Fields(string(data))
		if len(parts) >= 3 {
			return parts[2]
		}
	} else {
		r.log.Debug("failed to read /proc/version", "error", err.Error())
	}

	return unameRelease()
}

// OperatingSystem is PRETTY_NAME from os-release, falling back to what
// gopsutil detects and finally to GOOS.
func (r *Reader) OperatingSystem() string {
	if name := r.prettyName(); name != "" {
		return name
	}

	if name, err := r.hostPlatform(); err == nil && name != "" {
		return name
	} else if err != nil {
		r.log.Debug("failed to detect platform", "error", err.Error())
	}

	return runtime.GOOS
}

func (r *Reader) prettyName() string {
	f, err := os.Open(r.osReleasePath)
	if err != nil {
		r.log.Debug("failed to open os-release", "path", r.osReleasePath, "error", err.Error())
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if value, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(value, `"`)
		}
	}

	return ""
}

func platformInformation() (string, error) {
	platform, _, version, err := host.PlatformInformation()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(platform + " " + version), nil
}

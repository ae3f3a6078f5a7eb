package tui

import (
	"fmt"
	"strconv"
	"strings"

	"procwatch/internal/domain"
	"procwatch/internal/format"
)

// Column widths of the process table. COMMAND takes what is left.
const (
	pidWidth  = 7
	userWidth = 10
	cpuWidth  = 7
	avgWidth  = 7
	ramWidth  = 10
	timeWidth = 11

	ramDigits       = 8
	minCommandWidth = 10
)

func tableHeader() string {
	return fmt.Sprintf("%-*s%-*s%*s%*s%*s%*s  %s",
		pidWidth, "PID",
		userWidth, "USER",
		cpuWidth, "CPU%",
		avgWidth, "AVG%",
		ramWidth, "RAM[MB]",
		timeWidth, "TIME+",
		"COMMAND",
	)
}

func tableRow(p domain.ProcessRow, width int) string {
	prefix := fmt.Sprintf("%-*s%-*s%*s%*s%*s%*s  ",
		pidWidth, strconv.Itoa(p.PID),
		userWidth, truncate(p.User, userWidth-1),
		cpuWidth, format.Percent(float64(p.CPU)),
		avgWidth, format.Percent(float64(p.AverageCPU)),
		ramWidth, format.RAM(p.RAMKB, ramDigits),
		timeWidth, format.ElapsedTime(p.UptimeSeconds),
	)

	commandWidth := max(width-len(prefix), minCommandWidth)

	return prefix + truncate(p.Command, commandWidth)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func renderTable(rows []domain.ProcessRow, width int) string {
	var b strings.Builder

	b.WriteString(tableHeaderStyle.Render(tableHeader()))
	for _, p := range rows {
		b.WriteString("\n")
		b.WriteString(tableRow(p, width))
	}

	return b.String()
}

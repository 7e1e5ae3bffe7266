package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/cred-audit/models"
)

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
	blue   = ansi.ColorFunc("blue")
)

func severityColor(s models.Severity) func(string) string {
	switch s {
	case models.SeverityCritical, models.SeverityHigh:
		return red
	case models.SeverityMedium:
		return yellow
	default:
		return blue
	}
}

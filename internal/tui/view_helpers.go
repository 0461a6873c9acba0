package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const uiDivider = "──────────────────────────────────────────────────────"

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func fmtTonnes(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " t"
}

func fmtMoney(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', 2, 64)
}

// renderForm draws labelled inputs as a two-column table, the teacher of
// every form screen in this package.
func renderForm(labels []string, inputs []textinput.Model) string {
	width := 0
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, l := range labels {
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", width, l, inputs[i].View()))
	}
	return b.String()
}

// cycleFocus blurs the focused input and focuses the one delta steps away.
func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	if len(inputs) == 0 {
		return focus
	}
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func parseFloatField(value, label string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	return f, nil
}

func parseIntField(value, label string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", label)
	}
	return n, nil
}

// Package summary renders a styled terminal overview of a modeling
// system: the coupling cadence, the component table, and the connection
// list. Display only; nothing here feeds the emitted configuration.
package summary

import (
	"fmt"
	"strings"

	"github.com/san-kum/nemsgen/internal/sequence"
	"github.com/san-kum/nemsgen/internal/system"
)

func Render(sys *system.System) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("coupled modeling system"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("window   "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s -> %s",
		sys.StartTime.Format("2006-01-02 15:04:05"),
		sys.EndTime.Format("2006-01-02 15:04:05"))))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("interval "))
	b.WriteString(valueStyle.Render(sys.Interval.String()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("pets     "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d total", sys.TotalProcessors())))
	b.WriteString("\n\n")

	b.WriteString(componentTable(sys))

	if conns := sys.Connections(); len(conns) > 0 {
		b.WriteString("\n")
		b.WriteString(connectionList(conns))
	}
	return panelStyle.Render(b.String())
}

func componentTable(sys *system.System) string {
	var rows []string
	rows = append(rows, fmt.Sprintf("%-5s %-12s %-11s %-7s %s",
		labelStyle.Render("role"),
		labelStyle.Render("model"),
		labelStyle.Render("pets"),
		labelStyle.Render("threads"),
		labelStyle.Render("cadence")))
	for _, e := range sys.Entries() {
		cadence := "cycle"
		if e.SubInterval > 0 {
			cadence = e.SubInterval.String()
		}
		rows = append(rows, fmt.Sprintf("%-5s %-12s %-11s %-7d %s",
			roleStyle.Render(string(e.Role)),
			e.Name,
			e.PetBounds(),
			e.Threads,
			cadence))
	}
	return strings.Join(rows, "\n") + "\n"
}

func connectionList(conns sequence.Connections) string {
	var rows []string
	for _, c := range conns {
		rows = append(rows, fmt.Sprintf("%s %s %s %s",
			roleStyle.Render(string(c.Source)),
			arrowStyle.Render("->"),
			roleStyle.Render(string(c.Target)),
			labelStyle.Render(":remapMethod="+c.Method)))
	}
	return strings.Join(rows, "\n") + "\n"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-zk-vault/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const maskedPassword = "••••••••"

// RenderError formats a command failure for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("error: ") + err.Error()
}

func renderSummary(s models.ImportSummary) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Import summary"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %d\n", okStyle.Render("imported:"), s.Imported)
	fmt.Fprintf(&sb, "%s %d\n", faintStyle.Render("skipped: "), s.Skipped)
	if len(s.Errors) > 0 {
		fmt.Fprintf(&sb, "%s %d\n", errorStyle.Render("failed:  "), len(s.Errors))
		for _, e := range s.Errors {
			fmt.Fprintf(&sb, "  - %s\n", e.Error())
		}
	}

	if pending := len(s.Outcomes) - s.Total(); pending > 0 {
		fmt.Fprintf(&sb, "%s %d\n", warnStyle.Render("not processed:"), pending)
	}
	return boxStyle.Render(strings.TrimRight(sb.String(), "\n")) + "\n"
}

func renderItems(items []models.DecryptedItem) string {
	if len(items) == 0 {
		return faintStyle.Render("no items") + "\n"
	}

	var sb strings.Builder
	for _, item := range items {
		if item.Record == nil {
			fmt.Fprintf(&sb, "%s  %s\n", item.ID, warnStyle.Render("<cannot decrypt>"))
			continue
		}

		line := item.ID + "  " + titleStyle.Render(item.Record.Title)
		if item.Record.Username != "" {
			line += "  " + item.Record.Username
		}
		if item.Record.Folder != "" {
			line += "  " + faintStyle.Render("["+item.Record.Folder+"]")
		}
		if len(item.Record.Tags) > 0 {
			line += "  " + faintStyle.Render("#"+strings.Join(item.Record.Tags, " #"))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderItem(item models.DecryptedItem, showPassword bool) string {
	if item.Record == nil {
		return warnStyle.Render(fmt.Sprintf("%s cannot be decrypted", item.ID)) + "\n"
	}
	r := item.Record

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(r.Title))
	sb.WriteString("\n")
	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "%s %s\n", faintStyle.Render(fmt.Sprintf("%-9s", name+":")), value)
		}
	}
	field("id", item.ID)
	field("username", r.Username)
	if r.Password != "" {
		if showPassword {
			field("password", r.Password)
		} else {
			field("password", maskedPassword)
		}
	}
	field("url", r.URL)
	field("folder", r.Folder)
	if len(r.Tags) > 0 {
		field("tags", strings.Join(r.Tags, ", "))
	}
	field("notes", r.Notes)
	if item.UpdatedAt != nil {
		field("updated", item.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return boxStyle.Render(strings.TrimRight(sb.String(), "\n")) + "\n"
}

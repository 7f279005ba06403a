// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var infoLabelStyle = lipgloss.NewStyle().Width(10).Faint(true)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := []string{
		titleStyle.Render("NotesKeeper"),
		"",
		infoRow("Версия", info.BuildVersion()),
		infoRow("Дата", info.BuildDate()),
		infoRow("Коммит", info.BuildCommit()),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		helpStyle.Render("esc: назад"),
	)
}

func infoRow(label, value string) string {
	if value = strings.TrimSpace(value); value == "" {
		value = "N/A"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, infoLabelStyle.Render(label), value)
}

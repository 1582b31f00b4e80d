// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-channel-reactor/models"
)

type aboutModel struct {
	buildInfo    models.AppBuildInfo
	library      models.LibraryInfo
	settingsFile string
	historyFile  string
}

func (m aboutModel) View() string {
	var b strings.Builder

	b.WriteString("Название приложения: ChannelReactor\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(m.buildInfo.Version()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(m.buildInfo.Date()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(m.buildInfo.Commit()))
	b.WriteString("\n\n")
	b.WriteString("Библиотека отправки: ")
	b.WriteString(valueOrNA(m.library.Name))
	b.WriteString(" ")
	b.WriteString(valueOrNA(m.library.Version))
	b.WriteString("\n\n")
	b.WriteString("Файл настроек: ")
	b.WriteString(valueOrNA(m.settingsFile))
	b.WriteString("\n")
	b.WriteString("Файл истории: ")
	b.WriteString(valueOrNA(m.historyFile))

	return renderPage("О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

package tui

import "github.com/charmbracelet/bubbles/spinner"

type sendingModel struct {
	spinner spinner.Model
	label   string
}

func newSendingModel() sendingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return sendingModel{spinner: s, label: "Отправка..."}
}

func (m sendingModel) View() string {
	return renderPage("ОТПРАВКА", m.spinner.View()+" "+m.label, "")
}

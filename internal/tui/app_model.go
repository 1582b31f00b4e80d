package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-channel-reactor/internal/config"
	"github.com/MKhiriev/go-channel-reactor/internal/service"
	"github.com/MKhiriev/go-channel-reactor/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenSetup screen = iota
	screenMenu
	screenFormSingle
	screenFormBatch
	screenFormFile
	screenFormURL
	screenHistory
	screenConfirmClear
	screenFormExport
	screenFormSettings
	screenStats
	screenAbout
	screenSending
	screenResult
)

type appMode int

const (
	modeSetup appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.Services
	buildInfo     models.AppBuildInfo
	storage       config.ClientStorage
	mode          appMode
	currentScreen screen

	menu         menuModel
	setup        setupModel
	formSingle   formSingleModel
	formBatch    formBatchModel
	formFile     formFileModel
	formURL      formURLModel
	history      historyModel
	confirmClear confirmClearModel
	formExport   formExportModel
	formSettings formSettingsModel
	stats        statsModel
	about        aboutModel
	sending      sendingModel
	result       resultModel

	// screen to return to when an in-flight send fails with a local error
	returnScreen screen

	err          error
	showError    bool
	errorOverlay errorOverlayModel

	quit         bool
	setupDone    bool
	setupWarning string
}

func newSetupAppModel(ctx context.Context, services *service.Services) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeSetup,
		currentScreen: screenSetup,
		setup:         newSetupModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo, storage config.ClientStorage) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		storage:       storage,
		mode:          modeMain,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		sending:       newSendingModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			if m.mode == modeSetup {
				m.err = ErrSetupAborted
			} else {
				m.err = ErrUserQuit
			}
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case setupDoneMsg:
		m.setup.submitting = false
		if msg.err != nil {
			m.setup.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.setupDone = true
		m.setupWarning = msg.warning
		return m, tea.Quit
	case singleDoneMsg:
		m.formSingle.submitting = false
		if msg.err != nil {
			m.currentScreen = m.returnScreen
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.result = resultModel{kind: resultSingle, single: msg.result}
		m.currentScreen = screenResult
		return m, nil
	case batchDoneMsg:
		m.formBatch.submitting = false
		m.formFile.submitting = false
		if msg.err != nil {
			m.currentScreen = m.returnScreen
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.result = resultModel{kind: resultBatch, batch: msg.summary}
		m.currentScreen = screenResult
		return m, nil
	case clearDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			m.currentScreen = screenMenu
			return m, nil
		}
		m.menu.status = "История очищена"
		m.currentScreen = screenMenu
		return m, cmdClearStatus()
	case exportDoneMsg:
		if msg.err != nil {
			m.formExport.errMsg = msg.err.Error()
			return m, nil
		}
		m.menu.status = "История экспортирована: " + msg.path
		m.currentScreen = screenMenu
		return m, cmdClearStatus()
	case copiedMsg:
		m.result.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.menu.status = ""
		m.result.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.currentScreen == screenSending {
			var cmd tea.Cmd
			m.sending.spinner, cmd = m.sending.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenSetup:
		return m.updateSetup(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenFormSingle:
		return m.updateFormSingle(msg)
	case screenFormBatch:
		return m.updateFormBatch(msg)
	case screenFormFile:
		return m.updateFormFile(msg)
	case screenFormURL:
		return m.updateFormURL(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenConfirmClear:
		return m.updateConfirmClear(msg)
	case screenFormExport:
		return m.updateFormExport(msg)
	case screenFormSettings:
		return m.updateFormSettings(msg)
	case screenStats, screenAbout:
		return m.updateStatic(msg)
	case screenSending:
		return m, nil
	case screenResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenSetup:
		body = m.setup.View()
	case screenMenu:
		body = m.menu.View()
	case screenFormSingle:
		body = m.formSingle.View()
	case screenFormBatch:
		body = m.formBatch.View()
	case screenFormFile:
		body = m.formFile.View()
	case screenFormURL:
		body = m.formURL.View()
	case screenHistory:
		body = m.history.View()
	case screenConfirmClear:
		body = m.confirmClear.View()
	case screenFormExport:
		body = m.formExport.View()
	case screenFormSettings:
		body = m.formSettings.View()
	case screenStats:
		body = m.stats.View()
	case screenAbout:
		body = m.about.View()
	case screenSending:
		body = m.sending.View()
	case screenResult:
		body = m.result.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// ── setup ────────────────────────────────────────────────────────────────────

func (m appModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && key.Matches(keyMsg, keys.enter) {
		if m.setup.submitting {
			return m, nil
		}

		raw := strings.TrimSpace(m.setup.input.Value())
		if raw == "" {
			m.setup.errMsg = "Ключ не может быть пустым"
			return m, nil
		}

		m.setup.errMsg = ""
		m.setup.submitting = true
		return m, m.cmdSetCredential(raw)
	}

	var cmd tea.Cmd
	m.setup.input, cmd = m.setup.input.Update(msg)
	return m, cmd
}

// ── menu ─────────────────────────────────────────────────────────────────────

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.openMenuItem(m.menu.idx)
	}

	return m, nil
}

func (m appModel) openMenuItem(idx int) (tea.Model, tea.Cmd) {
	switch idx {
	case menuSendSingle:
		m.formSingle = newFormSingleModel()
		m.currentScreen = screenFormSingle
	case menuSendBatch:
		m.formBatch = newFormBatchModel(m.services.Session.Settings().DefaultDelayMs)
		m.currentScreen = screenFormBatch
	case menuSendFile:
		m.formFile = newFormFileModel(m.services.Session.Settings().DefaultDelayMs)
		m.currentScreen = screenFormFile
	case menuCheckURL:
		m.formURL = newFormURLModel()
		m.currentScreen = screenFormURL
	case menuHistory:
		m.history = newHistoryModel()
		m.currentScreen = screenHistory
	case menuClearHistory:
		m.confirmClear = newConfirmClearModel()
		m.currentScreen = screenConfirmClear
	case menuExportHistory:
		m.formExport = newFormExportModel()
		m.currentScreen = screenFormExport
	case menuSettings:
		m.formSettings = newFormSettingsModel(m.services.Session.Settings())
		m.currentScreen = screenFormSettings
	case menuStats:
		m.stats = statsModel{stats: m.services.History.Stats()}
		m.currentScreen = screenStats
	case menuAbout:
		m.about = aboutModel{
			buildInfo:    m.buildInfo,
			library:      m.services.Session.LibraryMetadata(),
			settingsFile: m.storage.SettingsFile,
			historyFile:  m.storage.HistoryFile,
		}
		m.currentScreen = screenAbout
	case menuExit:
		m.quit = true
		return m, tea.Quit
	}

	return m, nil
}

// ── single send ──────────────────────────────────────────────────────────────

func (m appModel) updateFormSingle(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formSingle.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formSingle.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formSingle.submitting {
				return m, nil
			}

			m.formSingle.errMsg = ""
			m.formSingle.submitting = true
			m.returnScreen = screenFormSingle
			m.currentScreen = screenSending
			m.sending.label = "Отправка реакции..."
			return m, tea.Batch(
				m.sending.spinner.Tick,
				m.cmdSendSingle(m.formSingle.inputs[0].Value(), m.formSingle.inputs[1].Value()),
			)
		}
	}

	var cmd tea.Cmd
	m.formSingle.inputs[m.formSingle.focus], cmd = m.formSingle.inputs[m.formSingle.focus].Update(msg)
	return m, cmd
}

// ── batch send ───────────────────────────────────────────────────────────────

func (m appModel) updateFormBatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.formBatch.stage {
	case batchStageParams:
		return m.updateFormBatchParams(msg)
	default:
		return m.updateFormBatchItems(msg)
	}
}

func (m appModel) updateFormBatchParams(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.formBatch.focusNextParam()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			total, err := strconv.Atoi(strings.TrimSpace(m.formBatch.paramInputs[0].Value()))
			if err != nil || total <= 0 {
				m.formBatch.errMsg = "Нужно положительное число ссылок"
				return m, nil
			}

			delayMs, err := m.parseDelay(m.formBatch.paramInputs[1].Value())
			if err != nil {
				m.formBatch.errMsg = err.Error()
				return m, nil
			}

			m.formBatch.errMsg = ""
			m.formBatch.startItems(total, delayMs)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.formBatch.paramInputs[m.formBatch.paramFocus], cmd = m.formBatch.paramInputs[m.formBatch.paramFocus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormBatchItems(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.formBatch.focusNextItem()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formBatch.submitting {
				return m, nil
			}

			m.formBatch.requests = append(m.formBatch.requests, models.ReactionRequest{
				URL:    m.formBatch.itemInputs[0].Value(),
				Emojis: m.formBatch.itemInputs[1].Value(),
			})

			if len(m.formBatch.requests) < m.formBatch.total {
				m.formBatch.initItemInputs()
				return m, nil
			}

			m.formBatch.errMsg = ""
			m.formBatch.submitting = true
			m.returnScreen = screenFormBatch
			m.currentScreen = screenSending
			m.sending.label = "Пакетная отправка..."
			return m, tea.Batch(
				m.sending.spinner.Tick,
				m.cmdSendBatch(m.formBatch.requests, m.formBatch.delayMs),
			)
		}
	}

	var cmd tea.Cmd
	m.formBatch.itemInputs[m.formBatch.itemFocus], cmd = m.formBatch.itemInputs[m.formBatch.itemFocus].Update(msg)
	return m, cmd
}

// ── batch from file ──────────────────────────────────────────────────────────

func (m appModel) updateFormFile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.formFile.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formFile.submitting {
				return m, nil
			}

			path := strings.TrimSpace(m.formFile.inputs[0].Value())
			if path == "" {
				m.formFile.errMsg = "Нужно указать путь к файлу"
				return m, nil
			}

			delayMs, err := m.parseDelay(m.formFile.inputs[1].Value())
			if err != nil {
				m.formFile.errMsg = err.Error()
				return m, nil
			}

			m.formFile.errMsg = ""
			m.formFile.submitting = true
			m.returnScreen = screenFormFile
			m.currentScreen = screenSending
			m.sending.label = "Пакетная отправка из файла..."
			return m, tea.Batch(
				m.sending.spinner.Tick,
				m.cmdSendBatchFile(path, delayMs),
			)
		}
	}

	var cmd tea.Cmd
	m.formFile.inputs[m.formFile.focus], cmd = m.formFile.inputs[m.formFile.focus].Update(msg)
	return m, cmd
}

// ── url check ────────────────────────────────────────────────────────────────

func (m appModel) updateFormURL(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			url := strings.TrimSpace(m.formURL.input.Value())
			if url == "" {
				m.formURL.errMsg = "Нужно ввести ссылку"
				return m, nil
			}

			m.result = resultModel{kind: resultURL, report: m.services.Reaction.InspectURL(url)}
			m.currentScreen = screenResult
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.formURL.input, cmd = m.formURL.input.Update(msg)
	return m, cmd
}

// ── history ──────────────────────────────────────────────────────────────────

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.history.loaded {
				return m, nil
			}

			limit := 0
			raw := strings.TrimSpace(m.history.limitInput.Value())
			if raw != "" {
				parsed, err := strconv.Atoi(raw)
				if err != nil || parsed <= 0 {
					m.history.errMsg = "Нужно положительное число"
					return m, nil
				}
				limit = parsed
			}

			m.history.errMsg = ""
			m.history.entries = m.services.History.Recent(limit)
			m.history.loaded = true
			return m, nil
		}
	}

	if m.history.loaded {
		return m, nil
	}

	var cmd tea.Cmd
	m.history.limitInput, cmd = m.history.limitInput.Update(msg)
	return m, cmd
}

// ── clear history ────────────────────────────────────────────────────────────

func (m appModel) updateConfirmClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.confirmClear.confirmed() {
				m.menu.status = "Очистка отменена"
				m.currentScreen = screenMenu
				return m, cmdClearStatus()
			}
			return m, m.cmdClearHistory()
		}
	}

	var cmd tea.Cmd
	m.confirmClear.input, cmd = m.confirmClear.input.Update(msg)
	return m, cmd
}

// ── export ───────────────────────────────────────────────────────────────────

func (m appModel) updateFormExport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := strings.TrimSpace(m.formExport.input.Value())
			if path == "" {
				m.formExport.errMsg = "Нужно указать путь к файлу"
				return m, nil
			}

			m.formExport.errMsg = ""
			return m, m.cmdExportHistory(path)
		}
	}

	var cmd tea.Cmd
	m.formExport.input, cmd = m.formExport.input.Update(msg)
	return m, cmd
}

// ── settings ─────────────────────────────────────────────────────────────────

func (m appModel) updateFormSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.formSettings.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			timeoutMs, err := strconv.Atoi(strings.TrimSpace(m.formSettings.inputs[0].Value()))
			if err != nil {
				m.formSettings.errMsg = "Таймаут должен быть целым числом"
				return m, nil
			}
			delayMs, err := strconv.Atoi(strings.TrimSpace(m.formSettings.inputs[1].Value()))
			if err != nil {
				m.formSettings.errMsg = "Задержка должна быть целым числом"
				return m, nil
			}

			switch err := m.services.Session.UpdateSettings(timeoutMs, delayMs); {
			case errors.Is(err, service.ErrInvalidTimeout):
				m.formSettings.errMsg = "Таймаут должен быть больше нуля"
				return m, nil
			case errors.Is(err, service.ErrInvalidDelay):
				m.formSettings.errMsg = "Задержка не может быть отрицательной"
				return m, nil
			case errors.Is(err, service.ErrSettingsNotPersisted):
				m.menu.status = "Настройки применены, но не сохранены на диск"
			case err != nil:
				m.formSettings.errMsg = err.Error()
				return m, nil
			default:
				m.menu.status = "Настройки сохранены"
			}

			m.currentScreen = screenMenu
			return m, cmdClearStatus()
		}
	}

	var cmd tea.Cmd
	m.formSettings.inputs[m.formSettings.focus], cmd = m.formSettings.inputs[m.formSettings.focus].Update(msg)
	return m, cmd
}

// ── static pages / result ────────────────────────────────────────────────────

func (m appModel) updateStatic(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
		m.currentScreen = screenMenu
	}
	return m, nil
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.copy):
		text, ok := m.result.copyValue()
		if !ok {
			m.result.status = "Нечего копировать"
			return m, cmdClearStatus()
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.showErrorf(fmt.Sprintf("Ошибка копирования: %v", err))
			return m, nil
		}
		return m, func() tea.Msg { return copiedMsg{} }
	}

	return m, nil
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdSetCredential(raw string) tea.Cmd {
	session := m.services.Session

	return func() tea.Msg {
		err := session.SetCredential(raw)
		if errors.Is(err, service.ErrSettingsNotPersisted) {
			return setupDoneMsg{warning: err.Error()}
		}
		return setupDoneMsg{err: err}
	}
}

func (m appModel) cmdSendSingle(url, emojis string) tea.Cmd {
	ctx := m.ctx
	reaction := m.services.Reaction

	return func() tea.Msg {
		result, err := reaction.SendSingle(ctx, url, emojis)
		return singleDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdSendBatch(requests []models.ReactionRequest, delayMs int) tea.Cmd {
	ctx := m.ctx
	reaction := m.services.Reaction

	return func() tea.Msg {
		summary, err := reaction.SendBatch(ctx, requests, delayMs)
		return batchDoneMsg{summary: summary, err: err}
	}
}

func (m appModel) cmdSendBatchFile(path string, delayMs int) tea.Cmd {
	ctx := m.ctx
	reaction := m.services.Reaction

	return func() tea.Msg {
		summary, err := reaction.SendBatchFromFile(ctx, path, delayMs)
		return batchDoneMsg{summary: summary, err: err}
	}
}

func (m appModel) cmdClearHistory() tea.Cmd {
	history := m.services.History

	return func() tea.Msg {
		return clearDoneMsg{err: history.Clear()}
	}
}

func (m appModel) cmdExportHistory(path string) tea.Cmd {
	history := m.services.History

	return func() tea.Msg {
		return exportDoneMsg{path: path, err: history.Export(path)}
	}
}

func (m appModel) parseDelay(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return m.services.Session.Settings().DefaultDelayMs, nil
	}

	delayMs, err := strconv.Atoi(raw)
	if err != nil || delayMs < 0 {
		return 0, errors.New("Задержка должна быть неотрицательным числом")
	}
	return delayMs, nil
}

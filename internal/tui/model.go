package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/export"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/session"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const previewMaxRunes = 2000

type noteItem struct {
	note models.Note
}

func (i noteItem) Title() string {
	if strings.TrimSpace(i.note.Title) == "" {
		return "(без названия)"
	}
	return i.note.Title
}

func (i noteItem) Description() string { return i.note.UpdatedAt.Format("2006-01-02 15:04") }
func (i noteItem) FilterValue() string { return i.note.Title }

// browserModel lists the opened notes of one session. Every key press and
// mouse event is reported to the guard; focus changes hide and show the
// session.
type browserModel struct {
	ctx       context.Context
	session   models.Session
	notes     service.ClientNoteService
	backups   service.ClientBackupService
	guard     ActivityGuard
	updates   <-chan []models.Note
	copyText  func(string) error
	buildInfo models.AppBuildInfo

	list   list.Model
	help   help.Model
	width  int
	height int

	pendingDelete *models.Note
	showInfo      bool
	status        string
	errMsg        string
	ended         bool
}

func newBrowserModel(ctx context.Context, opts Options) browserModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Заметки"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	copyText := opts.CopyText
	if copyText == nil {
		copyText = writeClipboard
	}

	guard := opts.Guard
	if guard == nil {
		guard = nopGuard{}
	}

	return browserModel{
		ctx:       ctx,
		session:   opts.Session,
		notes:     opts.Notes,
		backups:   opts.Backups,
		guard:     guard,
		updates:   opts.Updates,
		copyText:  copyText,
		buildInfo: opts.BuildInfo,
		list:      l,
		help:      help.New(),
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.waitForUpdates(), m.waitForSessionEnd())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/2, max(msg.Height-4, 1))
		return m, nil

	case tea.FocusMsg:
		m.guard.Show()
		return m, nil

	case tea.BlurMsg:
		m.guard.Hide()
		return m, nil

	case tea.MouseMsg:
		_ = m.guard.Touch(mouseEvent(msg))
		return m, nil

	case notesLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setNotes(msg.notes)

	case notesChangedMsg:
		return m, tea.Batch(m.setNotes(msg.notes), m.waitForUpdates())

	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %s", humanizeError(msg.err))
			return m, nil
		}
		m.errMsg = ""
		m.status = "Удалено"
		if msg.result.AttachmentErr != nil {
			m.status = "Удалено, изображение осталось на сервере"
		}
		return m, m.cmdLoad()

	case backupDoneMsg:
		switch {
		case errors.Is(msg.err, service.ErrNoNotes):
			m.status = "Нет заметок для бэкапа"
		case msg.err != nil:
			m.errMsg = fmt.Sprintf("Ошибка бэкапа: %s", humanizeError(msg.err))
		default:
			m.errMsg = ""
			m.status = fmt.Sprintf("Бэкап %q создан", msg.backup.BackupName)
		}
		return m, nil

	case sessionEndedMsg:
		m.ended = true
		return m, tea.Quit

	case tea.KeyMsg:
		_ = m.guard.Touch(session.EventKeyPress)
		return m.updateKey(msg)
	}

	return m, nil
}

func (m browserModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc) {
			m.showInfo = false
		}
		return m, nil
	}

	if m.pendingDelete != nil {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.pendingDelete.ID
			m.pendingDelete = nil
			return m, m.cmdDelete(id)
		case key.Matches(msg, keys.no):
			m.pendingDelete = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.refresh):
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(msg, keys.copy):
		note, ok := m.selected()
		if !ok {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := m.copyText(export.PlainText(note.Content)); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
		return m, nil
	case key.Matches(msg, keys.delete):
		if note, ok := m.selected(); ok {
			m.pendingDelete = &note
		}
		return m, nil
	case key.Matches(msg, keys.backup):
		m.status = "Создаём бэкап..."
		return m, m.cmdBackup()
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	body := m.list.View()
	if note, ok := m.selected(); ok {
		width := max(m.width-m.list.Width()-6, 20)
		preview := previewStyle.Width(width).Render(fitText(export.PlainText(note.Content), previewMaxRunes))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, preview)
	} else if len(m.list.Items()) == 0 {
		body = titleStyle.Render("Заметки") + "\n\nНет заметок"
	}

	var footer strings.Builder
	if m.pendingDelete != nil {
		footer.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Удалить %q?\n\ny да    n нет", noteItem{*m.pendingDelete}.Title())))
		footer.WriteString("\n")
	}
	if m.status != "" {
		footer.WriteString(statusStyle.Render(m.status))
		footer.WriteString("\n")
	}
	if m.errMsg != "" {
		footer.WriteString(errorStyle.Render(m.errMsg))
		footer.WriteString("\n")
	}
	footer.WriteString(m.help.View(keys))

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, footer.String()))
}

func (m browserModel) selected() (models.Note, bool) {
	item, ok := m.list.SelectedItem().(noteItem)
	if !ok {
		return models.Note{}, false
	}
	return item.note, true
}

func (m *browserModel) setNotes(notes []models.Note) tea.Cmd {
	items := make([]list.Item, 0, len(notes))
	for _, n := range notes {
		items = append(items, noteItem{note: n})
	}
	return m.list.SetItems(items)
}

func (m browserModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.notes.List(m.ctx, m.session)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m browserModel) cmdDelete(noteID string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.notes.Delete(m.ctx, m.session, noteID)
		return noteDeletedMsg{result: result, err: err}
	}
}

func (m browserModel) cmdBackup() tea.Cmd {
	return func() tea.Msg {
		backup, err := m.backups.CreateBackup(m.ctx, m.session, models.BackupManual)
		return backupDoneMsg{backup: backup, err: err}
	}
}

func (m browserModel) waitForUpdates() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		notes, ok := <-updates
		if !ok {
			return nil
		}
		return notesChangedMsg{notes: notes}
	}
}

func (m browserModel) waitForSessionEnd() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		<-ctx.Done()
		return sessionEndedMsg{}
	}
}

func mouseEvent(msg tea.MouseMsg) session.EventType {
	switch {
	case tea.MouseEvent(msg).IsWheel():
		return session.EventScroll
	case msg.Action == tea.MouseActionMotion:
		return session.EventMouseMove
	default:
		return session.EventMouseClick
	}
}

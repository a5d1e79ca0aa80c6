package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LuanOldCode/netpacket/internal/analyze"
	"github.com/LuanOldCode/netpacket/internal/packet"
	"github.com/LuanOldCode/netpacket/internal/ui"
)

// screen identifies which view the browser is showing
type screen int

const (
	screenList screen = iota
	screenDetail
)

// browserKeyMap defines key bindings for the capture browser
type browserKeyMap struct {
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

var browserKeys = browserKeyMap{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open packet"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back to list"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// packetItem wraps a decoded packet for use with bubbles/list
type packetItem struct {
	index int
	pkt   packet.Packet
	label string
}

// FilterValue implements list.Item; filtering matches label, type, and sender.
func (p packetItem) FilterValue() string {
	return fmt.Sprintf("%s %02x %d", p.label, p.pkt.Header.MessageType, p.pkt.Header.SenderID)
}

// Title returns the list entry title
func (p packetItem) Title() string {
	return fmt.Sprintf("#%d  type 0x%02x  %s", p.index, p.pkt.Header.MessageType, p.label)
}

// Description returns the list entry detail line
func (p packetItem) Description() string {
	mark := ui.OKMarker
	if !p.pkt.VerifyChecksum() {
		mark = ui.BadMarker + " checksum"
	}
	return fmt.Sprintf("seq %d • sender %d • %d payload bytes • %s",
		p.pkt.Header.Sequence, p.pkt.Header.SenderID, len(p.pkt.Payload), mark)
}

// Browser is the bubbletea model for interactive capture inspection.
type Browser struct {
	screen   screen
	list     list.Model
	detail   viewport.Model
	labelFor func(uint8) string
	width    int
	height   int
	ready    bool
}

// NewBrowser builds a browser over an already-decoded capture. labelFor
// maps message type bytes to user-assigned names; it must not be nil.
func NewBrowser(packets []packet.Packet, labelFor func(uint8) string) *Browser {
	items := make([]list.Item, len(packets))
	for i, pkt := range packets {
		items[i] = packetItem{index: i, pkt: pkt, label: labelFor(pkt.Header.MessageType)}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ui.PrimaryColor).BorderLeftForeground(ui.PrimaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(ui.MutedColor).BorderLeftForeground(ui.PrimaryColor)

	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("capture: %d packet(s)", len(packets))
	l.Styles.Title = ui.TitleStyle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{browserKeys.Open}
	}

	return &Browser{
		screen:   screenList,
		list:     l,
		labelFor: labelFor,
	}
}

// Init implements tea.Model
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.list.SetSize(msg.Width, msg.Height-1)
		if !b.ready {
			b.detail = viewport.New(msg.Width, msg.Height-2)
			b.ready = true
		} else {
			b.detail.Width = msg.Width
			b.detail.Height = msg.Height - 2
		}

	case tea.KeyMsg:
		// Let an active list filter capture keys first
		if b.screen == screenList && b.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, browserKeys.Quit):
			return b, tea.Quit

		case key.Matches(msg, browserKeys.Open):
			if b.screen == screenList {
				if item, ok := b.list.SelectedItem().(packetItem); ok {
					b.openDetail(item)
					return b, nil
				}
			}

		case key.Matches(msg, browserKeys.Back):
			if b.screen == screenDetail {
				b.screen = screenList
				return b, nil
			}
		}
	}

	var cmd tea.Cmd
	switch b.screen {
	case screenList:
		b.list, cmd = b.list.Update(msg)
	case screenDetail:
		b.detail, cmd = b.detail.Update(msg)
	}
	return b, cmd
}

// View implements tea.Model
func (b *Browser) View() string {
	if !b.ready {
		return "loading capture..."
	}

	switch b.screen {
	case screenDetail:
		footer := lipgloss.NewStyle().Foreground(ui.MutedColor).
			Render("↑/↓ scroll • esc back • q quit")
		return b.detail.View() + "\n" + footer
	default:
		return b.list.View()
	}
}

// openDetail switches to the detail screen for one packet.
func (b *Browser) openDetail(item packetItem) {
	pkt := item.pkt
	content := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s",
		ui.RenderBanner(fmt.Sprintf("packet #%d: %s", item.index, item.label)),
		ui.RenderHeaderTable(pkt.Header, item.label),
		ui.RenderChecksumReport(analyze.ChecksumOf(pkt)),
		ui.RenderPayload(pkt.Payload),
	)
	b.detail.SetContent(content)
	b.detail.GotoTop()
	b.screen = screenDetail
}

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suveshpratapa/tlv8/dump"
	"github.com/suveshpratapa/tlv8/profile"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// treeRow is one visible line of the browser.
type treeRow struct {
	node     *dump.Node
	depth    int
	ctx      string
	name     string
	value    string
	childCtx string
}

type browserModel struct {
	nodes    []*dump.Node
	prof     *profile.Profile
	rootCtx  string
	rows     []treeRow
	expanded map[*dump.Node]bool
	cursor   int
	showHex  bool
	filter   textinput.Model
	filterOn bool
	height   int
}

func newBrowserModel(nodes []*dump.Node, prof *profile.Profile, rootCtx string) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "tag number or name"
	ti.Prompt = "filter: "
	ti.Width = 30

	m := &browserModel{
		nodes:    nodes,
		prof:     prof,
		rootCtx:  rootCtx,
		expanded: make(map[*dump.Node]bool),
		filter:   ti,
		height:   24,
	}
	m.rebuildRows()
	return m
}

func runInteractive(nodes []*dump.Node, prof *profile.Profile, rootCtx string) error {
	p := tea.NewProgram(newBrowserModel(nodes, prof, rootCtx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) rebuildRows() {
	m.rows = m.rows[:0]
	m.appendRows(m.nodes, m.rootCtx, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browserModel) appendRows(nodes []*dump.Node, ctx string, depth int) {
	filter := strings.TrimSpace(m.filter.Value())
	for _, n := range nodes {
		name, value, childCtx := dump.Describe(n, m.prof, ctx)
		row := treeRow{node: n, depth: depth, ctx: ctx, name: name, value: value, childCtx: childCtx}
		if filter == "" {
			m.rows = append(m.rows, row)
			if m.expanded[n] {
				m.appendRows(n.Children, childCtx, depth+1)
			}
			continue
		}
		// With a filter active the tree is flattened to matching rows.
		if rowMatches(row, filter) {
			m.rows = append(m.rows, row)
		}
		m.appendRows(n.Children, childCtx, depth+1)
	}
}

func rowMatches(r treeRow, filter string) bool {
	if strconv.Itoa(int(r.node.Tag)) == filter {
		return true
	}
	return r.name != "" && strings.Contains(strings.ToLower(r.name), strings.ToLower(filter))
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		if m.filterOn {
			switch msg.String() {
			case "enter", "esc":
				if msg.String() == "esc" {
					m.filter.SetValue("")
				}
				m.filterOn = false
				m.filter.Blur()
				m.rebuildRows()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.rebuildRows()
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case "enter", " ", "right", "l":
			if r := m.currentRow(); r != nil && len(r.node.Children) > 0 {
				m.expanded[r.node] = !m.expanded[r.node]
				m.rebuildRows()
			}

		case "left":
			if r := m.currentRow(); r != nil && m.expanded[r.node] {
				m.expanded[r.node] = false
				m.rebuildRows()
			}

		case "h":
			m.showHex = !m.showHex

		case "/":
			m.filterOn = true
			m.filter.Focus()
		}
	}
	return m, nil
}

func (m *browserModel) currentRow() *treeRow {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tlvdump"))
	b.WriteString(fmt.Sprintf("  %d elements\n\n", dump.Count(m.nodes)))

	listHeight := m.height - 8
	if listHeight < 4 {
		listHeight = 4
	}
	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	for i := start; i < len(m.rows) && i < start+listHeight; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteByte('\n')
	}
	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("no matching elements"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.filterOn {
		b.WriteString(m.filter.View())
	} else {
		b.WriteString(helpStyle.Render("↑/↓ move · enter expand · h hex · / filter · q quit"))
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *browserModel) renderRow(i int) string {
	r := m.rows[i]
	indent := strings.Repeat("  ", r.depth)

	marker := "  "
	if len(r.node.Children) > 0 {
		if m.expanded[r.node] {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	value := r.value
	if m.showHex {
		value = hexLine(r.node.Raw)
	}

	line := fmt.Sprintf("%s%s%s %s %s",
		indent, marker,
		tagStyle.Render(fmt.Sprintf("%3d", r.node.Tag)),
		nameStyle.Render(r.name),
		valueStyle.Render(value))
	if i == m.cursor {
		return selectedStyle.Render(fmt.Sprintf("%s%s%3d %s %s", indent, marker, r.node.Tag, r.name, value))
	}
	return line
}

func hexLine(raw []byte) string {
	if len(raw) == 0 {
		return "empty"
	}
	const limit = 24
	if len(raw) <= limit {
		return hex.EncodeToString(raw)
	}
	return hex.EncodeToString(raw[:limit]) + fmt.Sprintf("... (%d bytes)", len(raw))
}

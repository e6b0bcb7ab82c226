// Package tui renders the interactive skill map: every catalog skill grouped
// by type, with unlock status, per-skill progress, and the conditions still
// standing between the pet and a locked skill.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lidra0530/petskills/internal/catalog"
	"github.com/lidra0530/petskills/internal/conditions"
	"github.com/lidra0530/petskills/internal/pet"
	"github.com/lidra0530/petskills/internal/unlock"
)

type rowKind int

const (
	rowTypeHeader rowKind = iota
	rowSkill
)

type row struct {
	kind      rowKind
	skillType catalog.SkillType
	skill     *catalog.SkillDefinition
}

// Model is the root Bubble Tea model for the skill map.
type Model struct {
	cat  *catalog.Catalog
	snap *pet.Snapshot
	eval *conditions.Evaluator

	unlockable map[string]bool
	progress   map[string]float64

	allRows []row
	rows    []row
	cursor  int
	scroll  int

	filter    textinput.Model
	filtering bool

	width  int
	height int
}

// NewModel builds the skill map for one pet snapshot. Availability is
// computed once up front; the map is a read-only view.
func NewModel(cat *catalog.Catalog, snap *pet.Snapshot, orch *unlock.Orchestrator, eval *conditions.Evaluator) Model {
	avail := orch.AvailableSkills(snap)
	unlockable := make(map[string]bool, len(avail.Unlockable))
	for _, id := range avail.Unlockable {
		unlockable[id] = true
	}

	filter := textinput.New()
	filter.Placeholder = "filter skills"
	filter.CharLimit = 40

	m := Model{
		cat:        cat,
		snap:       snap,
		eval:       eval,
		unlockable: unlockable,
		progress:   avail.ProgressByID,
		filter:     filter,
	}
	m.allRows = buildRows(cat)
	m.applyFilter()
	return m
}

func buildRows(cat *catalog.Catalog) []row {
	var rows []row
	for _, st := range catalog.AllSkillTypes() {
		skills := cat.ByType(st)
		if len(skills) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowTypeHeader, skillType: st})
		for i := range skills {
			rows = append(rows, row{kind: rowSkill, skillType: st, skill: &skills[i]})
		}
	}
	return rows
}

// applyFilter rebuilds the visible rows from the filter text and clamps the
// cursor onto a skill row.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.rows = m.allRows
	} else {
		var rows []row
		var pendingHeader *row
		for i, r := range m.allRows {
			switch r.kind {
			case rowTypeHeader:
				pendingHeader = &m.allRows[i]
			case rowSkill:
				if !strings.Contains(strings.ToLower(r.skill.Name), query) &&
					!strings.Contains(strings.ToLower(r.skill.ID), query) {
					continue
				}
				if pendingHeader != nil {
					rows = append(rows, *pendingHeader)
					pendingHeader = nil
				}
				rows = append(rows, r)
			}
		}
		m.rows = rows
	}

	m.cursor = 0
	m.scroll = 0
	for i, r := range m.rows {
		if r.kind == rowSkill {
			m.cursor = i
			break
		}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				if msg.String() == "esc" {
					m.filter.SetValue("")
					m.applyFilter()
				}
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "/":
			m.filtering = true
			return m, m.filter.Focus()
		}
	}
	return m, nil
}

// moveCursor moves the cursor by delta, skipping type headers.
func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	for next >= 0 && next < len(m.rows) {
		if m.rows[next].kind == rowSkill {
			m.cursor = next
			return
		}
		next += delta
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	title := styleTitle.Render(fmt.Sprintf("Skill Map (pet level %d)", m.snap.Level))

	filterLine := ""
	if m.filtering || m.filter.Value() != "" {
		filterLine = "  / " + m.filter.View()
	}

	detail := m.renderDetail()
	hints := styleHint.Render("  ↑↓ navigate   / filter   q quit")

	fixed := lipgloss.Height(title) + lipgloss.Height(detail) + lipgloss.Height(hints) + 1
	if filterLine != "" {
		fixed += lipgloss.Height(filterLine)
	}
	listHeight := m.height - fixed
	if listHeight < 1 {
		listHeight = 1
	}

	list := m.renderList(listHeight)

	sections := []string{title}
	if filterLine != "" {
		sections = append(sections, filterLine)
	}
	sections = append(sections, list, detail, hints)

	v.SetContent(strings.Join(sections, "\n"))
	return v
}

func (m Model) renderList(height int) string {
	if len(m.rows) == 0 {
		return styleHint.Render("  no skills match")
	}

	scroll := m.scroll
	if m.cursor < scroll {
		scroll = m.cursor
	}
	if m.cursor >= scroll+height {
		scroll = m.cursor - height + 1
	}

	var lines []string
	for i := scroll; i < len(m.rows) && len(lines) < height; i++ {
		r := m.rows[i]
		if r.kind == rowTypeHeader {
			lines = append(lines, styleTypeHeader.Render("  "+strings.ToUpper(catalog.TypeDisplayName(r.skillType))))
			continue
		}
		lines = append(lines, m.renderSkillRow(r, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSkillRow(r row, selected bool) string {
	skill := r.skill
	status := m.status(skill.ID)

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	nameWidth := 24
	name := skill.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	var nameStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	case status == pet.StatusMastered:
		nameStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	case status == pet.StatusLocked:
		nameStyle = lipgloss.NewStyle().Foreground(colorTextDim)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(colorText)
	}

	levelCol := "        "
	if p, ok := m.snap.Skills[skill.ID]; ok && p.Active() {
		levelCol = fmt.Sprintf("Lv %2d/%-2d", p.Level, skill.MaxLevel)
	}

	barWidth := m.width - 50
	if barWidth > 24 {
		barWidth = 24
	}
	bar := ""
	if barWidth >= 4 {
		bar = "  " + renderBar(m.progressOf(skill.ID), barWidth)
	}

	return fmt.Sprintf("  %s%s %s  %s  %-9s%s",
		cursor,
		status.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		lipgloss.NewStyle().Foreground(colorTextDim).Render(levelCol),
		status.Label(),
		bar,
	)
}

// renderDetail shows the selected skill's description and, for locked
// skills, what still stands in the way.
func (m Model) renderDetail() string {
	if m.cursor >= len(m.rows) || m.rows[m.cursor].kind != rowSkill {
		return ""
	}
	skill := m.rows[m.cursor].skill

	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s]", skill.Name, skill.Rarity.DisplayName())
	if skill.Description != "" {
		b.WriteString("\n" + skill.Description)
	}

	switch m.status(skill.ID) {
	case pet.StatusLocked:
		report, err := m.eval.EvaluateAll(skill.ID, m.snap)
		if err == nil && len(report.Failed) > 0 {
			b.WriteString("\nStill needed: " + strings.Join(report.Failed, "; "))
		}
	case pet.StatusAvailable:
		b.WriteString("\nReady to unlock!")
	case pet.StatusMastered:
		b.WriteString("\nMastered.")
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return styleDetail.Width(width).Render(b.String())
}

func (m Model) status(skillID string) pet.SkillStatus {
	if p, ok := m.snap.Skills[skillID]; ok && p.Active() {
		return p.Status
	}
	if m.unlockable[skillID] {
		return pet.StatusAvailable
	}
	return pet.StatusLocked
}

// progressOf returns unlock progress for inactive skills and leveling
// progress for active ones.
func (m Model) progressOf(skillID string) float64 {
	p, ok := m.snap.Skills[skillID]
	if !ok || !p.Active() {
		return m.progress[skillID]
	}
	if p.Status == pet.StatusMastered {
		return 1
	}
	if p.ExperienceRequired <= 0 {
		return 0
	}
	f := float64(p.Experience) / float64(p.ExperienceRequired)
	if f > 1 {
		f = 1
	}
	return f
}

// Run starts the interactive skill map.
func Run(cat *catalog.Catalog, snap *pet.Snapshot, orch *unlock.Orchestrator, eval *conditions.Evaluator) error {
	p := tea.NewProgram(NewModel(cat, snap, orch, eval))
	_, err := p.Run()
	return err
}

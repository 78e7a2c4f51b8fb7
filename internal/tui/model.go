package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Josephz007/level-up-progress-tracker/internal/engine"
	"github.com/Josephz007/level-up-progress-tracker/internal/store"
	"github.com/Josephz007/level-up-progress-tracker/internal/ui"
)

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	progress *store.Progress
	rows     []taskRow
	checked  map[int]bool

	selected int
	lastLog  string
	loading  bool
	err      error
}

// taskRow is one selectable line on the board: a catalog task plus its
// completion state for the current period.
type taskRow struct {
	cadence engine.Cadence
	def     store.TaskDef
	count   int
	maxed   bool
	header  bool // section header rows are not selectable
	title   string
}

type loadedMsg struct {
	progress *store.Progress
	rows     []taskRow
	err      error
}

type submittedMsg struct {
	results []*engine.SubmitResult
	err     error
}

func newBoardModel(svc *engine.Service) boardModel {
	return boardModel{
		svc:     svc,
		checked: map[int]bool{},
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		catalog, err := m.svc.Catalog()
		if err != nil {
			return loadedMsg{err: err}
		}
		p, err := m.svc.Progress()
		if err != nil {
			return loadedMsg{err: err}
		}

		now := time.Now()
		var rows []taskRow
		for _, cadence := range engine.Cadences {
			defs := catalog[string(cadence)]
			if len(defs) == 0 {
				continue
			}
			rows = append(rows, taskRow{header: true, cadence: cadence, title: sectionTitle(cadence, now)})
			for _, def := range defs {
				count := engine.CompletionCount(p, cadence, def.Name, now)
				rows = append(rows, taskRow{
					cadence: cadence,
					def:     def,
					count:   count,
					maxed:   count >= def.MaxPerPeriod(),
				})
			}
		}
		return loadedMsg{progress: p, rows: rows}
	}
}

func sectionTitle(c engine.Cadence, now time.Time) string {
	_, grace := engine.ResolvePeriod(c, now)
	label := strings.ReplaceAll(string(c), "_", "-")
	title := strings.ToUpper(label[:1]) + label[1:] + " Tasks"
	if end, ok := engine.PeriodEnd(c, now); ok {
		left := end.Sub(now)
		hours := int(left.Hours())
		if hours < 48 {
			title += fmt.Sprintf("  %s %dh %dm left", ui.IconTimer, hours, int(left.Minutes())%60)
		} else {
			title += fmt.Sprintf("  %s %d days left", ui.IconTimer, hours/24)
		}
		title += "  " + ui.GraceNote(grace)
	}
	return title
}

// submitCmd submits the checked tasks, one engine call per cadence so each
// batch shares a single resolved period key.
func (m boardModel) submitCmd() tea.Cmd {
	byCadence := map[engine.Cadence][]string{}
	for i, row := range m.rows {
		if m.checked[i] && !row.header {
			byCadence[row.cadence] = append(byCadence[row.cadence], row.def.Name)
		}
	}
	return func() tea.Msg {
		var results []*engine.SubmitResult
		for _, cadence := range engine.Cadences {
			names := byCadence[cadence]
			if len(names) == 0 {
				continue
			}
			res, err := m.svc.SubmitTasks(cadence, names)
			if err != nil {
				return submittedMsg{results: results, err: err}
			}
			results = append(results, res)
		}
		return submittedMsg{results: results}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.progress = msg.progress
		m.rows = msg.rows
		m.checked = map[int]bool{}
		if m.selected >= len(m.rows) {
			m.selected = 0
		}
		if len(m.rows) > 0 && m.rows[m.selected].header {
			m.selected = m.nextSelectable(m.selected)
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			m.lastLog = "Submit failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		earned := 0
		levelUp := false
		for _, res := range msg.results {
			earned += res.EarnedXP
			levelUp = levelUp || res.LevelUp
		}
		m.lastLog = fmt.Sprintf("Submitted! +%d XP", earned)
		if levelUp {
			m.lastLog += "  " + ui.BadgeLevelUp
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			m.selected = m.prevSelectable(m.selected)
			return m, nil
		case "down", "j":
			m.selected = m.nextSelectable(m.selected)
			return m, nil
		case " ", "x":
			if m.selected >= 0 && m.selected < len(m.rows) {
				row := m.rows[m.selected]
				if row.header {
					return m, nil
				}
				if row.maxed {
					m.lastLog = "Already completed the maximum times this period."
					return m, nil
				}
				m.checked[m.selected] = !m.checked[m.selected]
			}
			return m, nil
		case "enter", "s":
			any := false
			for _, on := range m.checked {
				any = any || on
			}
			if !any {
				m.lastLog = "Nothing checked."
				return m, nil
			}
			m.lastLog = "Submitting…"
			return m, m.submitCmd()
		}
	}
	return m, nil
}

func (m boardModel) nextSelectable(from int) int {
	for i := from + 1; i < len(m.rows); i++ {
		if !m.rows[i].header {
			return i
		}
	}
	return from
}

func (m boardModel) prevSelectable(from int) int {
	for i := from - 1; i >= 0; i-- {
		if !m.rows[i].header {
			return i
		}
	}
	return from
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return "Loading…\n"
	}

	var b strings.Builder
	if m.progress != nil {
		b.WriteString(ui.Heading(ui.IconGame, "Level Up: Progress Tracker"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s\n\n",
			ui.LabelValue("Level", m.progress.CurrentLevel),
			ui.LabelValue("XP", fmt.Sprintf("%d/%d", m.progress.CurrentXP, m.progress.CurrentLevel*engine.XPPerLevel))))
	}

	for i, row := range m.rows {
		if row.header {
			b.WriteString(ui.H2.Render(row.title))
			b.WriteString("\n")
			continue
		}

		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}
		label := fmt.Sprintf("%s (%d XP)", row.def.Name, row.def.XP)
		if row.def.MaxPerPeriod() > 1 {
			label = fmt.Sprintf("(%d/%d) %s", row.count, row.def.MaxPerPeriod(), label)
		}
		if row.maxed {
			box = ui.Good.Render("[✓]")
			label = ui.Muted.Render(label + " — Completed")
		}

		line := fmt.Sprintf("  %s %s", box, label)
		if i == m.selected {
			line = ui.SelectedRow.Render("› " + strings.TrimLeft(line, " "))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("space: toggle  enter: submit  r: refresh  q: quit"))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}

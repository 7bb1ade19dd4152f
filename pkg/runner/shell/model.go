package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/jrnl/pkg/dates"
	"tableflip.dev/jrnl/pkg/printers"
	rundelete "tableflip.dev/jrnl/pkg/runner/delete"
	runlist "tableflip.dev/jrnl/pkg/runner/list"
	runopen "tableflip.dev/jrnl/pkg/runner/open"
	"tableflip.dev/jrnl/pkg/search"
	"tableflip.dev/jrnl/pkg/store"
)

type fsChangedMsg struct{}

type editorDoneMsg struct{ err error }

// pendingConfirm holds the action waiting on a y/N answer at the prompt.
type pendingConfirm struct {
	run func(m *model) tea.Cmd
}

// viewAliases are the shorthand listing commands, each expanding to
// `list <view>`.
var viewAliases = map[string]string{
	"lstw": "thisweek",
	"lspw": "lastweek",
	"lstm": "thismonth",
	"lspm": "lastmonth",
	"lsty": "thisyear",
	"lspy": "lastyear",
	"lsc":  "custom",
}

const helpText = `Commands:

  list <view> [start end]   list entries (ls); views: thisweek lastweek
                            thismonth lastmonth thisyear lastyear custom
  lstw lspw lstm lspm       listing shortcuts
  lsty lspy lsc
  search <term>             search entry contents; wrap the term in
                            slashes for a regular expression
  open [date]               open an entry in $EDITOR (o)
  otd / opd                 open today / yesterday
  delete <date>             delete an entry after confirming (rm)
  refresh                   rescan the data directory
  clear                     clear the screen
  exit / quit               leave the shell
`

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("62")).
	Padding(0, 1)

type model struct {
	ctx context.Context
	p   store.Persistence

	input textinput.Model
	vp    viewport.Model
	ready bool

	status string

	// lastRender redraws the most recent listing or search so a refresh can
	// repaint it against the new index.
	lastRender func() string

	pending *pendingConfirm
}

func newModel(ctx context.Context, p store.Persistence) *model {
	ti := textinput.New()
	ti.Prompt = "jrnl> "
	ti.Placeholder = "command (help for a list)"
	ti.CharLimit = 256
	ti.Focus()

	return &model{
		ctx:    ctx,
		p:      p,
		input:  ti,
		status: "journal: " + p.Config().DataDir,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
		m.rerender()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			return m, m.execute(line)
		}

	case fsChangedMsg:
		// External change; repaint quietly.
		m.p.Refresh()
		m.rerender()
		return m, nil

	case editorDoneMsg:
		m.p.Refresh()
		m.rerender()
		if msg.err != nil {
			m.status = fmt.Sprintf("edit failed: %v", msg.err)
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	if !m.ready {
		return "\n  starting..."
	}
	return m.vp.View() + "\n" + statusStyle.Width(m.vp.Width).Render(m.status) + "\n" + m.input.View()
}

// execute runs one prompt line. Errors land in the status bar; nothing here
// terminates the shell except an explicit exit.
func (m *model) execute(line string) tea.Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if m.pending != nil {
		pending := m.pending
		m.pending = nil
		switch strings.ToLower(line) {
		case "y", "yes":
			return pending.run(m)
		default:
			m.status = "Cancelled."
			return nil
		}
	}

	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	if name, ok := viewAliases[cmd]; ok {
		cmd, args = "list", append([]string{name}, args...)
	}

	switch cmd {
	case "list", "ls":
		m.runList(args)
	case "search", "s":
		m.runSearch(strings.Join(args, " "))
	case "open", "o":
		date := ""
		if len(args) > 0 {
			date = args[0]
		}
		return m.runOpen(date)
	case "otd":
		return m.runOpen("today")
	case "opd":
		return m.runOpen("yesterday")
	case "delete", "rm":
		if len(args) == 0 {
			m.status = "usage: delete <date>"
			return nil
		}
		m.runDelete(args[0])
	case "refresh":
		m.p.Refresh()
		m.rerender()
		m.status = "Refreshed."
	case "clear":
		m.lastRender = nil
		m.vp.SetContent("")
		m.status = ""
	case "help", "?":
		m.lastRender = nil
		m.vp.SetContent(helpText)
		m.status = ""
	case "exit", "quit", "q":
		return tea.Quit
	default:
		m.status = fmt.Sprintf("unknown command %q, try help", cmd)
	}
	return nil
}

func (m *model) runList(args []string) {
	name := "thisweek"
	var start, end string
	if len(args) > 0 {
		name = args[0]
	}
	if len(args) > 2 {
		start, end = args[1], args[2]
	}

	n := &runlist.List{View: name, Start: start, End: end, Persistence: m.p}
	sel, err := n.Select(time.Now())
	if err != nil {
		m.status = err.Error()
		return
	}

	m.lastRender = func() string {
		sel, err := n.Select(time.Now())
		if err != nil {
			return err.Error()
		}
		var buf bytes.Buffer
		pp := runlist.Printer(m.p.Config())
		pp.Out = &buf
		pp.Selection(sel)
		return buf.String()
	}
	m.rerender()
	m.status = fmt.Sprintf("%s: %d entries", sel.Label, len(sel.Entries))
}

func (m *model) runSearch(term string) {
	if term == "" {
		m.status = "usage: search <term>"
		return
	}

	m.lastRender = func() string {
		out := search.Search(m.p.Snapshot().Entries(), term)
		var buf bytes.Buffer
		pp := &printers.PrettyPrint{Out: &buf}
		pp.SearchResults(term, out)
		return buf.String()
	}
	m.rerender()
	m.status = fmt.Sprintf("search: %s", term)
}

func (m *model) runOpen(date string) tea.Cmd {
	n := &runopen.Open{Date: date, Persistence: m.p}
	cmd, err := n.Prepare(m.ctx, time.Now())
	switch {
	case errors.Is(err, store.ErrNotFound):
		m.status = fmt.Sprintf("No entry for %s. Create it? (y/N)", date)
		m.pending = &pendingConfirm{run: func(m *model) tea.Cmd {
			n.Confirm = func(string) bool { return true }
			cmd, err := n.Prepare(m.ctx, time.Now())
			if err != nil {
				m.status = err.Error()
				return nil
			}
			if cmd == nil {
				return nil
			}
			m.status = ""
			return tea.ExecProcess(cmd, func(err error) tea.Msg { return editorDoneMsg{err} })
		}}
		return nil
	case err != nil:
		m.status = err.Error()
		return nil
	case cmd == nil:
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg { return editorDoneMsg{err} })
}

func (m *model) runDelete(raw string) {
	date, ok := dates.Classify(raw)
	if !ok {
		m.status = fmt.Sprintf("%q is not a date", raw)
		return
	}
	e, ok := m.p.Snapshot().GetDate(date)
	if !ok {
		m.status = fmt.Sprintf("no entry for %s", dates.Format(date))
		return
	}

	key := e.Key
	m.status = fmt.Sprintf("Delete entry %s? (y/N)", key)
	m.pending = &pendingConfirm{run: func(m *model) tea.Cmd {
		var buf bytes.Buffer
		n := &rundelete.Delete{Date: key, Force: true, Out: &buf, Persistence: m.p}
		if err := n.Do(m.ctx); err != nil {
			m.status = err.Error()
			return nil
		}
		m.rerender()
		m.status = strings.TrimSpace(buf.String())
		return nil
	}}
}

func (m *model) rerender() {
	if m.lastRender == nil {
		return
	}
	width := m.vp.Width
	if width < 20 {
		width = 20
	}
	m.vp.SetContent(wordwrap.String(m.lastRender(), width))
}

package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/allowance/core"
	"github.com/jask/allowance/internal/home"
	"github.com/jask/allowance/widgets"
)

// latestExpenses is how many rows the collapsed expense list shows.
const latestExpenses = 5

// HomeScreen is the base layer: header, balance card and expense list.
type HomeScreen struct {
	keys    *core.KeyRegistry
	display core.Display
	showAll bool
}

func NewHomeScreen(keys *core.KeyRegistry, display core.Display) *HomeScreen {
	return &HomeScreen{keys: keys, display: display}
}

func (s *HomeScreen) Title() string { return "Parent Home" }
func (s *HomeScreen) Scope() string { return core.ScopeHome }

func (s *HomeScreen) ToggleAllExpenses() bool {
	s.showAll = !s.showAll
	return s.showAll
}

func (s *HomeScreen) Update(msg tea.KeyMsg, st home.State) (home.Action, tea.Cmd) {
	if s.keys.IsAction(msg, "open-profiles", s.Scope()) {
		return home.OpenProfiles{}, nil
	}
	return nil, nil
}

func (s *HomeScreen) View(st home.State, width, height int) string {
	sel := st.Selected()
	inner := max(10, width-2)

	avatar := core.CursorStyle.Render("(" + home.Initial(sel.Name) + ")")
	hint := core.MutedStyle.Render(s.keys.Label("open-profiles", s.Scope()))
	header := widgets.SpreadRow(core.TitleStyle.Render(sel.Name), hint+" "+avatar, inner)

	balance := core.BalanceStyle.Render(home.FormatAmount(s.display.CurrencySymbol, sel.Balance)) +
		" " + core.MutedStyle.Render(s.display.CurrencyCode)
	topUp := core.MutedStyle.Render("[" + s.keys.Label(core.CommandTopUp, s.Scope()) + "]")
	card := core.CardStyle.Width(max(1, inner-2)).Render(widgets.SpreadRow(balance, topUp, max(1, inner-6)))

	viewAll := "View All"
	if s.showAll {
		viewAll = "Show Less"
	}
	section := widgets.SpreadRow(
		core.TitleStyle.Render("All Expenses")+" "+
			core.MutedStyle.Render(home.FormatAmount(s.display.CurrencySymbol, st.ExpenseTotal())),
		core.MutedStyle.Render(fmt.Sprintf("%s %s", s.keys.Label(core.CommandToggleExpenses, s.Scope()), viewAll)),
		inner,
	)

	lines := []string{header, "", card, "", section}
	lines = append(lines, s.expenseRows(st.Expenses(), inner)...)
	return core.ClipHeight(strings.Join(lines, "\n"), height)
}

func (s *HomeScreen) expenseRows(expenses []home.Expense, width int) []string {
	if len(expenses) == 0 {
		return []string{core.MutedStyle.Render("No expenses yet")}
	}
	if !s.showAll && len(expenses) > latestExpenses {
		expenses = expenses[:latestExpenses]
	}
	rows := make([]string, 0, len(expenses)*2)
	for _, e := range expenses {
		icon := core.CursorStyle.Render("[" + home.Initial(e.Category) + "]")
		amount := home.FormatAmount(s.display.CurrencySymbol, e.Amount)
		rows = append(rows, widgets.SpreadRow(icon+" "+e.Category, amount, width))
		detail := e.Description
		if e.Date != "" {
			detail = strings.TrimSpace(detail + " · " + e.Date)
		}
		rows = append(rows, "    "+core.MutedStyle.Render(core.TrimToWidth(detail, max(1, width-4))))
	}
	return rows
}

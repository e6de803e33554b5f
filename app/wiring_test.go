package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/allowance/core"
	"github.com/jask/allowance/internal/config"
	"github.com/jask/allowance/internal/database"
	"github.com/jask/allowance/internal/home"
)

func sampleCatalog() database.Catalog {
	return database.Catalog{
		Profiles: []home.Profile{
			{ID: "1", Name: "Sarah", Image: home.DefaultProfileImage, Balance: 17800},
			{ID: "2", Name: "James", Image: home.DefaultProfileImage, Balance: 9500},
		},
		Expenses: []home.Expense{
			{ID: "1", Category: "Coffee", Description: "with Fresh Breast", Amount: 80, Date: "Friday"},
			{ID: "2", Category: "Gift", Description: "for Auditory Cookyload", Amount: 1500, Date: "Friday"},
		},
	}
}

func testConfig() config.Config {
	return config.Config{
		Profile: config.ProfileConfig{DefaultName: "Teen", IDSource: "counter"},
		UI:      config.UIConfig{CurrencySymbol: "₱", CurrencyCode: "PHP"},
	}
}

func newModel(t *testing.T) core.Model {
	t.Helper()
	m, err := NewModel(testConfig(), sampleCatalog())
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m core.Model, keys ...string) core.Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(core.Model)
	}
	return m
}

func profileNames(st home.State) []string {
	var out []string
	for _, p := range st.Profiles() {
		out = append(out, p.Name)
	}
	return out
}

func TestNewModelRejectsEmptyCatalog(t *testing.T) {
	if _, err := NewModel(testConfig(), database.Catalog{}); err == nil {
		t.Fatalf("expected error for catalog without profiles")
	}
}

func TestOpenSelectAndDismiss(t *testing.T) {
	m := press(newModel(t), "p")
	if m.State().ActiveModal() != home.ModalProfiles {
		t.Fatalf("p should open the profile manager")
	}
	m = press(m, "j", "enter")
	if m.State().Selected().Name != "James" {
		t.Fatalf("expected James selected, got %q", m.State().Selected().Name)
	}
	if m.State().ProfileModalVisible() {
		t.Fatalf("selecting should close the profile manager")
	}

	m = press(m, "p", "esc")
	if m.State().ActiveModal() != home.ModalNone {
		t.Fatalf("esc should dismiss the profile manager")
	}
}

func TestRemoveSelectedThenLastProfileNotice(t *testing.T) {
	m := press(newModel(t), "p", "d")
	if m.State().ActiveModal() != home.ModalConfirm {
		t.Fatalf("d should ask for confirmation, got %q", m.State().ActiveModal())
	}
	m = press(m, "y")
	if got := profileNames(m.State()); len(got) != 1 || got[0] != "James" {
		t.Fatalf("profiles after delete = %v", got)
	}
	if m.State().Selected().ID != "2" {
		t.Fatalf("selection should fall back to James")
	}

	m = press(m, "d")
	n, ok := m.State().Notice()
	if !ok || n != home.NoticeLastProfile {
		t.Fatalf("expected last profile notice, got %+v", n)
	}
	m = press(m, "a", "enter")
	if len(m.State().Profiles()) != 1 {
		t.Fatalf("notice must block the add key")
	}
	if m.State().ActiveModal() != home.ModalProfiles {
		t.Fatalf("enter should dismiss the notice, got %q", m.State().ActiveModal())
	}
}

func TestDeclinedRemovalKeepsProfiles(t *testing.T) {
	m := press(newModel(t), "p", "j", "x", "n")
	if got := profileNames(m.State()); len(got) != 2 {
		t.Fatalf("profiles = %v", got)
	}
	if m.State().Blocked() {
		t.Fatalf("confirmation should be resolved")
	}
}

func TestAddProfile(t *testing.T) {
	m := press(newModel(t), "p", "a")
	profiles := m.State().Profiles()
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}
	added := profiles[2]
	if added.Name != "Teen" || added.Balance != 0 || added.ID == "1" || added.ID == "2" {
		t.Fatalf("unexpected new profile %+v", added)
	}
}

func TestRenameCancelKeepsName(t *testing.T) {
	m := press(newModel(t), "p", "j", "e", "backspace", "backspace", "i", "e")
	edit, ok := m.State().Edit()
	if !ok || edit.PendingName != "Jamie" {
		t.Fatalf("pending name = %+v", edit)
	}
	m = press(m, "esc")
	p, _ := m.State().Profile("2")
	if p.Name != "James" {
		t.Fatalf("cancel must not rename, got %q", p.Name)
	}
	if m.State().EditModalVisible() || !m.State().ProfileModalVisible() {
		t.Fatalf("cancel should return to the profile manager")
	}
}

func TestRenameCommitUpdatesHeader(t *testing.T) {
	m := press(newModel(t), "p", "j", "enter")
	m = press(m, "p", "j", "e", "backspace", "backspace", "i", "e", "enter")
	p, _ := m.State().Profile("2")
	if p.Name != "Jamie" {
		t.Fatalf("expected Jamie, got %q", p.Name)
	}
	if m.State().Selected().Name != "Jamie" {
		t.Fatalf("header should show Jamie, got %q", m.State().Selected().Name)
	}
	if !strings.Contains(m.View(), "Jamie") {
		t.Fatalf("view should render the new name")
	}
}

func TestRenameBlankClosesSilently(t *testing.T) {
	m := press(newModel(t), "p", "e")
	for i := 0; i < len("Sarah"); i++ {
		m = press(m, "backspace")
	}
	m = press(m, " ", "enter")
	p, _ := m.State().Profile("1")
	if p.Name != "Sarah" {
		t.Fatalf("blank rename must be ignored, got %q", p.Name)
	}
	if m.State().EditModalVisible() {
		t.Fatalf("edit modal closes even when the rename is rejected")
	}
}

func TestReopenEditReseedsField(t *testing.T) {
	m := press(newModel(t), "p", "e", "x", "esc", "e")
	edit, _ := m.State().Edit()
	if edit.PendingName != "Sarah" {
		t.Fatalf("reopened edit should start from the stored name, got %q", edit.PendingName)
	}
	m = press(m, "enter")
	p, _ := m.State().Profile("1")
	if p.Name != "Sarah" {
		t.Fatalf("stale draft leaked into the rename: %q", p.Name)
	}
}

func TestFilterThenSelect(t *testing.T) {
	m := press(newModel(t), "p", "/", "j", "a", "m", "enter")
	if m.State().Selected().Name != "James" {
		t.Fatalf("filtered select should pick James, got %q", m.State().Selected().Name)
	}
}

func TestHomeViewShowsBalanceAndExpenses(t *testing.T) {
	next, _ := newModel(t).Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	v := next.(core.Model).View()
	for _, want := range []string{"Sarah", "₱17,800", "PHP", "All Expenses", "Coffee", "₱1,500", "with Fresh Breast"} {
		if !strings.Contains(v, want) {
			t.Fatalf("home view missing %q:\n%s", want, v)
		}
	}
}

// Package tui implements the interactive add-transaction form.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/validation"
)

// Form field focus order.
const (
	focusAmount = iota
	focusCategory
	focusDate
	focusMemo
	focusCount
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusedStyle = lipgloss.NewStyle().Foreground(cli.PrimaryColor)
	helpStyle    = cli.SubtleStyle
)

// Model holds the state of the add-transaction form.
type Model struct {
	ctx          context.Context
	transactions *service.TransactionService
	categories   *service.CategoryService
	validator    *validation.Validator
	saved        *model.Transaction
	amount       textinput.Model
	date         textinput.Model
	memo         textinput.Model
	cats         []model.Category
	keymap       KeyMap
	txnType      model.TransactionType
	catIndex     int
	focus        int
	quitting     bool
}

// NewModel creates the form model with today's date prefilled and the
// expense categories loaded.
func NewModel(ctx context.Context, txns *service.TransactionService, cats *service.CategoryService) Model {
	amount := textinput.New()
	amount.Placeholder = "1000"
	amount.CharLimit = 8
	amount.Focus()

	date := textinput.New()
	date.Placeholder = model.DateLayout
	date.SetValue(time.Now().Format(model.DateLayout))
	date.CharLimit = 10

	memo := textinput.New()
	memo.Placeholder = "メモ（任意）"
	memo.CharLimit = model.MaxMemoLength

	m := Model{
		ctx:          ctx,
		transactions: txns,
		categories:   cats,
		validator:    validation.NewValidator(),
		keymap:       DefaultKeyMap(),
		txnType:      model.TypeExpense,
		amount:       amount,
		date:         date,
		memo:         memo,
	}
	m.cats = cats.CategoriesByType(ctx, m.txnType)
	return m
}

// Saved returns the transaction stored on submit, or nil when the form was
// cancelled.
func (m Model) Saved() *model.Transaction {
	return m.saved
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keymap.ToggleType):
		m.toggleType()
		return m, nil

	case key.Matches(keyMsg, m.keymap.Next):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil

	case key.Matches(keyMsg, m.keymap.Prev):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil

	case key.Matches(keyMsg, m.keymap.Submit):
		return m.submit()
	}

	if m.focus == focusCategory {
		switch {
		case key.Matches(keyMsg, m.keymap.NextCat):
			m.cycleCategory(1)
			return m, nil
		case key.Matches(keyMsg, m.keymap.PrevCat):
			m.cycleCategory(-1)
			return m, nil
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards a message to the focused text input and re-validates
// that field, so its error appears and clears as the user types.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusAmount:
		m.amount, cmd = m.amount.Update(msg)
		m.validator.ValidateField(validation.FieldAmount, m.amount.Value())
	case focusDate:
		m.date, cmd = m.date.Update(msg)
		m.validator.ValidateField(validation.FieldDate, m.date.Value())
	case focusMemo:
		m.memo, cmd = m.memo.Update(msg)
		m.validator.ValidateField(validation.FieldMemo, m.memo.Value())
	}
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.amount.Blur()
	m.date.Blur()
	m.memo.Blur()
	switch focus {
	case focusAmount:
		m.amount.Focus()
	case focusDate:
		m.date.Focus()
	case focusMemo:
		m.memo.Focus()
	}
}

func (m *Model) toggleType() {
	if m.txnType == model.TypeExpense {
		m.txnType = model.TypeIncome
	} else {
		m.txnType = model.TypeExpense
	}
	m.cats = m.categories.CategoriesByType(m.ctx, m.txnType)
	m.catIndex = 0
}

func (m *Model) cycleCategory(delta int) {
	if len(m.cats) == 0 {
		return
	}
	m.catIndex = (m.catIndex + delta + len(m.cats)) % len(m.cats)
	m.validator.ValidateField(validation.FieldCategory, m.selectedCategoryID())
}

func (m Model) selectedCategoryID() string {
	if len(m.cats) == 0 {
		return ""
	}
	return m.cats[m.catIndex].ID
}

// submit validates the whole form atomically and saves on success.
func (m Model) submit() (tea.Model, tea.Cmd) {
	form := validation.Form{
		Amount:     m.amount.Value(),
		CategoryID: m.selectedCategoryID(),
		Date:       m.date.Value(),
		Memo:       m.memo.Value(),
	}
	if !m.validator.Validate(form) {
		return m, nil
	}

	// The form guarantees all-digits within range here.
	amount, err := strconv.ParseInt(form.Amount, 10, 64)
	if err != nil {
		return m, nil
	}

	m.saved = m.transactions.AddTransaction(m.ctx, service.AddTransactionInput{
		Amount:   amount,
		Type:     m.txnType,
		Category: m.cats[m.catIndex].Name,
		Date:     form.Date,
		Memo:     form.Memo,
	})
	m.quitting = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	typeLabel := "支出"
	typeStyle := cli.ExpenseStyle
	if m.txnType == model.TypeIncome {
		typeLabel = "収入"
		typeStyle = cli.IncomeStyle
	}
	b.WriteString(fmt.Sprintf("%s %s\n\n", labelStyle.Render("種別:"), typeStyle.Render(typeLabel)))

	b.WriteString(m.renderField(focusAmount, "金額", m.amount.View(), validation.FieldAmount))
	b.WriteString(m.renderField(focusCategory, "カテゴリ", m.renderCategory(), validation.FieldCategory))
	b.WriteString(m.renderField(focusDate, "日付", m.date.View(), validation.FieldDate))
	b.WriteString(m.renderField(focusMemo, "メモ", m.memo.View(), validation.FieldMemo))

	b.WriteString("\n" + helpStyle.Render("tab: 移動 • ctrl+t: 収入/支出 • enter: 保存 • esc: キャンセル"))

	return cli.RenderBox("記帳", b.String())
}

func (m Model) renderField(focus int, label, view, field string) string {
	rendered := labelStyle.Render(label + ":")
	if m.focus == focus {
		rendered = focusedStyle.Render("▸ ") + rendered
	} else {
		rendered = "  " + rendered
	}

	line := fmt.Sprintf("%s %s\n", rendered, view)
	if msg := m.validator.Error(field); msg != "" {
		line += "    " + cli.ErrorStyle.Render(msg) + "\n"
	}
	return line
}

func (m Model) renderCategory() string {
	if len(m.cats) == 0 {
		return cli.SubtleStyle.Render("(カテゴリがありません)")
	}
	cat := m.cats[m.catIndex]
	return fmt.Sprintf("◂ %s %s ▸", cat.Icon, cat.Name)
}

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
)

// Run launches the add-transaction form and returns the saved transaction,
// or nil when the user cancelled.
func Run(ctx context.Context, store service.Storage) (*model.Transaction, error) {
	txns := service.NewTransactionService(store)
	cats := service.NewCategoryService(store)

	program := tea.NewProgram(NewModel(ctx, txns, cats), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run add form: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Saved(), nil
}

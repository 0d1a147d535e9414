package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// MockLibraryService implements driving.LibraryService for testing.
type MockLibraryService struct {
	AddFunc          func(ctx context.Context, text string, difficulty domain.Difficulty, category, source string) (int64, error)
	GetFunc          func(ctx context.Context, id int64) (*domain.Sentence, error)
	UpdateFunc       func(ctx context.Context, id int64, text string, difficulty domain.Difficulty, category string) (bool, error)
	DeleteFunc       func(ctx context.Context, id int64) (bool, error)
	WipeFunc         func(ctx context.Context) (int64, error)
	ListFunc         func(ctx context.Context, page, limit int, filter string) (*domain.Page, error)
	ImportFunc       func(ctx context.Context, items []domain.Sentence, skipDuplicates bool) (int64, error)
	ExportFunc       func(ctx context.Context) ([]domain.Sentence, error)
	EnsureSeededFunc func(ctx context.Context) (int64, error)
	ReseedFunc       func(ctx context.Context) (int64, error)
}

func (m *MockLibraryService) Add(ctx context.Context, text string, difficulty domain.Difficulty, category, source string) (int64, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, text, difficulty, category, source)
	}
	return 0, nil
}

func (m *MockLibraryService) Get(ctx context.Context, id int64) (*domain.Sentence, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockLibraryService) Update(ctx context.Context, id int64, text string, difficulty domain.Difficulty, category string) (bool, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, text, difficulty, category)
	}
	return false, nil
}

func (m *MockLibraryService) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockLibraryService) Wipe(ctx context.Context) (int64, error) {
	if m.WipeFunc != nil {
		return m.WipeFunc(ctx)
	}
	return 0, nil
}

func (m *MockLibraryService) List(ctx context.Context, page, limit int, filter string) (*domain.Page, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit, filter)
	}
	return &domain.Page{}, nil
}

func (m *MockLibraryService) Import(ctx context.Context, items []domain.Sentence, skipDuplicates bool) (int64, error) {
	if m.ImportFunc != nil {
		return m.ImportFunc(ctx, items, skipDuplicates)
	}
	return 0, nil
}

func (m *MockLibraryService) Export(ctx context.Context) ([]domain.Sentence, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx)
	}
	return nil, nil
}

func (m *MockLibraryService) EnsureSeeded(ctx context.Context) (int64, error) {
	if m.EnsureSeededFunc != nil {
		return m.EnsureSeededFunc(ctx)
	}
	return 0, nil
}

func (m *MockLibraryService) Reseed(ctx context.Context) (int64, error) {
	if m.ReseedFunc != nil {
		return m.ReseedFunc(ctx)
	}
	return 0, nil
}

func newTestPorts() *Ports {
	return NewPorts(&MockLibraryService{})
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotNil(t, app.Browse())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingLibraryService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.NotEqual(t, "Loading...", app.View())
}

func TestApp_View_BeforeDimensions(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Loading...", app.View())
}

func TestApp_Update_QuitKey(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_CtrlCAlwaysQuits(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	// Put the browse view into filter mode first.
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.True(t, app.Browse().FilterFocused())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_QTypesIntoFocusedFilter(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.True(t, app.Browse().FilterFocused())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	// "q" must reach the filter input, not quit the app.
	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd())
	}
}

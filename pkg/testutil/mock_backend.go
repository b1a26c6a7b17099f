package testutil

import (
	"github.com/accntech/sharprinter/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockBackend is a testify mock implementation of types.Backend
type MockBackend struct {
	mock.Mock
}

var _ types.Backend = (*MockBackend)(nil)

func (m *MockBackend) Initialize(model string) error {
	args := m.Called(model)
	return args.Error(0)
}

func (m *MockBackend) OpenConnection(conn string) error {
	args := m.Called(conn)
	return args.Error(0)
}

func (m *MockBackend) CloseConnection() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockBackend) Release() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockBackend) FeedLines(count int) error {
	args := m.Called(count)
	return args.Error(0)
}

func (m *MockBackend) EmitTextLine(text string, align types.HAlign, size types.TextSize) error {
	args := m.Called(text, align, size)
	return args.Error(0)
}

func (m *MockBackend) EmitBarcode(data string, cfg types.BarcodeConfig) error {
	args := m.Called(data, cfg)
	return args.Error(0)
}

func (m *MockBackend) EmitImage(path, label string, scale types.ScaleMode) error {
	args := m.Called(path, label, scale)
	return args.Error(0)
}

func (m *MockBackend) CutPaper(distance int) error {
	args := m.Called(distance)
	return args.Error(0)
}

func (m *MockBackend) OpenCashDrawer(pin types.DrawerPin, onMs, offMs int) error {
	args := m.Called(pin, onMs, offMs)
	return args.Error(0)
}

// ExpectLifecycle registers Initialize, OpenConnection, Release and
// CloseConnection, all succeeding once.
func (m *MockBackend) ExpectLifecycle(model, conn string) {
	m.On("Initialize", model).Return(nil).Once()
	m.On("OpenConnection", conn).Return(nil).Once()
	m.On("Release").Return(nil).Once()
	m.On("CloseConnection").Return(nil).Once()
}

// EmittedLines returns the text of every EmitTextLine call in call order.
func (m *MockBackend) EmittedLines() []string {
	var lines []string
	for _, call := range m.Calls {
		if call.Method == "EmitTextLine" {
			lines = append(lines, call.Arguments.String(0))
		}
	}
	return lines
}

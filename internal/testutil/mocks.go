// Package testutil provides fixtures and mock implementations of the
// interfaces defined in pkg/converter, for use across the module's tests.
package testutil

import (
	"io"
	"log/slog"

	"github.com/stackvity/csv2pipe/pkg/converter"
	"github.com/stretchr/testify/mock"
)

// MockHooks provides a mock implementation of the converter.Hooks interface.
// Configure expectations using testify/mock methods (e.g., .On("OnConversionStart", ...).Return(nil)).
type MockHooks struct {
	mock.Mock
}

// OnConversionStart mocks the OnConversionStart method.
func (m *MockHooks) OnConversionStart(inputPath, outputPath string) error {
	args := m.Called(inputPath, outputPath)
	return args.Error(0)
}

// OnConversionComplete mocks the OnConversionComplete method.
func (m *MockHooks) OnConversionComplete(report converter.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

// DiscardLogger returns a slog handler that drops every record.
func DiscardLogger() slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
}

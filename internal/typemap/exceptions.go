package typemap

import "strings"

// genericError is used when no exception name is available.
const genericError = "RuntimeError"

// exceptions maps Python exception names to their closest Elixir error
// module. Unmapped names pass through unchanged so callers can surface
// library-specific exception types verbatim.
var exceptions = map[string]string{
	"ValueError":          "ArgumentError",
	"TypeError":           "ArgumentError",
	"KeyError":            "KeyError",
	"IndexError":          "Enum.OutOfBoundsError",
	"AttributeError":      "UndefinedFunctionError",
	"ZeroDivisionError":   "ArithmeticError",
	"OverflowError":       "ArithmeticError",
	"FloatingPointError":  "ArithmeticError",
	"FileNotFoundError":   "File.Error",
	"PermissionError":     "File.Error",
	"IsADirectoryError":   "File.Error",
	"OSError":             "File.Error",
	"IOError":             "File.Error",
	"NotImplementedError": "RuntimeError",
	"StopIteration":       "RuntimeError",
	"MemoryError":         "SystemLimitError",
	"RecursionError":      "SystemLimitError",
	"RuntimeError":        "RuntimeError",
	"Exception":           "RuntimeError",
}

// ConvertException maps a Python exception name to an Elixir error module.
// Empty input yields the generic runtime error.
func (m *Mapper) ConvertException(pythonException string) string {
	s := strings.TrimSpace(pythonException)
	if s == "" {
		return genericError
	}
	if m != nil {
		if mapped, ok := m.excOverrides[s]; ok {
			return mapped
		}
	}
	if mapped, ok := exceptions[s]; ok {
		return mapped
	}
	return s
}

// ConvertException maps an exception name using the built-in table only.
func ConvertException(pythonException string) string {
	return (*Mapper)(nil).ConvertException(pythonException)
}

package typemap

import "testing"

func TestConvertException(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "RuntimeError"},
		{name: "whitespace only", input: "  ", want: "RuntimeError"},
		{name: "ValueError", input: "ValueError", want: "ArgumentError"},
		{name: "TypeError", input: "TypeError", want: "ArgumentError"},
		{name: "KeyError", input: "KeyError", want: "KeyError"},
		{name: "IndexError", input: "IndexError", want: "Enum.OutOfBoundsError"},
		{name: "AttributeError", input: "AttributeError", want: "UndefinedFunctionError"},
		{name: "ZeroDivisionError", input: "ZeroDivisionError", want: "ArithmeticError"},
		{name: "OverflowError", input: "OverflowError", want: "ArithmeticError"},
		{name: "FloatingPointError", input: "FloatingPointError", want: "ArithmeticError"},
		{name: "FileNotFoundError", input: "FileNotFoundError", want: "File.Error"},
		{name: "PermissionError", input: "PermissionError", want: "File.Error"},
		{name: "IsADirectoryError", input: "IsADirectoryError", want: "File.Error"},
		{name: "OSError", input: "OSError", want: "File.Error"},
		{name: "IOError", input: "IOError", want: "File.Error"},
		{name: "NotImplementedError", input: "NotImplementedError", want: "RuntimeError"},
		{name: "StopIteration", input: "StopIteration", want: "RuntimeError"},
		{name: "MemoryError", input: "MemoryError", want: "SystemLimitError"},
		{name: "RecursionError", input: "RecursionError", want: "SystemLimitError"},
		{name: "RuntimeError", input: "RuntimeError", want: "RuntimeError"},
		{name: "base Exception", input: "Exception", want: "RuntimeError"},
		{name: "unmapped passes through", input: "CustomAppError", want: "CustomAppError"},
		{name: "dotted name passes through", input: "requests.HTTPError", want: "requests.HTTPError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertException(tt.input); got != tt.want {
				t.Errorf("ConvertException(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertException_Overrides(t *testing.T) {
	m := NewMapper(nil, map[string]string{
		"ValueError":     "MyApp.InputError",
		"CustomAppError": "MyApp.Error",
	})

	if got := m.ConvertException("ValueError"); got != "MyApp.InputError" {
		t.Errorf("override ValueError = %q", got)
	}
	if got := m.ConvertException("CustomAppError"); got != "MyApp.Error" {
		t.Errorf("override CustomAppError = %q", got)
	}
	if got := m.ConvertException("TypeError"); got != "ArgumentError" {
		t.Errorf("non-overridden TypeError = %q", got)
	}
}

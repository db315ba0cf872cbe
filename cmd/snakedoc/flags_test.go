package main

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		want       cliFlags
		wantInputs []string
		wantErr    bool
	}{
		{
			name: "no arguments",
			args: []string{"snakedoc"},
		},
		{
			name:       "positional inputs",
			args:       []string{"snakedoc", "a.txt", "b.txt"},
			wantInputs: []string{"a.txt", "b.txt"},
		},
		{
			name:       "long flags",
			args:       []string{"snakedoc", "--style", "google", "--output", "out.md", "--html", "--workers", "4", "in.txt"},
			want:       cliFlags{style: "google", output: "out.md", html: true, workers: 4},
			wantInputs: []string{"in.txt"},
		},
		{
			name:       "short flags",
			args:       []string{"snakedoc", "-s", "numpy", "-c", "conf", "-w", "2", "-q", "in.txt"},
			want:       cliFlags{style: "numpy", config: "conf", workers: 2, quiet: true},
			wantInputs: []string{"in.txt"},
		},
		{
			name: "version flag",
			args: []string{"snakedoc", "--version"},
			want: cliFlags{version: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"snakedoc", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inputs, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			if got != tt.want {
				t.Errorf("flags = %+v, want %+v", got, tt.want)
			}
			if len(inputs) != len(tt.wantInputs) {
				t.Fatalf("inputs = %v, want %v", inputs, tt.wantInputs)
			}
			for i := range inputs {
				if inputs[i] != tt.wantInputs[i] {
					t.Errorf("inputs[%d] = %q, want %q", i, inputs[i], tt.wantInputs[i])
				}
			}
		})
	}
}

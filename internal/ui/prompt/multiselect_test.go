package prompt

import (
	"errors"
	"slices"
	"testing"

	"github.com/raphi011/cliprompt/internal/term"
)

func values(opts []SelectOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}

func TestMultiSelect(t *testing.T) {
	t.Parallel()

	up, down, enter := term.KeyArrowUp, term.KeyArrowDown, term.KeyEnter

	tests := []struct {
		name string
		max  int
		keys []term.Key
		want []string
	}{
		{
			name: "confirm without selecting",
			max:  3,
			keys: []term.Key{up, enter},
			want: []string{},
		},
		{
			name: "toggle first and confirm",
			max:  3,
			keys: []term.Key{enter, up, enter},
			want: []string{"a"},
		},
		{
			name: "selection keeps input order",
			max:  3,
			keys: []term.Key{up, up, enter, up, up, enter, down, down, down, enter},
			want: []string{"a", "c"},
		},
		{
			name: "toggle twice unchecks",
			max:  3,
			keys: []term.Key{enter, enter, up, enter},
			want: []string{},
		},
		{
			name: "cap refuses extra selections",
			max:  1,
			keys: []term.Key{enter, down, enter, down, enter, down, enter},
			want: []string{"a"},
		},
		{
			name: "unchecking frees a slot under the cap",
			max:  1,
			keys: []term.Key{enter, enter, down, enter, down, down, enter},
			want: []string{"b"},
		},
		{
			name: "other keys are ignored",
			max:  3,
			keys: []term.Key{term.KeyArrowLeft, term.KeyRune, up, enter},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newBuffer(tt.keys...)
			got, err := New(b).MultiSelectMax("pick", abc(), tt.max)
			if err != nil {
				t.Fatalf("MultiSelectMax() error = %v", err)
			}
			if gotV := values(got); !slices.Equal(gotV, tt.want) {
				t.Errorf("MultiSelectMax() = %v, want %v", gotV, tt.want)
			}
			if b.PendingKeys() != 0 {
				t.Errorf("%d keys left unread", b.PendingKeys())
			}
			if n := len(b.Lines()); n != 6 {
				t.Errorf("output has %d lines, want 6 (rendering must not scroll)", n)
			}
			assertSettled(t, b)
		})
	}
}

func TestMultiSelect_Output(t *testing.T) {
	t.Parallel()

	opts := abc()[:2]
	b := newBuffer(term.KeyEnter, term.KeyArrowDown, term.KeyArrowDown, term.KeyEnter)
	got, err := New(b).MultiSelect("pick", opts)
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if len(got) != 1 || got[0].Value != "a" {
		t.Errorf("MultiSelect() = %v, want [a <A>]", got)
	}

	want := "◇ pick\n\r│ ○ ◼ A\n\r│ ○ ◻ B\n\r│ ● confirm\n│\n"
	if b.String() != want {
		t.Errorf("output = %q, want %q", b.String(), want)
	}
}

func TestMultiSelect_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options []SelectOption
		max     int
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty options",
			max:     1,
			wantErr: ErrEmptyOptions,
			wantMsg: "options is empty",
		},
		{
			name:    "empty options wins over bad max",
			max:     0,
			wantErr: ErrEmptyOptions,
			wantMsg: "options is empty",
		},
		{
			name:    "max above option count",
			options: abc(),
			max:     4,
			wantErr: ErrInvalidMaxChoice,
			wantMsg: "max_choice_num must be less or equal than options length",
		},
		{
			name:    "zero max",
			options: abc(),
			max:     0,
			wantErr: ErrInvalidMaxChoice,
			wantMsg: "max_choice_num must be greater than 0",
		},
		{
			name:    "negative max",
			options: abc(),
			max:     -1,
			wantErr: ErrInvalidMaxChoice,
			wantMsg: "max_choice_num must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newBuffer()
			_, err := New(b).MultiSelectMax("pick", tt.options, tt.max)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MultiSelectMax() error = %v, want %v", err, tt.wantErr)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if len(b.Lines()) != 0 {
				t.Errorf("MultiSelectMax() wrote before validating: %q", b.String())
			}
		})
	}

	_, err := New(newBuffer()).MultiSelectMax("pick", abc(), 9)
	var ime *InvalidMaxChoiceError
	if !errors.As(err, &ime) {
		t.Errorf("MultiSelectMax() error = %T, want *InvalidMaxChoiceError", err)
	}
}

func TestMultiSelect_DefaultCapIsOptionCount(t *testing.T) {
	t.Parallel()

	down, enter := term.KeyArrowDown, term.KeyEnter
	b := newBuffer(enter, down, enter, down, enter, down, enter)
	got, err := New(b).MultiSelect("pick", abc())
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if !slices.Equal(values(got), []string{"a", "b", "c"}) {
		t.Errorf("MultiSelect() = %v, want all options", values(got))
	}
}

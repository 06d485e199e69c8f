package codec

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "single word",
			text: "hello",
			want: []Token{{Word, "hello"}},
		},
		{
			name: "single space run",
			text: " \t\n ",
			want: []Token{{Space, " \t\n "}},
		},
		{
			name: "words and spaces alternate",
			text: "the quick brown fox",
			want: []Token{
				{Word, "the"}, {Space, " "},
				{Word, "quick"}, {Space, " "},
				{Word, "brown"}, {Space, " "},
				{Word, "fox"},
			},
		},
		{
			name: "leading and trailing whitespace",
			text: "  mid  ",
			want: []Token{{Space, "  "}, {Word, "mid"}, {Space, "  "}},
		},
		{
			name: "mixed whitespace kinds merge into one run",
			text: "a \t\r\n b",
			want: []Token{{Word, "a"}, {Space, " \t\r\n "}, {Word, "b"}},
		},
		{
			name: "unicode whitespace and words",
			text: "héllo wörld",
			want: []Token{{Word, "héllo"}, {Space, " "}, {Word, "wörld"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenize_ConcatenationReproducesInput(t *testing.T) {
	inputs := []string{
		"the quick brown fox",
		"  leading and trailing  ",
		"tabs\tand\nnewlines\r\nmixed",
		"unicode — héllo wörld done",
		"single",
		" ",
	}

	for _, input := range inputs {
		var sb strings.Builder
		for _, tok := range Tokenize(input) {
			if tok.Text == "" {
				t.Errorf("Tokenize(%q) produced an empty token", input)
			}
			sb.WriteString(tok.Text)
		}
		if sb.String() != input {
			t.Errorf("concatenated tokens = %q, want %q", sb.String(), input)
		}
	}
}

package ui

import "testing"

func TestScreenBuffer(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   string
	}{
		{"plain lines", []string{"hello\r\nworld"}, "hello\nworld"},
		{"colors stripped", []string{"\x1b[31mred\x1b[0m text"}, "red text"},
		{"carriage return overwrites", []string{"[download]  10%\r[download]  55%"}, "[download]  55%"},
		{"backspace moves left", []string{"abc\bd"}, "abd"},
		{"tab expands", []string{"a\tb"}, "a       b"},
		{"bell ignored", []string{"ding\a"}, "ding"},
		{"sequence split across chunks", []string{"one\x1b[3", "2mtwo"}, "onetwo"},
		{"osc title dropped", []string{"\x1b]0;title\a", "after"}, "after"},
		{"lone escape held back", []string{"x\x1b", "[0my"}, "xy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newScreenBuffer(0)
			for _, chunk := range tt.chunks {
				b.Write([]byte(chunk))
			}
			if got := b.Text(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestScreenBuffer_Trim(t *testing.T) {
	b := newScreenBuffer(2)
	b.Write([]byte("1\n2\n3\n4"))
	if got := b.Text(); got != "3\n4" {
		t.Errorf("expected last two lines, got %q", got)
	}

	b.Reset()
	if got := b.Text(); got != "" {
		t.Errorf("expected empty buffer after reset, got %q", got)
	}
}

func TestSplitIncomplete(t *testing.T) {
	tests := []struct {
		in       string
		complete string
		rest     string
	}{
		{"abc", "abc", ""},
		{"abc\x1b", "abc", "\x1b"},
		{"abc\x1b[", "abc", "\x1b["},
		{"abc\x1b[1;3", "abc", "\x1b[1;3"},
		{"abc\x1b[1m", "abc\x1b[1m", ""},
		{"abc\x1b]0;t", "abc", "\x1b]0;t"},
		{"abc\x1b]0;t\a", "abc\x1b]0;t\a", ""},
		{"abc\x1b(B", "abc\x1b(B", ""},
		{"ab\xd0", "ab", "\xd0"},
		{"ab\xd0\x97", "ab\xd0\x97", ""},
		{"\x1b[1m\xe2\x94", "\x1b[1m", "\xe2\x94"},
		{"\x1b[1\xe2\x94", "", "\x1b[1\xe2\x94"},
		{"ab\xff", "ab\xff", ""},
	}

	for _, tt := range tests {
		complete, rest := splitIncomplete([]byte(tt.in))
		if string(complete) != tt.complete || string(rest) != tt.rest {
			t.Errorf("splitIncomplete(%q) = %q, %q; expected %q, %q", tt.in, complete, rest, tt.complete, tt.rest)
		}
	}
}

func TestScreenBuffer_RuneSplitAcrossWrites(t *testing.T) {
	data := []byte("Загрузка 10%")
	for cut := 1; cut < len(data); cut++ {
		b := newScreenBuffer(10)
		b.Write(data[:cut])
		b.Write(data[cut:])
		if got := b.Text(); got != string(data) {
			t.Errorf("cut at %d: expected %q, got %q", cut, data, got)
		}
	}
}

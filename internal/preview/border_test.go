package preview

import "testing"

func TestBorderStyle_Chars(t *testing.T) {
	tests := map[string]struct {
		style BorderStyle
		want  BorderChars
	}{
		"single":  {style: BorderSingle, want: BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}},
		"rounded": {style: BorderRounded, want: BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}},
		"ascii":   {style: BorderASCII, want: BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}},
		"none":    {style: BorderNone, want: BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.style.Chars(); got != tt.want {
				t.Errorf("Chars() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseBorderStyle(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    BorderStyle
		wantErr bool
	}{
		"single":     {name: "single", want: BorderSingle},
		"mixed case": {name: " Double ", want: BorderDouble},
		"thick":      {name: "thick", want: BorderThick},
		"none":       {name: "none", want: BorderNone},
		"unknown":    {name: "dotted", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBorderStyle(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBorderStyle(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBorderStyle(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestDrawBox(t *testing.T) {
	tests := map[string]struct {
		x, y, w, h int
		border     BorderStyle
		want       string
	}{
		"single": {
			x: 0, y: 0, w: 4, h: 3, border: BorderSingle,
			want: "┌──┐\n│  │\n└──┘",
		},
		"offset ascii": {
			x: 1, y: 1, w: 3, h: 2, border: BorderASCII,
			want: "\n +-+\n +-+",
		},
		"too small": {
			x: 0, y: 0, w: 1, h: 3, border: BorderSingle,
			want: "\n\n",
		},
		"none": {
			x: 0, y: 0, w: 4, h: 3, border: BorderNone,
			want: "\n\n",
		},
		"clipped": {
			x: 2, y: 1, w: 5, h: 5, border: BorderSingle,
			want: "\n  ┌─\n  │",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(4, 3)
			DrawBox(c, tt.x, tt.y, tt.w, tt.h, tt.border)
			if got := c.StringTrimmed(); got != tt.want {
				t.Errorf("DrawBox() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

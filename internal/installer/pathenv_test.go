package installer

import "testing"

func TestContainsDir(t *testing.T) {
	tests := []struct {
		name            string
		pathList        string
		dir             string
		caseInsensitive bool
		want            bool
	}{
		{"middle segment", `C:\Windows;C:\GitEx;C:\Tools`, `C:\GitEx`, true, true},
		{"first segment", `C:\GitEx;C:\Windows`, `C:\GitEx`, true, true},
		{"last segment", `C:\Windows;C:\GitEx`, `C:\GitEx`, true, true},
		{"only segment", `C:\GitEx`, `C:\GitEx`, true, true},
		{"trailing backslash in list", `C:\Windows;C:\GitEx\`, `C:\GitEx`, true, true},
		{"trailing backslash in query", `C:\Windows;C:\GitEx`, `C:\GitEx\`, true, true},
		{"case difference", `C:\Windows;c:\gitex`, `C:\GitEx`, true, true},
		{"quoted segment", `C:\Windows;"C:\GitEx"`, `C:\GitEx`, true, true},
		{"absent", `C:\Windows;C:\Tools`, `C:\GitEx`, true, false},
		{"prefix is not a match", `C:\GitExtra;C:\Windows`, `C:\GitEx`, true, false},
		{"empty list", ``, `C:\GitEx`, true, false},
		{"case sensitive miss", `/usr/local/BIN`, `/usr/local/bin`, false, false},
		{"unix style", `/usr/local/bin:/usr/bin`, `/usr/bin`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep := ';'
			if !tt.caseInsensitive {
				sep = ':'
			}
			got := ContainsDir(tt.pathList, tt.dir, sep, tt.caseInsensitive)
			if got != tt.want {
				t.Errorf("ContainsDir(%q, %q) = %v, want %v", tt.pathList, tt.dir, got, tt.want)
			}
		})
	}
}

func TestAppendDir(t *testing.T) {
	tests := []struct {
		name     string
		pathList string
		dir      string
		want     string
	}{
		{"append to list", `C:\Windows;C:\Tools`, `C:\GitEx`, `C:\Windows;C:\Tools;C:\GitEx`},
		{"append to empty", ``, `C:\GitEx`, `C:\GitEx`},
		{"list with trailing separator", `C:\Windows;`, `C:\GitEx`, `C:\Windows;C:\GitEx`},
		{"already present", `C:\Windows;C:\GitEx`, `C:\GitEx`, `C:\Windows;C:\GitEx`},
		{"already present as first segment", `C:\GitEx;C:\Windows`, `C:\GitEx`, `C:\GitEx;C:\Windows`},
		{"already present with trailing backslash", `C:\Windows;C:\GitEx\`, `C:\GitEx`, `C:\Windows;C:\GitEx\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendDir(tt.pathList, tt.dir, ';', true)
			if got != tt.want {
				t.Errorf("AppendDir(%q, %q) = %q, want %q", tt.pathList, tt.dir, got, tt.want)
			}
		})
	}
}

func TestAppendDirIdempotent(t *testing.T) {
	pathList := `C:\Windows`
	for i := 0; i < 3; i++ {
		pathList = AppendDir(pathList, `C:\GitEx`, ';', true)
	}
	if pathList != `C:\Windows;C:\GitEx` {
		t.Errorf("repeated AppendDir produced %q", pathList)
	}
}

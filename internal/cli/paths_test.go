package cli

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestCacheDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME only applies on linux")
	}

	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	want := filepath.Join(tmp, appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestSanitizeImagePath(t *testing.T) {
	comicPath := t.TempDir()
	assets := filepath.Join(comicPath, "assets")

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "inside assets",
			raw:  filepath.Join(assets, "covers", "one.png"),
			want: "/covers/one.png",
		},
		{
			name: "quoted drag and drop",
			raw:  `"` + filepath.Join(assets, "page.png") + `"`,
			want: "/page.png",
		},
		{
			name: "surrounding whitespace",
			raw:  "  " + filepath.Join(assets, "page.png") + "  ",
			want: "/page.png",
		},
		{
			name:    "outside assets",
			raw:     filepath.Join(comicPath, "comic.toml"),
			wantErr: true,
		},
		{
			name:    "escapes via dotdot",
			raw:     filepath.Join(assets, "..", "comic.toml"),
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "only quotes",
			raw:     `""`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeImagePath(tt.raw, comicPath)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("sanitizeImagePath(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("sanitizeImagePath(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("sanitizeImagePath(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

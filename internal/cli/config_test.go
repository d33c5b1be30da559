package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/plotsplit/pkg/errors"
)

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", appName) {
		t.Errorf("configDir() = %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	dir, err = configDir()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(dir, filepath.Join(".config", appName)) {
		t.Errorf("configDir() = %q, want ~/.config/%s", dir, appName)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("missing file (-want +got):\n%s", diff)
	}

	path := filepath.Join(dir, "config.toml")
	data := `font_size = 9
line_width = [1.5]
paper_size = [12, 9]
verify = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		FontSize:  9,
		LineWidth: []float64{1.5},
		PaperSize: []float64{12, 9},
		MarkupExt: ".tikz",
		Policy:    "overwrite",
		Verify:    true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"unknown.toml": "colour = \"red\"\n",
		"broken.toml":  "font_size = = 3\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(path); !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("expected INVALID_FORMAT, got %v", err)
			}
		})
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := New(&out, LogInfo).RootCommand()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append([]string{"--config", path}, args...))
		err := root.Execute()
		return out.String(), err
	}

	if _, err := run("config", "init"); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("written config (-want +got):\n%s", diff)
	}

	if _, err := run("config", "init"); !errors.Is(err, errors.ErrCodeFileExists) {
		t.Errorf("expected FILE_EXISTS, got %v", err)
	}
	if _, err := run("config", "init", "--force"); err != nil {
		t.Errorf("--force: %v", err)
	}

	out, err := run("config", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{path, ".tikz", "overwrite"} {
		if !strings.Contains(out, s) {
			t.Errorf("show output misses %q:\n%s", s, out)
		}
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := Config{
		FontSize:  9,
		LineWidth: []float64{2},
		PaperSize: []float64{12, 9},
		MarkupExt: ".tex",
		Policy:    "version",
		Verify:    true,
	}
	changed := map[string]bool{"font-size": true, "ext": true}

	opts := exportOpts{fontSize: 11, ext: ".pgf"}
	opts.applyConfig(cfg, func(name string) bool { return changed[name] })

	want := exportOpts{
		size:      []float64{12, 9},
		fontSize:  11,
		lineWidth: []float64{2},
		policy:    "version",
		ext:       ".pgf",
		verify:    true,
	}
	if diff := cmp.Diff(want, opts, cmp.AllowUnexported(exportOpts{})); diff != "" {
		t.Errorf("applyConfig (-want +got):\n%s", diff)
	}
}

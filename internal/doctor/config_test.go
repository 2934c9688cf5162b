package doctor

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateConfig points cwd and HOME at empty temp directories so the config
// search cannot pick up files from the developer's machine.
func isolateConfig(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, "home")
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)
	t.Chdir(tmpDir)
	return tmpDir
}

func TestConfigFileCheck(t *testing.T) {
	t.Run("name and category", func(t *testing.T) {
		check := &ConfigFileCheck{}
		if check.Name() != "config_file" {
			t.Errorf("expected name 'config_file', got %s", check.Name())
		}
		if check.Category() != "CONFIG" {
			t.Errorf("expected category 'CONFIG', got %s", check.Category())
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		check := &ConfigFileCheck{ConfigPath: filepath.Join(tmpDir, "nonexistent.yaml")}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})

	t.Run("config found", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, ".sysmon.yaml")
		content := `version: 1
processes:
  sort_by: cpu
  limit: 20
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		check := &ConfigFileCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("no config anywhere warns and is fixable", func(t *testing.T) {
		isolateConfig(t)

		check := &ConfigFileCheck{}
		result := check.Run()

		if result.Status != StatusWarn {
			t.Errorf("expected StatusWarn, got %v: %s", result.Status, result.Message)
		}
		if !result.Fixable {
			t.Error("expected the missing config to be fixable")
		}
	})

	t.Run("fix writes global defaults", func(t *testing.T) {
		isolateConfig(t)

		check := &ConfigFileCheck{}
		if err := check.Fix(); err != nil {
			t.Fatalf("Fix failed: %v", err)
		}

		result := check.Run()
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass after fix, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("fix is a no-op when config exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, ".sysmon.yaml")
		if err := os.WriteFile(cfgPath, []byte("version: 1\n"), 0644); err != nil {
			t.Fatal(err)
		}

		check := &ConfigFileCheck{ConfigPath: cfgPath}
		if err := check.Fix(); err != nil {
			t.Errorf("Fix on a present config should be a no-op, got %v", err)
		}
	})
}

func TestConfigSchemaCheck(t *testing.T) {
	t.Run("name and category", func(t *testing.T) {
		check := &ConfigSchemaCheck{}
		if check.Name() != "config_schema" {
			t.Errorf("expected name 'config_schema', got %s", check.Name())
		}
		if check.Category() != "CONFIG" {
			t.Errorf("expected category 'CONFIG', got %s", check.Category())
		}
	})

	t.Run("valid schema", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, "valid.yaml")
		content := `version: 1
processes:
  sort_by: memory
  limit: 10
cpu:
  interval: 2.0
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		check := &ConfigSchemaCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, "invalid.yaml")
		if err := os.WriteFile(cfgPath, []byte("this is not valid yaml: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}

		check := &ConfigSchemaCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail for invalid YAML, got %v", result.Status)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, "bad-sort.yaml")
		content := `version: 1
processes:
  sort_by: pid
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		check := &ConfigSchemaCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail for bad sort_by, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("missing config passes with defaults note", func(t *testing.T) {
		isolateConfig(t)

		check := &ConfigSchemaCheck{}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass when no config exists, got %v: %s", result.Status, result.Message)
		}
	})
}

func TestNewConfigChecks(t *testing.T) {
	checks := NewConfigChecks("")
	if len(checks) != 2 {
		t.Fatalf("expected 2 config checks, got %d", len(checks))
	}
	for _, c := range checks {
		if c.Category() != "CONFIG" {
			t.Errorf("check %s has category %s, want CONFIG", c.Name(), c.Category())
		}
	}
}

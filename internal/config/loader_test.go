package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/benchtable/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.ReadmeName, convey.ShouldEqual, "readme.md")
				convey.So(cfg.ExpectedRuns, convey.ShouldEqual, 3)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("BENCHTABLE_README_NAME", "README.md")
			_ = os.Setenv("BENCHTABLE_EXPECTED_RUNS", "4")
			_ = os.Setenv("BENCHTABLE_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ReadmeName, convey.ShouldEqual, "README.md")
				convey.So(cfg.ExpectedRuns, convey.ShouldEqual, 4)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			path := writeTempConfig(t, `
readme_name: docs.md
multicore_marker: Parallel
tier_labels:
  - small
  - large
name_substitutions:
  Zig: "Zig[^3]"
`)

			cfg, err := config.Load(ctx, config.WithFile(path))

			convey.Convey("Then it should load from the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ReadmeName, convey.ShouldEqual, "docs.md")
				convey.So(cfg.MulticoreMarker, convey.ShouldEqual, "Parallel")
				convey.So(cfg.TierLabels, convey.ShouldResemble, []string{"small", "large"})
				convey.So(cfg.NameSubstitutions["Zig"], convey.ShouldEqual, "Zig[^3]")
			})
		})

		convey.Convey("When both file and environment variables are set", func() {
			path := writeTempConfig(t, "readme_name: docs.md\nexpected_runs: 5\n")
			_ = os.Setenv("BENCHTABLE_CONFIG", path)
			_ = os.Setenv("BENCHTABLE_README_NAME", "env.md")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ReadmeName, convey.ShouldEqual, "env.md")
				convey.So(cfg.ExpectedRuns, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When loading config with invalid YAML", func() {
			clearConfigEnvVars()
			path := writeTempConfig(t, `invalid: yaml: content: [`)

			cfg, err := config.Load(ctx, config.WithFile(path))

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx, config.WithFile("/non/existent/file.yaml"))

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with zero expected runs", func() {
			_ = os.Setenv("BENCHTABLE_EXPECTED_RUNS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "expected_runs")
			})
		})
	})
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"BENCHTABLE_CONFIG",
		"BENCHTABLE_LOG_LEVEL",
		"BENCHTABLE_README_NAME",
		"BENCHTABLE_EXPECTED_RUNS",
	} {
		_ = os.Unsetenv(key)
	}
}

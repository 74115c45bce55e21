package config

import (
	"errors"
	"io"
	"testing"

	engineinput "stonecrawl/pkg/engine/input"
	"stonecrawl/pkg/game/generator"
	"stonecrawl/pkg/game/quest"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	if cfg.Backend != want.Backend || cfg.Scale != want.Scale || cfg.Seed != 0 || cfg.HasQuest {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.Generator != generator.DefaultGenerator {
		t.Errorf("Generator = %s, want %s", cfg.Generator.Name(), generator.DefaultGenerator.Name())
	}
}

func TestParse_Flags(t *testing.T) {
	args := []string{
		"-seed", "99", "-quest", "rescue", "-backend", "tui", "-scale", "2",
		"-audio=false", "-log-file", "game.log", "-generator", "straight",
	}
	cfg, err := Parse(args, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if !cfg.HasQuest || cfg.Quest != quest.Rescue {
		t.Errorf("Quest = %v (set %v), want rescue", cfg.Quest, cfg.HasQuest)
	}
	if cfg.Backend != BackendTUI || cfg.Scale != 2 || cfg.Audio || cfg.LogFile != "game.log" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Generator != generator.Straight {
		t.Errorf("Generator = %s, want straight", cfg.Generator.Name())
	}
}

func TestParse_Env(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		vars        map[string]string
		wantSeed    int64
		wantBackend string
	}{
		{"env only", nil, map[string]string{EnvSeed: "7", EnvBackend: "tui"}, 7, BackendTUI},
		{"flags win", []string{"-seed", "3", "-backend", "ebiten"}, map[string]string{EnvSeed: "7", EnvBackend: "tui"}, 3, BackendEbiten},
		{"explicit zero seed", []string{"-seed", "0"}, map[string]string{EnvSeed: "7"}, 0, BackendEbiten},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.args, env(tt.vars), io.Discard)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if cfg.Seed != tt.wantSeed || cfg.Backend != tt.wantBackend {
				t.Errorf("Seed, Backend = %d, %q, want %d, %q", cfg.Seed, cfg.Backend, tt.wantSeed, tt.wantBackend)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		vars map[string]string
		want error
	}{
		{"backend", []string{"-backend", "sdl"}, nil, ErrUnknownBackend},
		{"scale", []string{"-scale", "0"}, nil, ErrBadScale},
		{"quest", []string{"-quest", "dragon"}, nil, ErrUnknownQuest},
		{"generator", []string{"-generator", "bsp"}, nil, generator.ErrUnknownGenerator},
		{"seed env", nil, map[string]string{EnvSeed: "lots"}, ErrBadSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, env(tt.vars), io.Discard)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse_BadFlag(t *testing.T) {
	if _, err := Parse([]string{"-nope"}, env(nil), io.Discard); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestParse_Bind(t *testing.T) {
	cfg, err := Parse([]string{"-bind", "Move Forward=I", "-bind", "Attack=f"}, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		code string
		want engineinput.Action
		ok   bool
	}{
		{"i", engineinput.ActionMoveForward, true},
		{"w", engineinput.ActionNone, false},
		{"arrow_up", engineinput.ActionMoveForward, true},
		{"f", engineinput.ActionActivate, true},
		{"space", engineinput.ActionNone, false},
	}
	for _, tt := range tests {
		got, ok := cfg.Bindings[tt.code]
		if ok != tt.ok || got != tt.want {
			t.Errorf("Bindings[%q] = %v, %t, want %v, %t", tt.code, got, ok, tt.want, tt.ok)
		}
	}

	if _, ok := Default().Bindings["w"]; !ok {
		t.Error("rebinding leaked into the defaults")
	}
}

func TestBind_Errors(t *testing.T) {
	for _, v := range []string{"Move Forward", "Fly=x"} {
		if err := bind(engineinput.DefaultBindings(), v); !errors.Is(err, ErrBadBinding) {
			t.Errorf("bind(%q) error = %v, want %v", v, err, ErrBadBinding)
		}
	}
	if _, err := Parse([]string{"-bind", "Fly=x"}, env(nil), io.Discard); err == nil {
		t.Error("Parse accepted an unknown action")
	}
}

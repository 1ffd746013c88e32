package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	GameSpecFile    = "game.yaml"
	SymbolsSpecFile = "symbols.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec tunes the drivers around the simulation.
type GameSpec struct {
	Name        string      `yaml:"name"`
	Pack        string      `yaml:"pack"`
	MaxStep     float64     `yaml:"max_step"`
	MaxFrame    float64     `yaml:"max_frame"`
	FinishDelay float64     `yaml:"finish_delay"`
	PlayerSpeed float64     `yaml:"player_speed"`
	TileSize    int         `yaml:"tile_size"`
	CameraLerp  float64     `yaml:"camera_lerp"`
	Palette     PaletteSpec `yaml:"palette"`
}

type PaletteSpec struct {
	Background YAMLColor `yaml:"background"`
	Wall       YAMLColor `yaml:"wall"`
	Lava       YAMLColor `yaml:"lava"`
	Player     YAMLColor `yaml:"player"`
	Coin       YAMLColor `yaml:"coin"`
	Fireball   YAMLColor `yaml:"fireball"`
	Text       YAMLColor `yaml:"text"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameSpecFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", GameSpecFile, err)
	}
	return &spec, nil
}

func (s *GameSpec) applyDefaults() {
	if s.Name == "" {
		s.Name = "lavarun"
	}
	if s.MaxStep == 0 {
		s.MaxStep = 0.05
	}
	if s.MaxFrame == 0 {
		s.MaxFrame = 0.1
	}
	if s.FinishDelay == 0 {
		s.FinishDelay = 1
	}
	if s.PlayerSpeed == 0 {
		s.PlayerSpeed = 7
	}
	if s.TileSize == 0 {
		s.TileSize = 20
	}
	if s.CameraLerp == 0 {
		s.CameraLerp = 0.15
	}
	p := &s.Palette
	defaultColor(&p.Background, colornames.Midnightblue)
	defaultColor(&p.Wall, colornames.Slategray)
	defaultColor(&p.Lava, colornames.Orangered)
	defaultColor(&p.Player, colornames.Dodgerblue)
	defaultColor(&p.Coin, colornames.Gold)
	defaultColor(&p.Fireball, colornames.Tomato)
	defaultColor(&p.Text, colornames.White)
}

func defaultColor(c *YAMLColor, def color.Color) {
	if c.Color == nil {
		c.Color = def
	}
}

func (s *GameSpec) Validate() error {
	if s.MaxStep <= 0 {
		return fmt.Errorf("max_step must be positive, got %v", s.MaxStep)
	}
	if s.MaxFrame < s.MaxStep {
		return fmt.Errorf("max_frame must be at least max_step, got %v < %v", s.MaxFrame, s.MaxStep)
	}
	if s.FinishDelay < 0 {
		return fmt.Errorf("finish_delay must not be negative, got %v", s.FinishDelay)
	}
	if s.PlayerSpeed < 0 {
		return fmt.Errorf("player_speed must not be negative, got %v", s.PlayerSpeed)
	}
	if s.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", s.TileSize)
	}
	if s.CameraLerp < 0 || s.CameraLerp > 1 {
		return fmt.Errorf("camera_lerp must be within [0,1], got %v", s.CameraLerp)
	}
	return nil
}

// SymbolsSpec maps single-character plan symbols to actor kind names.
type SymbolsSpec struct {
	Symbols map[string]string `yaml:"symbols"`
}

func LoadSymbolsSpec() (*SymbolsSpec, error) {
	spec, err := LoadSpec[SymbolsSpec](SymbolsSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Runes returns the symbol table keyed by rune. Every key must be exactly
// one character.
func (s *SymbolsSpec) Runes() (map[rune]string, error) {
	out := make(map[rune]string, len(s.Symbols))
	for key, kind := range s.Symbols {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return nil, fmt.Errorf("prefabs: symbol %q must be a single character", key)
		}
		out[r] = kind
	}
	return out, nil
}

// YAMLColor accepts #rrggbb, #rrggbbaa or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

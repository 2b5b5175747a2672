package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
)

var (
	cfgFile = "termchess/config.json"
)

var validate = validator.New()

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	LightSquare  int `json:"light_square" validate:"min=0,max=255"`
	DarkSquare   int `json:"dark_square" validate:"min=0,max=255"`
	WhitePiece   int `json:"white_piece" validate:"min=0,max=255"`
	BlackPiece   int `json:"black_piece" validate:"min=0,max=255"`
	CursorBG     int `json:"cursor_bg" validate:"min=0,max=255"`
	SelectedBG   int `json:"selected_bg" validate:"min=0,max=255"`
	LegalMoveBG  int `json:"legal_move_bg" validate:"min=0,max=255"`
	CaptureBG    int `json:"capture_bg" validate:"min=0,max=255"`
	CoordinateFG int `json:"coordinate_fg" validate:"min=0,max=255"`
}

// PieceSymbols holds the glyph drawn for each piece kind of one side.
type PieceSymbols struct {
	Pawn   rune `json:"pawn"`
	Rook   rune `json:"rook"`
	Knight rune `json:"knight"`
	Bishop rune `json:"bishop"`
	Queen  rune `json:"queen"`
	King   rune `json:"king"`
}

func (s PieceSymbols) runes() []rune {
	return []rune{s.Pawn, s.Rook, s.Knight, s.Bishop, s.Queen, s.King}
}

type ConfigSymbols struct {
	White     PieceSymbols `json:"white"`
	Black     PieceSymbols `json:"black"`
	LegalMove rune         `json:"legal_move"`
}

type Theme struct {
	DrawMoveBackground bool          `json:"draw_move_bg"`
	DrawCoordinates    bool          `json:"draw_coordinates"`
	Colors             ConfigColors  `json:"colors"`
	Symbols            ConfigSymbols `json:"symbols"`
}

// GameConfig holds the defaults applied when a game starts.
type GameConfig struct {
	Orientation    string `json:"orientation" validate:"oneof=white black"`
	ShowLegalMoves bool   `json:"show_legal_moves"`
}

// LogConfig controls the debug log written under the XDG state directory.
type LogConfig struct {
	Level string `json:"level" validate:"oneof=debug info warn error disabled"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
	Log   LogConfig  `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return &InvalidConfig{strings.Join(msgs, "; ")}
		}
		return &InvalidConfig{err.Error()}
	}

	symbols := append(c.Theme.Symbols.White.runes(), c.Theme.Symbols.Black.runes()...)
	symbols = append(symbols, c.Theme.Symbols.LegalMove)
	for _, r := range symbols {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}

// Override applies command-line choices on top of the loaded file. Empty
// arguments keep the configured value. hints is "on" or "off".
func (c *Config) Override(orientation, hints string) error {
	if orientation != "" {
		c.Game.Orientation = orientation
	}
	switch hints {
	case "":
	case "on":
		c.Game.ShowLegalMoves = true
	case "off":
		c.Game.ShowLegalMoves = false
	default:
		return &InvalidConfig{fmt.Sprintf("hints must be on or off, got %q", hints)}
	}
	return c.Validate()
}

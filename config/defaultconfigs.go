package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawMoveBackground: true,
		DrawCoordinates:    true,
		Colors: ConfigColors{
			LightSquare:  255,
			DarkSquare:   244,
			WhitePiece:   231,
			BlackPiece:   16,
			CursorBG:     117,
			SelectedBG:   110,
			LegalMoveBG:  150,
			CaptureBG:    174,
			CoordinateFG: 245,
		},
		Symbols: ConfigSymbols{
			White: PieceSymbols{
				Pawn:   '♙',
				Rook:   '♖',
				Knight: '♘',
				Bishop: '♗',
				Queen:  '♕',
				King:   '♔',
			},
			Black: PieceSymbols{
				Pawn:   '♟',
				Rook:   '♜',
				Knight: '♞',
				Bishop: '♝',
				Queen:  '♛',
				King:   '♚',
			},
			LegalMove: '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			Orientation:    "white",
			ShowLegalMoves: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

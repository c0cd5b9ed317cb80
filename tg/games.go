package tg

// Game represents a game. Photo sizes keep the order Telegram sends them in.
type Game struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Photo        []PhotoSize     `json:"photo"`
	Text         *string         `json:"text,omitempty"`
	TextEntities []MessageEntity `json:"text_entities,omitempty"`
	Animation    *Animation      `json:"animation,omitempty"`
}

// LargestPhoto returns the last, and largest, photo size.
func (g *Game) LargestPhoto() (PhotoSize, bool) {
	if len(g.Photo) == 0 {
		return PhotoSize{}, false
	}
	return g.Photo[len(g.Photo)-1], true
}

// GameHighScore represents one row of the high scores table.
type GameHighScore struct {
	Position int  `json:"position"`
	User     User `json:"user"`
	Score    int  `json:"score"`
}

// CallbackGame is a placeholder for the "callback_game" button.
// When pressed, Telegram opens the game.
type CallbackGame struct{}

package game

import "fmt"

// ScoreLabel is the text of the score display.
func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// GameOverLabel is the text of the game-over display. It is empty while
// the game is running.
func GameOverLabel(over bool, score int) string {
	if !over {
		return ""
	}
	return fmt.Sprintf("Game Over! Score: %d", score)
}

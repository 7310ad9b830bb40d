package game

import (
	"fmt"
	"strings"
)

// ShownRounds is how many finished rounds the GameOver screen lists.
const ShownRounds = 5

// GameOverLines describes the finished round: score against the session
// best, what was hit, and the latest round scores with their causes.
func (g *Game) GameOverLines() []string {
	lines := []string{
		fmt.Sprintf("Score: %d  Best: %d", g.Score, g.stateMgr.GetHighScore()),
		fmt.Sprintf("Hit the %v", g.Cause),
	}
	recent := g.stateMgr.RecentRounds(ShownRounds)
	if len(recent) == 0 {
		return lines
	}
	parts := make([]string, len(recent))
	for i, r := range recent {
		parts[i] = fmt.Sprintf("%d (%v)", r.Score, r.Cause)
	}
	return append(lines, "Last rounds: "+strings.Join(parts, ", "))
}

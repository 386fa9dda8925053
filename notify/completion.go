// Package notify delivers the one-time completion notification to every
// registered scope of the embedding environment
package notify

import (
	"encoding/json"

	"github.com/lixenwraith/mini-fps/constants"
)

// Completion is the message sent once when the score goal is reached
type Completion struct {
	Type      string `json:"type"`
	BlockID   string `json:"blockId"`
	Completed bool   `json:"completed"`
	Score     int    `json:"score"`
	MaxScore  int    `json:"maxScore"`
}

// NewCompletion builds a completion message for the given block
func NewCompletion(blockID string, score, maxScore int) Completion {
	return Completion{
		Type:      constants.CompletionMessageType,
		BlockID:   blockID,
		Completed: true,
		Score:     score,
		MaxScore:  maxScore,
	}
}

// Encode returns the wire form of the message
func (c Completion) Encode() ([]byte, error) {
	return json.Marshal(c)
}

package pkg

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const maxGameID = 99999999

// GenerateGameID - generates an identifier for a game session.
func GenerateGameID() (string, error) {
	return generateGameID(rand.Reader)
}

func generateGameID(source io.Reader) (string, error) {
	n, err := rand.Int(source, big.NewInt(maxGameID))
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return n.String(), nil
}

package domain

import (
	"fmt"
	"strings"
)

type Quote struct {
	Text   string
	Author string
}

// Fallback is served when no quote file can be loaded.
var Fallback = Quote{Text: "Keep pushing!", Author: "Unknown"}

func (q Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("quote text is required")
	}
	return nil
}

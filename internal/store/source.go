package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmvnavigator/dmvnav/internal/bank"
)

// LoadBank resolves a question bank from path:
//  1. "" loads the embedded bank
//  2. *.json is parsed and schema-validated
//  3. anything else is opened as a SQLite database
func LoadBank(ctx context.Context, path string) (*bank.Bank, error) {
	if path == "" {
		return bank.Load()
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read bank: %w", err)
		}
		return bank.Parse(raw)
	}

	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Bank(ctx)
}

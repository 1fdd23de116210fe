// Package fixtures provides the seed snapshot the in-memory store starts from.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/chris/upi-wallet/pkg/models"
)

//go:embed data/*.json
var embedded embed.FS

// Snapshot is the complete seed state of the wallet.
type Snapshot struct {
	Account      models.Account
	Transactions []models.Transaction
	Bills        []models.Bill
	Contacts     []models.Contact
}

// Load reads the seed snapshot from dir, or from the embedded fixtures when dir is empty.
// dir must contain account.json, transactions.json, bills.json and contacts.json.
func Load(dir string) (*Snapshot, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded fixtures: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}

	var snap Snapshot
	files := []struct {
		name string
		dest any
	}{
		{"account.json", &snap.Account},
		{"transactions.json", &snap.Transactions},
		{"bills.json", &snap.Bills},
		{"contacts.json", &snap.Contacts},
	}
	for _, f := range files {
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture %s: %w", f.name, err)
		}
		if err := json.Unmarshal(data, f.dest); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fixture %s: %w", f.name, err)
		}
	}
	return &snap, nil
}

// MustLoad is Load for the embedded fixtures, panicking on error. Intended for tests.
func MustLoad() *Snapshot {
	snap, err := Load("")
	if err != nil {
		panic(err)
	}
	return snap
}

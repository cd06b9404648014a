package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"famtree/internal/domain"
)

const BackupVersion = "1"

type Backup struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	domain.FamilyNetwork
}

// WriteJSON writes n as an indented backup document.
func WriteJSON(w io.Writer, n domain.FamilyNetwork, at time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Backup{Version: BackupVersion, ExportedAt: at.UTC(), FamilyNetwork: n}); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

func ReadJSON(r io.Reader) (*Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	if b.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version %q", b.Version)
	}
	if b.Members == nil {
		b.Members = []domain.Member{}
	}
	if b.Marriages == nil {
		b.Marriages = []domain.Marriage{}
	}
	if b.ParentChild == nil {
		b.ParentChild = []domain.ParentChild{}
	}
	return &b, nil
}

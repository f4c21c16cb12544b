package domain

import "errors"

// ErrDuplicateSnapshotID indica dois snapshots com o mesmo ID: corrupção do armazenamento
var ErrDuplicateSnapshotID = errors.New("duplicate snapshot id")

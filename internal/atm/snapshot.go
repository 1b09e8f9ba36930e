package atm

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/geomarket-ma/atmboard/internal/model"
)

// LoadSnapshot reads the raw snapshot file and returns its records. The
// snapshot is best-effort input: a missing file, invalid JSON, or a
// non-array top level all degrade to an empty dataset rather than an
// error. Array elements that cannot decode into the raw shape are skipped
// individually.
func LoadSnapshot(path string) []model.RawATM {
	log := zap.L().With(zap.String("component", "atm.snapshot"))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("no local snapshot file, fallback dataset will be empty",
				zap.String("path", path),
			)
		} else {
			log.Error("failed to read local snapshot",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return []model.RawATM{}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		log.Warn("local snapshot is not a JSON array, treating as empty",
			zap.String("path", path),
			zap.Error(err),
		)
		return []model.RawATM{}
	}

	records := make([]model.RawATM, 0, len(elements))
	for i, el := range elements {
		var raw model.RawATM
		if err := json.Unmarshal(el, &raw); err != nil {
			log.Debug("skipping undecodable snapshot record",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		records = append(records, raw)
	}

	log.Info("loaded local snapshot",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return records
}

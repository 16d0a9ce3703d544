package importsync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// ReadFactoryDir loads every *.json file under dir, in file-name order so a
// run over the same directory always processes factories in the same
// sequence. A file that is not valid JSON is logged and skipped.
func ReadFactoryDir(dir string, logger *zap.Logger) ([]FactoryDoc, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list factory dir %s: %w", dir, err)
	}
	sort.Strings(matches)

	docs := make([]FactoryDoc, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read factory file %s: %w", path, err)
		}
		var doc FactoryDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			logger.Warn("factory file is not valid JSON, skipping",
				zap.String("file", filepath.Base(path)), zap.Error(err))
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

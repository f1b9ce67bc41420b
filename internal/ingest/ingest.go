// Package ingest reads the master file. The file is the single input of a
// batch run: header-mapped CSV, one pass request per line, read once and
// never written back.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cardoffice/guestpass/internal/domain"
	"github.com/cardoffice/guestpass/internal/pkg/logger"
)

// ErrMissingColumn indicates the master file header lacks a required column.
var ErrMissingColumn = errors.New("required column missing")

var requiredColumns = []string{
	"PASS #", "FIRST_NAME", "EMAIL", "DEPARTMENT",
	"GENERATE", "VEHICLE_COUNT", "START", "END",
}

// ReadMaster loads all pass requests from the CSV at path. Malformed lines
// are skipped with a warning; a file that cannot be opened or has no usable
// header is the one batch-fatal condition.
func ReadMaster(path string) ([]domain.PassRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open master file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read master file header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var rows []domain.PassRequest
	line := 1
	for {
		rec, err := r.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("skipping malformed line", "line", line, "error", err)
			continue
		}

		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		rows = append(rows, domain.PassRequest{
			PassNumber:    get("PASS #"),
			FirstName:     get("FIRST_NAME"),
			Email:         get("EMAIL"),
			Department:    get("DEPARTMENT"),
			Generate:      parseTruthy(get("GENERATE")),
			VehicleCount:  parseCount(get("VEHICLE_COUNT")),
			StartRaw:      get("START"),
			EndRaw:        get("END"),
			AdditionalLot: get("ADD LOT"),
			Event:         get("EVENT"),
			AccessCode:    get("PARKMOBILE"),
		})
	}

	logger.Info("master file loaded", "path", path, "rows", len(rows))
	return rows, nil
}

func parseTruthy(s string) bool {
	switch strings.ToUpper(s) {
	case "TRUE", "T", "YES", "Y", "1":
		return true
	}
	return false
}

// parseCount coerces the vehicle count; non-numeric or negative becomes 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

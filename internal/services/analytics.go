package services

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"retail-dashboard/internal/engine"
	"retail-dashboard/internal/models"
)

const (
	batchSize    = 10000
	maxWorkers   = 10
	cacheVersion = "v1"
	cacheDir     = ".cache"
)

// Analytics owns the parsed transaction table and recomputes the
// dashboard model fresh on every request. The table itself is the only
// shared state; nothing filter- or aggregation-dependent is ever cached
// across requests.
type Analytics struct {
	mu               sync.RWMutex
	records          []models.TransactionRecord
	csvPath          string
	scale            float64
	recordsProcessed atomic.Int64
	rowsDropped      atomic.Int64
	loadedAt         time.Time
	logger           *slog.Logger
}

// NewAnalytics creates an empty store. scale is the uniform multiplier
// applied to monetary and quantity aggregates; values <= 0 mean 1.
func NewAnalytics(scale float64) *Analytics {
	if scale <= 0 {
		scale = 1
	}
	return &Analytics{
		scale:  scale,
		logger: slog.Default(),
	}
}

// SetData replaces the record table directly, bypassing the CSV path.
func (a *Analytics) SetData(records []models.TransactionRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = records
	a.loadedAt = time.Now()
	a.recordsProcessed.Store(int64(len(records)))
}

// snapshot returns the current record slice. Records are never mutated
// after load, so sharing the backing array across requests is safe.
func (a *Analytics) snapshot() []models.TransactionRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.records
}

// Dashboard recomputes the full dashboard model for one request.
func (a *Analytics) Dashboard(scope string, spec engine.FilterSpec) models.DashboardModel {
	return engine.BuildDashboard(a.snapshot(), scope, spec, a.scale)
}

// FilterOptions recomputes the cascading option catalogue alone.
func (a *Analytics) FilterOptions(scope string, spec engine.FilterSpec) models.FilterOptions {
	return engine.ResolveFilterOptions(a.snapshot(), scope, spec)
}

// LoadFromCSV reads, checksums and parses the source file. A cache of
// the parsed table keyed by content checksum skips re-parsing when the
// source is unchanged; only the parsed rows are cached, never derived
// results. On a read error the table stays empty and the error is
// returned for the caller to log; downstream aggregates degrade to
// their zero values rather than failing requests.
func (a *Analytics) LoadFromCSV(ctx context.Context, filename string) error {
	a.csvPath = filename

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	if cached, err := a.loadFromCache(filename); err == nil && cached.Checksum == checksum {
		a.SetData(cached.Records)
		a.logger.Info("loaded parsed records from cache", "records", len(cached.Records))
		return nil
	}

	start := time.Now()
	a.logger.Info("parsing sales file", "filename", filename)

	records, dropped, err := a.parseAll(ctx, data)
	if err != nil {
		return fmt.Errorf("parse source: %w", err)
	}

	a.SetData(records)
	a.rowsDropped.Store(dropped)

	if err := a.saveToCache(filename, checksum, records); err != nil {
		a.logger.Warn("failed to save parse cache", "error", err)
	}

	duration := time.Since(start)
	a.logger.Info("sales file parsed",
		"records", len(records),
		"dropped_rows", dropped,
		"duration", duration,
	)
	if dropped > 0 {
		a.logger.Debug("short rows dropped", "count", dropped)
	}
	return nil
}

// parseAll streams the file line by line and parses batches on a
// bounded worker pool. Row order is preserved. Rows with fewer columns
// than the header are dropped, not errors.
func (a *Analytics) parseAll(ctx context.Context, data []byte) ([]models.TransactionRecord, int64, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024)

	if !scanner.Scan() {
		a.logger.Warn("source file is empty")
		return nil, 0, nil
	}
	header, err := parseFields(scanner.Text())
	if err != nil {
		return nil, 0, fmt.Errorf("parse header: %w", err)
	}
	headerLen := len(header)

	var (
		records []models.TransactionRecord
		dropped int64
	)
	batch := make([]string, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		parsed, skipped, err := parseBatch(ctx, batch, headerLen)
		if err != nil {
			return err
		}
		records = append(records, parsed...)
		dropped += skipped
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, dropped, ctx.Err()
		default:
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		batch = append(batch, line)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return nil, dropped, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, dropped, fmt.Errorf("scan source: %w", err)
	}
	if err := flush(); err != nil {
		return nil, dropped, err
	}

	return records, dropped, nil
}

// parseBatch fans the batch out over maxWorkers goroutines. Each line
// lands at its own index so the source order survives the concurrency.
func parseBatch(ctx context.Context, batch []string, headerLen int) ([]models.TransactionRecord, int64, error) {
	parsed := make([]models.TransactionRecord, len(batch))
	valid := make([]bool, len(batch))

	var wg errgroup.Group
	wg.SetLimit(maxWorkers)
	for i, line := range batch {
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fields, err := parseFields(line)
			if err != nil || len(fields) < headerLen {
				return nil // short or malformed rows are dropped, not errors
			}
			parsed[i] = recordFromFields(fields)
			valid[i] = true
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, 0, err
	}

	out := make([]models.TransactionRecord, 0, len(batch))
	var dropped int64
	for i, ok := range valid {
		if !ok {
			dropped++
			continue
		}
		out = append(out, parsed[i])
	}
	return out, dropped, nil
}

// Cache of the parsed table, keyed by source content checksum.
type parsedCache struct {
	Checksum string
	Records  []models.TransactionRecord
}

func cacheFilename(csvPath string) string {
	return fmt.Sprintf("%s/%s_%s.gob", cacheDir, strings.ReplaceAll(csvPath, "/", "_"), cacheVersion)
}

func (a *Analytics) saveToCache(csvPath, checksum string, records []models.TransactionRecord) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}
	file, err := os.Create(cacheFilename(csvPath))
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(parsedCache{Checksum: checksum, Records: records})
}

func (a *Analytics) loadFromCache(csvPath string) (*parsedCache, error) {
	file, err := os.Open(cacheFilename(csvPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cache parsedCache
	if err := gob.NewDecoder(file).Decode(&cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

// Stats reports store counters for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return map[string]any{
		"record_count": a.recordsProcessed.Load(),
		"dropped_rows": a.rowsDropped.Load(),
		"loaded_at":    a.loadedAt,
		"source":       a.csvPath,
		"scale":        a.scale,
	}
}

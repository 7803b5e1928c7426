package fixture

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

//go:embed seed.yaml
var seedYAML []byte

var ErrUnsupportedFormat = errors.New("unsupported fixture format")

// Seed returns the built-in dataset.
func Seed() (entity.Dataset, error) {
	return ParseYAML(seedYAML)
}

// Load reads a fixture file. YAML (.yaml, .yml) and JSON with comments
// (.json, .jsonc) are accepted. An empty path returns the built-in seed.
func Load(path string) (entity.Dataset, error) {
	if path == "" {
		return Seed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("reading fixture %s: %w", path, err)
	}

	var ds entity.Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		ds, err = ParseYAML(data)
	case ".json", ".jsonc":
		ds, err = ParseJSONC(data)
	default:
		return entity.Dataset{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// ParseYAML decodes and validates a YAML fixture document.
func ParseYAML(data []byte) (entity.Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return entity.Dataset{}, fmt.Errorf("parsing fixture yaml: %w", err)
	}

	return finish(doc)
}

// ParseJSONC strips comments and trailing commas, then decodes and validates
// the JSON fixture document.
func ParseJSONC(data []byte) (entity.Dataset, error) {
	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return entity.Dataset{}, fmt.Errorf("parsing fixture json: %w", err)
	}

	return finish(doc)
}

func finish(doc document) (entity.Dataset, error) {
	ds := doc.dataset()
	if err := Validate(ds); err != nil {
		return entity.Dataset{}, err
	}
	return ds, nil
}

// Validate checks the invariants the dashboard relies on.
func Validate(ds entity.Dataset) error {
	var errs []error

	if len(ds.Transactions) > entity.MaxLiveTransactions {
		errs = append(errs, fmt.Errorf("transactions: %d entries exceed the limit of %d", len(ds.Transactions), entity.MaxLiveTransactions))
	}

	seen := make(map[string]struct{}, len(ds.Transactions))
	for i, tx := range ds.Transactions {
		if tx.ID == "" {
			errs = append(errs, fmt.Errorf("transactions[%d]: missing id", i))
			continue
		}
		if _, dup := seen[tx.ID]; dup {
			errs = append(errs, fmt.Errorf("transactions[%d]: duplicate id %q", i, tx.ID))
		}
		seen[tx.ID] = struct{}{}

		switch tx.Status {
		case entity.TxStatusSuccess, entity.TxStatusFailed, entity.TxStatusPending:
		default:
			errs = append(errs, fmt.Errorf("transactions[%d]: invalid status %q", i, tx.Status))
		}
	}

	for i, t := range ds.Tickets {
		switch t.Status {
		case entity.TicketStatusOpen, entity.TicketStatusInProgress, entity.TicketStatusResolved:
		default:
			errs = append(errs, fmt.Errorf("supportTickets[%d]: invalid status %q", i, t.Status))
		}
		switch t.Priority {
		case entity.TicketPriorityLow, entity.TicketPriorityMedium, entity.TicketPriorityHigh:
		default:
			errs = append(errs, fmt.Errorf("supportTickets[%d]: invalid priority %q", i, t.Priority))
		}
	}

	for i, svc := range ds.Metrics.Services {
		switch svc.Status {
		case entity.HealthHealthy, entity.HealthDegraded, entity.HealthDown:
		default:
			errs = append(errs, fmt.Errorf("systemMetrics.apiStatus[%d]: invalid status %q", i, svc.Status))
		}
	}

	for i, ep := range ds.Endpoints {
		switch ep.Status {
		case entity.EndpointActive, entity.EndpointMaintenance:
		default:
			errs = append(errs, fmt.Errorf("apiEndpoints[%d]: invalid status %q", i, ep.Status))
		}
	}

	return errors.Join(errs...)
}

// Package store persists the ledger document as a single JSON file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finance-ledger/internal/config"
	"fjacquet/finance-ledger/internal/ledgererror"
	"fjacquet/finance-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LedgerStore loads and saves the ledger document. Load never fails: a
// missing or unreadable file yields a fresh default document, favoring
// availability over erroring out on corrupt data.
type LedgerStore struct {
	// File is the path of the backing JSON document.
	File string
	// CategoriesFile optionally points to a YAML file seeding the category
	// registry of fresh documents. When empty or absent the built-in
	// default set is used.
	CategoriesFile string
}

// NewLedgerStore creates a store for the given ledger file path.
func NewLedgerStore(file string) *LedgerStore {
	return &LedgerStore{File: file}
}

// Load reads the ledger document from disk. It returns a default document
// when the file does not exist, cannot be read, or does not parse as a
// ledger document. Loaded transactions missing a kind are migrated: negative
// amounts become expenses, the rest income.
func (s *LedgerStore) Load() *models.LedgerDocument {
	data, err := os.ReadFile(s.File)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warnf("Could not read ledger file %s, starting fresh", s.File)
		}
		return s.defaultDocument()
	}

	// The transactions key is the marker of a well-formed document; anything
	// else is treated as corrupt.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.WithError(err).Warnf("Malformed ledger file %s, starting fresh", s.File)
		return s.defaultDocument()
	}
	if _, ok := raw["transacoes"]; !ok {
		log.Warnf("Ledger file %s has no transactions key, starting fresh", s.File)
		return s.defaultDocument()
	}

	var doc models.LedgerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.WithError(err).Warnf("Malformed ledger file %s, starting fresh", s.File)
		return s.defaultDocument()
	}

	migrateKinds(&doc)
	normalize(&doc, s.seedCategories)

	log.WithFields(logrus.Fields{
		"file":         s.File,
		"transactions": len(doc.Transactions),
	}).Debug("Loaded ledger document")
	return &doc
}

// Save serializes the full document back to the ledger file, overwriting it.
// The document is written to a temporary file first and renamed into place so
// a crash mid-write cannot truncate the previous snapshot.
func (s *LedgerStore) Save(doc *models.LedgerDocument) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return &ledgererror.StoreError{Op: "encode", Path: s.File, Err: err}
	}

	dir := filepath.Dir(s.File)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &ledgererror.StoreError{Op: "write", Path: s.File, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.File)+".tmp-*")
	if err != nil {
		return &ledgererror.StoreError{Op: "write", Path: s.File, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &ledgererror.StoreError{Op: "write", Path: s.File, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &ledgererror.StoreError{Op: "write", Path: s.File, Err: err}
	}
	if err := os.Rename(tmpName, s.File); err != nil {
		_ = os.Remove(tmpName)
		return &ledgererror.StoreError{Op: "write", Path: s.File, Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":         s.File,
		"transactions": len(doc.Transactions),
	}).Debug("Saved ledger document")
	return nil
}

// defaultDocument builds a fresh document, seeding categories from the
// configured YAML file when one is available.
func (s *LedgerStore) defaultDocument() *models.LedgerDocument {
	return models.NewLedgerDocument(s.seedCategories()...)
}

// seedCategories loads category names from the configured YAML seed file.
// A missing or unreadable file yields the built-in defaults, not an error.
func (s *LedgerStore) seedCategories() []string {
	if s.CategoriesFile == "" {
		return nil
	}

	data, err := os.ReadFile(s.CategoriesFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warnf("Could not read categories file %s, using defaults", s.CategoriesFile)
		}
		return nil
	}

	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		log.WithError(err).Warnf("Malformed categories file %s, using defaults", s.CategoriesFile)
		return nil
	}
	if len(names) == 0 {
		return nil
	}

	log.Debugf("Loaded %d categories from %s", len(names), s.CategoriesFile)
	return names
}

// migrateKinds assigns a kind to legacy transactions that lack one: negative
// amounts are expenses, everything else income. Present kinds are never
// overridden.
func migrateKinds(doc *models.LedgerDocument) {
	migrated := 0
	for i := range doc.Transactions {
		if doc.Transactions[i].Kind != "" {
			continue
		}
		if doc.Transactions[i].Amount.IsNegative() {
			doc.Transactions[i].Kind = models.KindExpense
		} else {
			doc.Transactions[i].Kind = models.KindIncome
		}
		migrated++
	}
	if migrated > 0 {
		log.Infof("Migrated %d transactions without a kind", migrated)
	}
}

// normalize fills in sections a hand-edited or partial document may lack so
// the rest of the application can rely on non-nil maps and slices.
func normalize(doc *models.LedgerDocument, seed func() []string) {
	if doc.Transactions == nil {
		doc.Transactions = []models.Transaction{}
	}
	if doc.Categories == nil {
		doc.Categories = map[string]decimal.Decimal{}
		names := seed()
		if len(names) == 0 {
			names = models.DefaultCategoryNames
		}
		for _, name := range names {
			doc.Categories[name] = decimal.Zero
		}
	}
	if doc.Goals == nil {
		doc.Goals = map[string]decimal.Decimal{}
	}
}

// String implements fmt.Stringer for diagnostics.
func (s *LedgerStore) String() string {
	return fmt.Sprintf("LedgerStore(%s)", s.File)
}

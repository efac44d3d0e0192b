package rebalance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a Snapshot in a human-readable file: JSON by default,
// YAML when the file extension is .yaml or .yml.
// Fields missing from the file keep their default value, and holdings without
// an id get a fresh one.

// jholding is the holding object read from and written to files.
type jholding struct {
	ID       string          `json:"id" yaml:"id"`
	Ticker   string          `json:"ticker" yaml:"ticker"`
	Name     string          `json:"name" yaml:"name"`
	Category Category        `json:"category" yaml:"category"`
	Quantity decimal.Decimal `json:"quantity" yaml:"quantity"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
	Target   Percent         `json:"target" yaml:"target"`
}

// jconfig is the configuration object read from and written to files.
// Amounts are in the reporting currency.
type jconfig struct {
	Currency             string          `json:"currency" yaml:"currency"`
	ForeignCurrency      string          `json:"foreignCurrency" yaml:"foreignCurrency"`
	ExchangeRate         decimal.Decimal `json:"exchangeRate" yaml:"exchangeRate"`
	MonthlyContribution  decimal.Decimal `json:"monthlyContribution" yaml:"monthlyContribution"`
	FixedIncomeValue     decimal.Decimal `json:"fixedIncomeValue" yaml:"fixedIncomeValue"`
	FixedIncomeTarget    Percent         `json:"fixedIncomeTarget" yaml:"fixedIncomeTarget"`
	VariableIncomeTarget Percent         `json:"variableIncomeTarget" yaml:"variableIncomeTarget"`
	CategoryTargets      CategoryTargets `json:"categoryTargets" yaml:"categoryTargets"`
}

type jsnapshot struct {
	Config   jconfig    `json:"config" yaml:"config"`
	Holdings []jholding `json:"holdings" yaml:"holdings"`
}

func toJSnapshot(s Snapshot) jsnapshot {
	c := s.Config
	js := jsnapshot{
		Config: jconfig{
			Currency:             c.Currency,
			ForeignCurrency:      c.ForeignCurrency,
			ExchangeRate:         c.ExchangeRate,
			MonthlyContribution:  c.MonthlyContribution.Decimal(),
			FixedIncomeValue:     c.FixedIncomeValue.Decimal(),
			FixedIncomeTarget:    c.FixedIncomeTarget,
			VariableIncomeTarget: c.VariableIncomeTarget,
			CategoryTargets:      c.CategoryTargets,
		},
		Holdings: make([]jholding, 0, len(s.Holdings)),
	}
	for _, h := range s.Holdings {
		js.Holdings = append(js.Holdings, jholding{
			ID:       h.ID,
			Ticker:   h.Ticker,
			Name:     h.Name,
			Category: h.Category,
			Quantity: h.Quantity.Decimal(),
			Price:    h.Price,
			Target:   h.Target,
		})
	}
	return js
}

func (js jsnapshot) snapshot() Snapshot {
	jc := js.Config
	s := Snapshot{
		Config: Config{
			Currency:             jc.Currency,
			ForeignCurrency:      jc.ForeignCurrency,
			ExchangeRate:         jc.ExchangeRate,
			MonthlyContribution:  M(jc.MonthlyContribution, jc.Currency),
			FixedIncomeValue:     M(jc.FixedIncomeValue, jc.Currency),
			FixedIncomeTarget:    jc.FixedIncomeTarget,
			VariableIncomeTarget: jc.VariableIncomeTarget,
			CategoryTargets:      jc.CategoryTargets,
		},
		Holdings: make([]Holding, 0, len(js.Holdings)),
	}
	for _, jh := range js.Holdings {
		id := jh.ID
		if id == "" {
			id = uuid.NewString()
		}
		s.Holdings = append(s.Holdings, newHolding(id, HoldingSpec{
			Ticker:   jh.Ticker,
			Name:     jh.Name,
			Category: jh.Category,
			Quantity: Q(jh.Quantity),
			Price:    jh.Price,
			Target:   jh.Target,
		}))
	}
	return s
}

// EncodeSnapshot writes s as indented JSON.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSnapshot(s)); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a JSON snapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	js := toJSnapshot(EmptySnapshot())
	if err := json.NewDecoder(r).Decode(&js); err != nil {
		return Snapshot{}, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	return js.snapshot(), nil
}

// EncodeSnapshotYAML writes s as YAML.
func EncodeSnapshotYAML(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toJSnapshot(s)); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return enc.Close()
}

// DecodeSnapshotYAML reads a YAML snapshot.
func DecodeSnapshotYAML(r io.Reader) (Snapshot, error) {
	js := toJSnapshot(EmptySnapshot())
	if err := yaml.NewDecoder(r).Decode(&js); err != nil {
		return Snapshot{}, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	return js.snapshot(), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadSnapshot reads a snapshot file. Errors wrap fs.ErrNotExist when the file
// does not exist.
func LoadSnapshot(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot open %q for reading: %w", path, err)
	}
	defer f.Close()

	var s Snapshot
	if isYAML(path) {
		s, err = DecodeSnapshotYAML(f)
	} else {
		s, err = DecodeSnapshot(f)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("format error in %q: %w", path, err)
	}
	return s, nil
}

// SaveSnapshot writes s to path, replacing any previous content.
func SaveSnapshot(path string, s Snapshot) error {
	var buf bytes.Buffer
	var err error
	if isYAML(path) {
		err = EncodeSnapshotYAML(&buf, s)
	} else {
		err = EncodeSnapshot(&buf, s)
	}
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}

package rebalance

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

func sameSnapshot(t *testing.T, got, want Snapshot) {
	t.Helper()
	if got.Config.Currency != want.Config.Currency || got.Config.ForeignCurrency != want.Config.ForeignCurrency {
		t.Errorf("currencies = %s/%s, want %s/%s", got.Config.Currency, got.Config.ForeignCurrency, want.Config.Currency, want.Config.ForeignCurrency)
	}
	if !got.Config.ExchangeRate.Equal(want.Config.ExchangeRate) {
		t.Errorf("ExchangeRate = %v, want %v", got.Config.ExchangeRate, want.Config.ExchangeRate)
	}
	if !got.Config.FixedIncomeValue.Equal(want.Config.FixedIncomeValue) || !got.Config.MonthlyContribution.Equal(want.Config.MonthlyContribution) {
		t.Errorf("amounts = %v/%v, want %v/%v", got.Config.FixedIncomeValue, got.Config.MonthlyContribution, want.Config.FixedIncomeValue, want.Config.MonthlyContribution)
	}
	if got.Config.CategoryTargets != want.Config.CategoryTargets {
		t.Errorf("CategoryTargets = %v, want %v", got.Config.CategoryTargets, want.Config.CategoryTargets)
	}
	if len(got.Holdings) != len(want.Holdings) {
		t.Fatalf("len(Holdings) = %d, want %d", len(got.Holdings), len(want.Holdings))
	}
	for i, w := range want.Holdings {
		g := got.Holdings[i]
		if g.ID != w.ID || g.Ticker != w.Ticker || g.Name != w.Name || g.Category != w.Category ||
			!g.Quantity.Equal(w.Quantity) || !g.Price.Equal(w.Price) || g.Target != w.Target {
			t.Errorf("Holdings[%d] = %+v, want %+v", i, g, w)
		}
	}
}

func TestSnapshot_JSON(t *testing.T) {
	want := DemoSnapshot()
	want.Holdings = append(want.Holdings, holding("5", "VOO", ForeignEquity, 1.5, "512.37", 100))

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, want); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"exchangeRate": 4.93`) {
		t.Errorf("decimals should be written without quotes:\n%s", buf.String())
	}
	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	sameSnapshot(t, got, want)
}

func TestSnapshot_YAML(t *testing.T) {
	want := DemoSnapshot()
	want.Config.CategoryTargets = CategoryTargets{40, 30, 20, 10}

	var buf bytes.Buffer
	if err := EncodeSnapshotYAML(&buf, want); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSnapshotYAML(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshotYAML() error = %v\n%s", err, buf.String())
	}
	sameSnapshot(t, got, want)
}

func TestDecodeSnapshot_Defaults(t *testing.T) {
	in := `{"holdings":[{"ticker":"aesb3","name":"Aes","category":"acoes","quantity":450,"price":14.11,"target":33}]}`
	got, err := DecodeSnapshot(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if !got.Config.ExchangeRate.Equal(def.ExchangeRate) || got.Config.Currency != "BRL" {
		t.Errorf("missing config should keep defaults, got %+v", got.Config)
	}
	if len(got.Holdings) != 1 {
		t.Fatalf("len(Holdings) = %d, want 1", len(got.Holdings))
	}
	h := got.Holdings[0]
	if h.ID == "" || h.Ticker != "AESB3" || h.Category != DomesticEquity {
		t.Errorf("holding = %+v, want an id, AESB3, domestic-equity", h)
	}
}

func TestDecodeSnapshot_PartialCategoryTargets(t *testing.T) {
	want := CategoryTargets{60, 40, 10, 0}

	got, err := DecodeSnapshot(strings.NewReader(`{"config":{"categoryTargets":{"foreign-equity":10}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Config.CategoryTargets != want {
		t.Errorf("CategoryTargets = %v, want %v", got.Config.CategoryTargets, want)
	}

	got, err = DecodeSnapshotYAML(strings.NewReader("config:\n  categoryTargets:\n    foreign-equity: 10\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Config.CategoryTargets != want {
		t.Errorf("YAML CategoryTargets = %v, want %v", got.Config.CategoryTargets, want)
	}
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	for _, in := range []string{
		`{"holdings":[{"category":"bonds"}]}`,
		`{"config":{"exchangeRate":"abc"}}`,
		`not json`,
	} {
		if _, err := DecodeSnapshot(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeSnapshot(%s) should fail", in)
		}
	}
}

func TestLoadSaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"portfolio.json", "portfolio.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			want := DemoSnapshot()
			if err := SaveSnapshot(path, want); err != nil {
				t.Fatal(err)
			}
			got, err := LoadSnapshot(path)
			if err != nil {
				t.Fatal(err)
			}
			sameSnapshot(t, got, want)
		})
	}

	_, err := LoadSnapshot(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSnapshot(missing) error = %v, want fs.ErrNotExist", err)
	}
}

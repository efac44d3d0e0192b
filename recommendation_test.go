package rebalance

import "testing"

func TestRecommend_SingleHolding(t *testing.T) {
	// one holding worth 6349.50 in a 100,000 portfolio.
	cfg := testConfig(93650.5)
	snap := Snapshot{
		Config:   cfg,
		Holdings: []Holding{holding("1", "AESB3", DomesticEquity, 450, "14.11", 33)},
	}

	recs := Recommend(snap)
	if len(recs) != 1 {
		t.Fatalf("len(Recommend()) = %d, want 1", len(recs))
	}
	r := recs[0]
	if !r.CurrentValue.Equal(BRL(6349.5)) {
		t.Errorf("CurrentValue = %v, want %v", r.CurrentValue, BRL(6349.5))
	}
	if !r.TargetValue.Equal(BRL(14850)) {
		t.Errorf("TargetValue = %v, want %v", r.TargetValue, BRL(14850))
	}
	if !r.Difference.Equal(BRL(8500.5)) {
		t.Errorf("Difference = %v, want %v", r.Difference, BRL(8500.5))
	}
	if r.Priority != High {
		t.Errorf("Priority = %v, want %v", r.Priority, High)
	}
	if r.Ticker != "AESB3" || r.Category != DomesticEquity || r.HoldingID != "1" {
		t.Errorf("identity = %q %v %q, want AESB3 domestic-equity 1", r.Ticker, r.Category, r.HoldingID)
	}

	best, ok := BestBuy(recs)
	if !ok || best.Ticker != "AESB3" {
		t.Errorf("BestBuy() = %v, %v, want AESB3, true", best.Ticker, ok)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		gap, target float64
		want        Priority
	}{
		{gap: 201, target: 1000, want: High},
		{gap: 200, target: 1000, want: Medium}, // exactly 0.20
		{gap: -200, target: 1000, want: Medium},
		{gap: 101, target: 1000, want: Medium},
		{gap: 100, target: 1000, want: Low}, // exactly 0.10
		{gap: -100, target: 1000, want: Low},
		{gap: 0, target: 1000, want: Low},
		{gap: 0, target: 0, want: Low},
		{gap: 0.05, target: 0, want: Low},
		{gap: -0.15, target: 0, want: Medium},
		{gap: -1000, target: 0, want: High},
	}
	for _, tt := range tests {
		if got := classify(BRL(tt.gap), BRL(tt.target)); got != tt.want {
			t.Errorf("classify(%v, %v) = %v, want %v", tt.gap, tt.target, got, tt.want)
		}
	}
}

func TestRecommend_Ordering(t *testing.T) {
	cfg := testConfig(0)
	cfg.CategoryTargets = CategoryTargets{50, 50, 0, 0}
	cfg.VariableIncomeTarget = 100
	snap := Snapshot{
		Config: cfg,
		Holdings: []Holding{
			holding("a", "OVER", DomesticEquity, 100, "10", 10), // target 60, gap -940
			holding("b", "TWIN1", DomesticFund, 10, "10", 50),   // target 300, gap 200
			holding("c", "NEW", DomesticEquity, 0, "10", 90),    // target 540, gap 540
			holding("d", "TWIN2", DomesticFund, 10, "10", 50),   // target 300, gap 200
		},
	}
	recs := Recommend(snap)

	var got []string
	for _, r := range recs {
		got = append(got, r.HoldingID)
	}
	want := []string{"c", "b", "d", "a"}
	if len(got) != len(want) {
		t.Fatalf("Recommend() ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Recommend() ids = %v, want %v", got, want)
		}
	}

	best, ok := BestBuy(recs)
	if !ok {
		t.Fatal("BestBuy() found nothing")
	}
	for _, r := range recs {
		if r.Difference.IsPositive() && r.Difference.GreaterThan(best.Difference) {
			t.Errorf("%s has a larger gap %v than best buy %v", r.Ticker, r.Difference, best.Difference)
		}
	}
}

func TestRecommend_StableTies(t *testing.T) {
	snap := Snapshot{Config: testConfig(1000)}
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		snap.Holdings = append(snap.Holdings, holding(id, "SAME", DomesticEquity, 0, "10", 20))
	}
	recs := Recommend(snap)
	for i, r := range recs {
		if want := snap.Holdings[i].ID; r.HoldingID != want {
			t.Errorf("recs[%d] = %s, want %s", i, r.HoldingID, want)
		}
	}
}

func TestBestBuy_None(t *testing.T) {
	// every holding is overweight: no category target.
	cfg := testConfig(0)
	cfg.CategoryTargets = CategoryTargets{}
	snap := Snapshot{
		Config: cfg,
		Holdings: []Holding{
			holding("1", "AESB3", DomesticEquity, 450, "14.11", 33),
			holding("2", "ZERO", DomesticFund, 0, "10", 100),
		},
	}
	recs := Recommend(snap)
	if _, ok := BestBuy(recs); ok {
		t.Errorf("BestBuy() found a recommendation, want none: %v", recs)
	}
	if _, ok := BestBuy(nil); ok {
		t.Error("BestBuy(nil) found a recommendation")
	}
}

func TestParsePriority(t *testing.T) {
	for _, p := range []Priority{Low, Medium, High} {
		got, err := ParsePriority(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePriority(%q) = %v, %v, want %v", p.String(), got, err, p)
		}
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("ParsePriority(urgent) should fail")
	}
}

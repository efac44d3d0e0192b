// Package rebalance tracks a personal investment portfolio and tells which
// holding to buy next to move it toward its target allocation.
//
// Targets are nested on three levels:
//   - Fixed versus variable income, as shares of the total portfolio value.
//   - Each of the four variable income categories (domestic and foreign
//     equities and funds), as shares of variable income.
//   - Each holding, as a share of its category.
//
// The package is organized around a few building blocks:
//   - Store: the single owner of holdings and configuration. It is safe for
//     concurrent use and hands out consistent Snapshots.
//   - Valuation: AssetValue, CategoryValue, TotalVariableValue and
//     TotalPortfolioValue. Foreign holdings are converted with the configured
//     exchange rate.
//   - Allocation: MacroAllocations and CategoryAllocations compare current and
//     target percentages. A zero denominator always yields 0%.
//   - Recommendation: Recommend ranks holdings by funding gap and BestBuy
//     picks the next one to buy.
//
// Analyze ties everything together into a Report. All computations are pure
// functions of a Snapshot and use decimal arithmetic, so values add up exactly.
//
// This package is the foundation of the `rbl` command-line tool.
package rebalance

// Package classfolio tracks the performance of vote-weighted class stock
// portfolios against a benchmark index.
//
// Each class section votes on a list of holdings. On the start date, an
// initial investment is split across the holdings in proportion to their
// votes, and bought at start prices. The package then:
//   - Values every section on every day of a daily price table (BuildHistory),
//     and the benchmark as a single-holding portfolio (BuildBenchmark).
//   - Aligns all the value series on a single date axis, extended with a few
//     empty business days, without ever filling gaps (Align).
//   - Computes the terminal return of each series, and a rounded value axis
//     for charts (NewAxis).
//
// Every computation is a pure function of the portfolio configuration and
// price documents, which are the two inputs of the system (see Load and
// Fetch). A missing price document is not an error: sections simply have no
// performance yet.
//
// Prices are maintained by the `yahoo` package, reports and charts are
// rendered by the `renderer` and `chart` packages, and the `cpt` command
// ties everything together.
package classfolio

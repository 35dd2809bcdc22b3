// Package balance runs several balance strategies over the same signed graph
// and compares their verdicts.
//
// The three checkers (triangle, cycle, supernode) are independent and never
// call each other. This package wraps each in a Strategy and records one
// Verdict per strategy in a Report:
//
//	r, err := balance.Analyze(ctx, g)
//	if err != nil { ... }
//	fmt.Println(r.Balanced, r.Consistent)
//
// Exactness
//
//	The cycle and super-node strategies are exact on every graph. The
//	triangle strategy skips incomplete triples and is exact only on complete
//	graphs; elsewhere its verdict is recorded with Exact=false and takes no
//	part in the agreement check.
//
// Agreement
//
//	Report.Consistent is true iff every exact, error-free verdict agrees.
//	A strategy error (for example a cycle guard firing) is kept in its
//	Verdict and does not fail the report unless every strategy failed.
//
// Concurrency
//
//	Analyze is sequential. AnalyzeAll analyses distinct graphs in parallel on
//	an errgroup bounded by WithWorkers; reports keep the input order.
package balance

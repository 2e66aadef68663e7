// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening fixture databases and registering SQL
// scalar functions (knn_chebyshev, knn_l2) so stored point BLOBs can be
// cross-checked directly in SQL. It intentionally keeps a thin surface so
// other packages can share the same driver instance.
package engine

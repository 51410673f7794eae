// Package investwise provides the domain model and persistence layer for a
// personal investment-portfolio tracker.
//
// The core functionalities include:
//   - Asset Model: a closed set of asset variants (stock, crypto, real
//     estate, gold) sharing a common header, created through a single
//     factory and edited through per-variant hooks.
//   - Stores: a generic keyed-list store persisted as a single JSONL file,
//     read wholesale at construction and rewritten wholesale on every
//     mutation, specialized for users and portfolios.
//   - Authentication: a thin signup/login service over the user store with
//     a pluggable password verifier.
//   - Zakat: a deterministic 2.5% levy computation over applicable assets.
//   - Reports: fixed-width text artifacts written under a reports directory
//     with timestamped file names.
//
// This package serves as the foundational logic for the `iw` command-line
// tool; all console interaction lives in the cmd package and reaches the
// domain only through the interfaces defined here.
package investwise

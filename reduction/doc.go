// Package reduction estimates the cost of BKZ-style lattice reduction.
//
// # Reading Guide
//
//   - delta.go: conversion between block size β and root-Hermite factor δ
//   - primitives.go: LLL cost and the number of SVP-oracle calls per BKZ tour
//   - cost_model.go: the CostModel contract shared by all cost models
//   - evaluate.go: wrapping a raw cost into a labelled Cost record
//
// # Architecture
//
// This package defines the contract and the shared arithmetic; the concrete
// cost models (enumeration: CheNgu12, ABFKSW20, ABLR21; sieving: ADPS16,
// BDGL16, LaaMosPol14, Kyber, GJ21) live in reduction/models.
//
// All costs are abstract operation counts, not wall-clock time. A cost of
// +Inf marks an infeasible configuration. Every model is immutable after
// construction and may be shared between goroutines.
package reduction

// SPDX-License-Identifier: MIT

// Package pcmatrix is a bounded-buffer producer/consumer engine that moves
// integer matrices from producer goroutines to consumer goroutines and
// multiplies them on the way out.
//
// Under the hood, everything is organized under four packages and a command:
//
//	matrix/       — Dense integer matrices, Mul/Sum/Display/Free, seeded Generator
//	buffer/       — Bounded[T], a fixed-capacity circular buffer guarded by one
//	                mutex and two condition variables
//	prodcons/     — Producer and Consumer workers, the pairing state machine,
//	                per-worker Stats and the Orchestrator that joins them
//	config/       — defaults, YAML/env/flag loading via viper, logrus setup
//	cmd/pcmatrix/ — the cobra CLI
//
// Quick start:
//
//	go run ./cmd/pcmatrix 4 16 1200 0
//
// runs 4 producers and 4 consumers over a 16-slot buffer, producing 1200
// random-shape matrices, and finishes with
//
//	Sum of Matrix elements --> Produced=<p> = Consumed=<c>
//	Matrices produced=<p> consumed=<c> multiplied=<m>
//
// A run is correct when both sides agree: every matrix produced is consumed
// exactly once, whether or not it found a partner to be multiplied with.
package pcmatrix
